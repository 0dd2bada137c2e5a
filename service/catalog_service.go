package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"questbets/models"
)

// CatalogCache is a read-through cache for the bet catalog. A miss is
// (nil, nil).
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]*models.Bet, error)
	SetCatalog(ctx context.Context, bets []*models.Bet) error
}

// catalogService implements the CatalogService interface
type catalogService struct {
	betRepo BetRepository
	cache   CatalogCache // optional
}

// NewCatalogService creates a new catalog service. cache may be nil.
func NewCatalogService(betRepo BetRepository, cache CatalogCache) CatalogService {
	return &catalogService{
		betRepo: betRepo,
		cache:   cache,
	}
}

// ListBets returns all configured bets, newest first. Cache failures
// fall back to the database; the catalog is small and rarely changes.
func (s *catalogService) ListBets(ctx context.Context) ([]*models.Bet, error) {
	if s.cache != nil {
		bets, err := s.cache.GetCatalog(ctx)
		if err != nil {
			log.WithError(err).Warn("Catalog cache read failed")
		} else if bets != nil {
			return bets, nil
		}
	}

	bets, err := s.betRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bet catalog: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, bets); err != nil {
			log.WithError(err).Warn("Catalog cache write failed")
		}
	}

	return bets, nil
}
