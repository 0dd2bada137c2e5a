package service

import (
	"context"
	"fmt"
	"strings"

	"questbets/models"
)

// userBetsService implements the UserBetsService interface
type userBetsService struct {
	userRepo    UserRepository
	userBetRepo UserBetRepository
}

// NewUserBetsService creates a new user bets query service
func NewUserBetsService(userRepo UserRepository, userBetRepo UserBetRepository) UserBetsService {
	return &userBetsService{
		userRepo:    userRepo,
		userBetRepo: userBetRepo,
	}
}

// GetUserBets returns the global participation view when address is
// empty, or a single-user snapshot otherwise. An unknown address yields
// an explicit empty snapshot: absence of participation is a queryable
// state, not an error.
func (s *userBetsService) GetUserBets(ctx context.Context, address string) (models.UserBetsView, error) {
	if address == "" {
		return s.globalView(ctx)
	}
	return s.singleUserView(ctx, strings.ToLower(address))
}

func (s *userBetsService) globalView(ctx context.Context) (models.UserBetsView, error) {
	userBets, err := s.userBetRepo.GetAllWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user bets: %w", err)
	}

	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	addresses, err := s.userRepo.GetAllAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user addresses: %w", err)
	}

	return models.GlobalUserBetsView{
		TotalUsers:    totalUsers,
		UserAddresses: addresses,
		UserBets:      userBets,
	}, nil
}

func (s *userBetsService) singleUserView(ctx context.Context, address string) (models.UserBetsView, error) {
	user, err := s.userRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user == nil {
		return models.SingleUserBetsView{
			UserAddresses:     []string{},
			UserBetSelections: []models.BetSelection{},
		}, nil
	}

	selections := make([]models.BetSelection, 0, len(user.UserBets))
	for _, ub := range user.UserBets {
		selections = append(selections, models.BetSelection{
			BetID:           ub.Bet.BetID,
			SelectedOutcome: ub.SelectedOutcome,
		})
	}

	return models.SingleUserBetsView{
		TotalUsers:        1,
		UserAddresses:     []string{user.Address},
		UserBetSelections: selections,
		UserHandlers: models.UserHandlers{
			DiscordHandler: user.DiscordHandle,
			XHandler:       user.XHandle,
		},
		UserID: user.ID,
	}, nil
}
