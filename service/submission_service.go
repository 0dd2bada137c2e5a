package service

import (
	"context"
	"fmt"
	"strings"

	"questbets/database"
	"questbets/events"
	"questbets/models"
)

// submissionService implements the SubmissionService interface
type submissionService struct {
	uowFactory     UnitOfWorkFactory
	campaignBetIDs []string
}

// NewSubmissionService creates a new submission service. campaignBetIDs
// are the natural keys every submission must supply an outcome for.
func NewSubmissionService(uowFactory UnitOfWorkFactory, campaignBetIDs []string) SubmissionService {
	return &submissionService{
		uowFactory:     uowFactory,
		campaignBetIDs: campaignBetIDs,
	}
}

// PlaceBets records a user's outcome choices for the whole catalog.
// The application-level "already placed" check is the fast path; the
// unique constraints on users.address and (user_id, bet_id) settle
// concurrent submissions for the same address, and the losing writer
// gets a conflict.
func (s *submissionService) PlaceBets(ctx context.Context, address string, discordHandle, xHandle *string, betOutcomes map[string]string) (*models.SubmissionResult, error) {
	if address == "" {
		return nil, NewInvalidRequest("Address is required")
	}
	if betOutcomes == nil {
		return nil, NewInvalidRequest("betOutcomes mapping is required")
	}

	address = strings.ToLower(address)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	// The catalog is shared mutable state, so the size invariant is
	// re-checked on every call rather than once at startup.
	catalog, err := uow.BetRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bet catalog: %w", err)
	}
	if len(catalog) != models.CatalogSize {
		return nil, NewInvariantViolation("Expected %d bets to be available", models.CatalogSize)
	}

	user, err := uow.UserRepository().GetByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	// Resubmission is never a mutation: one submission per address.
	if user != nil && len(user.UserBets) > 0 {
		return nil, NewConflict("User has already placed bets and cannot update them")
	}

	var missing []string
	for _, betID := range s.campaignBetIDs {
		if betOutcomes[betID] == "" {
			missing = append(missing, betID)
		}
	}
	if len(missing) > 0 {
		return nil, NewInvalidRequest("Missing outcomes for bets: %s", strings.Join(missing, ", "))
	}

	// Build drafts against the live catalog, not just the configured id
	// list, so catalog drift is caught here. Outcomes are stored
	// verbatim.
	var drafts []*models.UserBet
	var selections []models.BetSelection
	for _, bet := range catalog {
		outcome, ok := betOutcomes[bet.BetID]
		if !ok {
			continue
		}
		drafts = append(drafts, &models.UserBet{
			BetID:           bet.ID,
			SelectedOutcome: outcome,
		})
		selections = append(selections, models.BetSelection{
			BetID:           bet.BetID,
			SelectedOutcome: outcome,
		})
	}
	if len(drafts) != models.CatalogSize {
		return nil, NewInvalidRequest("Invalid bet mapping - expected %d bets", models.CatalogSize)
	}

	// A user row without bets is reused as-is; handles are only set on
	// creation.
	if user == nil {
		user, err = uow.UserRepository().Create(ctx, address, discordHandle, xHandle)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return nil, NewConflict("User has already placed bets and cannot update them")
			}
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		uow.EventBus().Publish(events.UserCreatedEvent{
			UserID:  user.ID,
			Address: user.Address,
		})
	}

	for _, draft := range drafts {
		draft.UserID = user.ID
		if err := uow.UserBetRepository().Create(ctx, draft); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, NewConflict("User has already placed bets and cannot update them")
			}
			return nil, fmt.Errorf("failed to create user bet: %w", err)
		}
	}

	uow.EventBus().Publish(events.SubmissionRecordedEvent{
		UserID:        user.ID,
		Address:       user.Address,
		DiscordHandle: stringValue(discordHandle),
		XHandle:       stringValue(xHandle),
		Selections:    selections,
	})

	if err := uow.Commit(); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, NewConflict("User has already placed bets and cannot update them")
		}
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}

	return &models.SubmissionResult{
		UserID:          user.ID,
		ExecutionResult: models.ExecutionResultSuccess,
	}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
