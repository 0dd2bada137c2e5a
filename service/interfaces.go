package service

import (
	"context"

	"questbets/events"
	"questbets/models"
)

// BetRepository defines the interface for bet catalog data access
type BetRepository interface {
	// GetAll returns the full bet catalog, newest first
	GetAll(ctx context.Context) ([]*models.Bet, error)

	// Count returns the number of bets in the catalog
	Count(ctx context.Context) (int, error)

	// Upsert inserts a bet or updates the row with the same natural key
	Upsert(ctx context.Context, bet *models.Bet) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByAddress retrieves a user by lowercased wallet address with
	// their bet selections eagerly loaded; (nil, nil) when absent
	GetByAddress(ctx context.Context, address string) (*models.User, error)

	// Create creates a new user with the given handles
	Create(ctx context.Context, address string, discordHandle, xHandle *string) (*models.User, error)

	// GetLeaderboard returns all users ordered by points descending
	GetLeaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)

	// CountAll returns the total number of users
	CountAll(ctx context.Context) (int, error)

	// GetAllAddresses returns every user's address
	GetAllAddresses(ctx context.Context) ([]string, error)
}

// UserBetRepository defines the interface for user bet data access
type UserBetRepository interface {
	// Create records one outcome choice
	Create(ctx context.Context, userBet *models.UserBet) error

	// GetAllWithRelations returns every selection joined to its user and bet
	GetAllWithRelations(ctx context.Context) ([]*models.UserBet, error)
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork binds repositories and the event publisher to a single
// database transaction
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes buffered events
	Commit() error

	// Rollback rolls back the transaction and discards buffered events
	Rollback() error

	// BetRepository returns the bet repository for this unit of work
	BetRepository() BetRepository

	// UserRepository returns the user repository for this unit of work
	UserRepository() UserRepository

	// UserBetRepository returns the user bet repository for this unit of work
	UserBetRepository() UserBetRepository

	// EventBus returns the transactional event publisher for this unit of work
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// CatalogService defines the interface for bet catalog reads
type CatalogService interface {
	// ListBets returns all configured bets, newest first
	ListBets(ctx context.Context) ([]*models.Bet, error)
}

// LeaderboardService defines the interface for leaderboard reads
type LeaderboardService interface {
	// GetLeaderboard returns users ordered by points descending
	GetLeaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)
}

// SubmissionService defines the interface for the submission workflow
type SubmissionService interface {
	// PlaceBets records a user's outcome choices for the whole catalog
	// in one atomic submission
	PlaceBets(ctx context.Context, address string, discordHandle, xHandle *string, betOutcomes map[string]string) (*models.SubmissionResult, error)
}

// UserBetsService defines the interface for the user-bets query
type UserBetsService interface {
	// GetUserBets returns the global view when address is empty, or a
	// single-user snapshot otherwise
	GetUserBets(ctx context.Context, address string) (models.UserBetsView, error)
}
