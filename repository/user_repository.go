package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"questbets/database"
	"questbets/models"
)

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

// GetByAddress retrieves a user by wallet address with their bet
// selections eagerly loaded. The address is lowercased before lookup.
// Returns (nil, nil) when no user exists.
func (r *UserRepository) GetByAddress(ctx context.Context, address string) (*models.User, error) {
	address = strings.ToLower(address)

	query := `
		SELECT id, address, discord_handle, x_handle, points, created_at, updated_at
		FROM users
		WHERE address = $1
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, address).Scan(
		&user.ID,
		&user.Address,
		&user.DiscordHandle,
		&user.XHandle,
		&user.Points,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by address %s: %w", address, err)
	}

	userBets, err := r.loadUserBets(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.UserBets = userBets

	return &user, nil
}

// loadUserBets loads a user's selections joined to their bets
func (r *UserRepository) loadUserBets(ctx context.Context, userID string) ([]*models.UserBet, error) {
	query := `
		SELECT ub.id, ub.user_id, ub.bet_id, ub.selected_outcome, ub.created_at,
		       b.id, b.bet_id, b.title, b.description, b.category, b.resolution_date,
		       b.resolution_url, b.resolution_x_method, b.resolution_x_parameter,
		       b.created_at, b.updated_at
		FROM user_bets ub
		JOIN bets b ON b.id = ub.bet_id
		WHERE ub.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user bets for user %s: %w", userID, err)
	}
	defer rows.Close()

	var userBets []*models.UserBet
	for rows.Next() {
		var ub models.UserBet
		var bet models.Bet
		err := rows.Scan(
			&ub.ID,
			&ub.UserID,
			&ub.BetID,
			&ub.SelectedOutcome,
			&ub.CreatedAt,
			&bet.ID,
			&bet.BetID,
			&bet.Title,
			&bet.Description,
			&bet.Category,
			&bet.ResolutionDate,
			&bet.ResolutionURL,
			&bet.ResolutionXMethod,
			&bet.ResolutionXParameter,
			&bet.CreatedAt,
			&bet.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user bet: %w", err)
		}
		ub.Bet = &bet
		userBets = append(userBets, &ub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user bets: %w", err)
	}

	return userBets, nil
}

// Create creates a new user. The address is lowercased before storage;
// the unique constraint on address rejects concurrent duplicates.
func (r *UserRepository) Create(ctx context.Context, address string, discordHandle, xHandle *string) (*models.User, error) {
	query := `
		INSERT INTO users (id, address, discord_handle, x_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, address, discord_handle, x_handle, points, created_at, updated_at
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, uuid.NewString(), strings.ToLower(address), discordHandle, xHandle).Scan(
		&user.ID,
		&user.Address,
		&user.DiscordHandle,
		&user.XHandle,
		&user.Points,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user with address %s: %w", address, err)
	}

	return &user, nil
}

// GetLeaderboard returns all users ordered by points descending
func (r *UserRepository) GetLeaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT address, points
		FROM users
		ORDER BY points DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.Address, &entry.Points); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}

	return entries, nil
}

// CountAll returns the total number of users
func (r *UserRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GetAllAddresses returns every user's address
func (r *UserRepository) GetAllAddresses(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT address FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to get user addresses: %w", err)
	}
	defer rows.Close()

	var addresses []string
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}

	return addresses, nil
}
