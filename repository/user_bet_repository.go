package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"questbets/database"
	"questbets/models"
)

// UserBetRepository implements the UserBetRepository interface
type UserBetRepository struct {
	q queryable
}

// NewUserBetRepository creates a new user bet repository
func NewUserBetRepository(db *database.DB) *UserBetRepository {
	return &UserBetRepository{q: db.Pool}
}

// newUserBetRepositoryWithTx creates a new user bet repository with a transaction
func newUserBetRepositoryWithTx(tx queryable) *UserBetRepository {
	return &UserBetRepository{q: tx}
}

// Create records one outcome choice. The (user_id, bet_id) unique
// constraint rejects a second row for the same pair.
func (r *UserBetRepository) Create(ctx context.Context, userBet *models.UserBet) error {
	query := `
		INSERT INTO user_bets (id, user_id, bet_id, selected_outcome)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		uuid.NewString(),
		userBet.UserID,
		userBet.BetID,
		userBet.SelectedOutcome,
	).Scan(&userBet.ID, &userBet.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create user bet for user %s: %w", userBet.UserID, err)
	}

	return nil
}

// GetAllWithRelations returns every recorded selection joined to its
// owning user and bet
func (r *UserBetRepository) GetAllWithRelations(ctx context.Context) ([]*models.UserBet, error) {
	query := `
		SELECT ub.id, ub.user_id, ub.bet_id, ub.selected_outcome, ub.created_at,
		       u.id, u.address, u.discord_handle, u.x_handle, u.points, u.created_at, u.updated_at,
		       b.id, b.bet_id, b.title, b.description, b.category, b.resolution_date,
		       b.resolution_url, b.resolution_x_method, b.resolution_x_parameter,
		       b.created_at, b.updated_at
		FROM user_bets ub
		JOIN users u ON u.id = ub.user_id
		JOIN bets b ON b.id = ub.bet_id
		ORDER BY ub.created_at
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bets: %w", err)
	}
	defer rows.Close()

	var userBets []*models.UserBet
	for rows.Next() {
		var ub models.UserBet
		var user models.User
		var bet models.Bet
		err := rows.Scan(
			&ub.ID,
			&ub.UserID,
			&ub.BetID,
			&ub.SelectedOutcome,
			&ub.CreatedAt,
			&user.ID,
			&user.Address,
			&user.DiscordHandle,
			&user.XHandle,
			&user.Points,
			&user.CreatedAt,
			&user.UpdatedAt,
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
		ub.User = &user
		ub.Bet = &bet
		userBets = append(userBets, &ub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user bets: %w", err)
	}

	return userBets, nil
}
