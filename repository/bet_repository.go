package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"questbets/database"
	"questbets/models"
)

// BetRepository implements the BetRepository interface
type BetRepository struct {
	q queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

// newBetRepositoryWithTx creates a new bet repository with a transaction
func newBetRepositoryWithTx(tx queryable) *BetRepository {
	return &BetRepository{q: tx}
}

// GetAll returns the full bet catalog, newest first
func (r *BetRepository) GetAll(ctx context.Context) ([]*models.Bet, error) {
	query := `
		SELECT id, bet_id, title, description, category, resolution_date,
		       resolution_url, resolution_x_method, resolution_x_parameter,
		       created_at, updated_at
		FROM bets
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}
	defer rows.Close()

	var bets []*models.Bet
	for rows.Next() {
		var bet models.Bet
		err := rows.Scan(
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
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, &bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}

	return bets, nil
}

// Count returns the number of bets in the catalog
func (r *BetRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM bets`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bets: %w", err)
	}
	return count, nil
}

// Upsert inserts a bet or updates the existing row with the same
// natural key. Used by the seeding process only.
func (r *BetRepository) Upsert(ctx context.Context, bet *models.Bet) error {
	query := `
		INSERT INTO bets (id, bet_id, title, description, category, resolution_date,
		                  resolution_url, resolution_x_method, resolution_x_parameter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (bet_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			resolution_date = EXCLUDED.resolution_date,
			resolution_url = EXCLUDED.resolution_url,
			resolution_x_method = EXCLUDED.resolution_x_method,
			resolution_x_parameter = EXCLUDED.resolution_x_parameter,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		uuid.NewString(),
		bet.BetID,
		bet.Title,
		bet.Description,
		bet.Category,
		bet.ResolutionDate,
		bet.ResolutionURL,
		bet.ResolutionXMethod,
		bet.ResolutionXParameter,
	).Scan(&bet.ID, &bet.CreatedAt, &bet.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert bet %s: %w", bet.BetID, err)
	}

	return nil
}
