package models

import "time"

// Bet is one of the fixed yes/no questions configured for the campaign.
// Rows are created by the seeding process and treated as immutable by
// the submission workflow. BetID is the natural key used in client
// payloads; ID is the database identity.
type Bet struct {
	ID                   string    `db:"id" json:"id"`
	BetID                string    `db:"bet_id" json:"betId"`
	Title                string    `db:"title" json:"title"`
	Description          string    `db:"description" json:"description"`
	Category             string    `db:"category" json:"category"`
	ResolutionDate       string    `db:"resolution_date" json:"resolutionDate"`
	ResolutionURL        *string   `db:"resolution_url" json:"resolutionUrl"`
	ResolutionXMethod    *string   `db:"resolution_x_method" json:"resolutionXMethod"`
	ResolutionXParameter *string   `db:"resolution_x_parameter" json:"resolutionXParameter"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `db:"updated_at" json:"updatedAt"`
}

// CatalogSize is the number of bets the campaign runs with. Submissions
// are rejected unless exactly this many bets are seeded.
const CatalogSize = 3
