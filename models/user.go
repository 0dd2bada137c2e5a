package models

import "time"

// User is a campaign participant identified by a lowercased wallet
// address. Created on first submission attempt for a new address.
type User struct {
	ID            string    `db:"id" json:"id"`
	Address       string    `db:"address" json:"address"`
	DiscordHandle *string   `db:"discord_handle" json:"discordHandle"`
	XHandle       *string   `db:"x_handle" json:"xHandle"`
	Points        int64     `db:"points" json:"points"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`

	// UserBets is populated by lookups that eagerly load the user's
	// selections; nil otherwise.
	UserBets []*UserBet `db:"-" json:"userBets,omitempty"`
}

// LeaderboardEntry is one leaderboard row (returned to the user).
type LeaderboardEntry struct {
	Address string `db:"address" json:"address"`
	Points  int64  `db:"points" json:"points"`
}
