package models

import "time"

// UserBet records one user's outcome choice for one bet. A user either
// has no rows or exactly one row per catalog bet; the (user_id, bet_id)
// unique constraint makes a second submission for the same pair fail at
// the store.
type UserBet struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"userId"`
	BetID           string    `db:"bet_id" json:"betId"`
	SelectedOutcome string    `db:"selected_outcome" json:"selectedOutcome"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`

	// User and Bet are populated by joined reads; nil otherwise.
	User *User `db:"-" json:"user,omitempty"`
	Bet  *Bet  `db:"-" json:"bet,omitempty"`
}

// SubmissionResult is returned by a successful submission. The
// execution-result marker mirrors the consensus-style receipt callers
// branch on.
type SubmissionResult struct {
	UserID          string
	ExecutionResult string
}

// ExecutionResultSuccess is the receipt marker for a recorded submission.
const ExecutionResultSuccess = "SUCCESS"
