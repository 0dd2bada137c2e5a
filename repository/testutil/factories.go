package testutil

import (
	"fmt"

	"questbets/models"
)

// CreateTestBet creates a test bet with default values
func CreateTestBet(betID string) *models.Bet {
	url := "https://example.com/" + betID
	return &models.Bet{
		BetID:          betID,
		Title:          fmt.Sprintf("Will %s happen?", betID),
		Description:    fmt.Sprintf("Test question for %s", betID),
		Category:       "testing",
		ResolutionDate: "2026-12-31",
		ResolutionURL:  &url,
	}
}

// CreateTestBetWithTitle creates a test bet with a specific title
func CreateTestBetWithTitle(betID, title string) *models.Bet {
	bet := CreateTestBet(betID)
	bet.Title = title
	return bet
}

// CreateTestUserBet creates a selection linking a user and a bet row
func CreateTestUserBet(userID, betRowID, outcome string) *models.UserBet {
	return &models.UserBet{
		UserID:          userID,
		BetID:           betRowID,
		SelectedOutcome: outcome,
	}
}

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}
