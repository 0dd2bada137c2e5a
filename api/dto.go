package api

// PlaceBetsRequest is the POST /user-bets body. BetOutcomes maps bet
// natural keys to outcome strings.
type PlaceBetsRequest struct {
	Address       string            `json:"address"`
	DiscordHandle *string           `json:"discordHandle"`
	XHandle       *string           `json:"xHandle"`
	BetOutcomes   map[string]string `json:"betOutcomes"`
}

// LeaderReceipt mirrors the consensus-style receipt shape callers
// branch on.
type LeaderReceipt struct {
	ExecutionResult string `json:"execution_result"`
}

// ConsensusData wraps the receipt list.
type ConsensusData struct {
	LeaderReceipt []LeaderReceipt `json:"leader_receipt"`
}

// PlaceBetsResponse is the POST /user-bets success body.
type PlaceBetsResponse struct {
	ConsensusData ConsensusData `json:"consensus_data"`
	UserID        string        `json:"user_id"`
}
