package models

// UserBetsView is the tagged union returned by the user-bets query.
// GlobalUserBetsView is produced when no address is given,
// SingleUserBetsView when one is. Wire-level consumers discriminate on
// the presence of the user_id field.
type UserBetsView interface {
	isUserBetsView()
}

// GlobalUserBetsView summarizes participation across all users.
type GlobalUserBetsView struct {
	TotalUsers    int        `json:"total_users"`
	UserAddresses []string   `json:"user_addresses"`
	UserBets      []*UserBet `json:"user_bets"`
}

func (GlobalUserBetsView) isUserBetsView() {}

// UserHandlers carries the social handles attached to a submission.
// The zero value renders as an empty object.
type UserHandlers struct {
	DiscordHandler *string `json:"discord_handler,omitempty"`
	XHandler       *string `json:"x_handler,omitempty"`
}

// BetSelection is one recorded pick, keyed by the bet's natural key.
type BetSelection struct {
	BetID           string `json:"bet_id"`
	SelectedOutcome string `json:"selected_outcome"`
}

// SingleUserBetsView is the snapshot for one address. An address with
// no participation yields the zero counts and empty lists rather than
// an error; UserID is set only when the user exists.
type SingleUserBetsView struct {
	TotalUsers        int            `json:"total_users"`
	UserAddresses     []string       `json:"user_addresses"`
	UserBetSelections []BetSelection `json:"user_bet_selections"`
	UserHandlers      UserHandlers   `json:"user_handlers"`
	UserID            string         `json:"user_id,omitempty"`
}

func (SingleUserBetsView) isUserBetsView() {}
