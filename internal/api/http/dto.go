package http

import "grand-banquet/internal/game"

// CreateSessionRequest is the payload for /create-session.
type CreateSessionRequest struct {
	MaxPlayers     int                       `json:"maxPlayers"`
	DeckMultiplier int                       `json:"deckMultiplier"`
	DeckOptions    *DeckOptions              `json:"deckOptions,omitempty"`
}

// DeckOptions narrows the generated deck.
type DeckOptions struct {
	EnabledColors      []game.Color              `json:"enabledColors,omitempty"`
	PerColorTypeCounts map[game.CardType]int     `json:"perColorTypeCounts,omitempty"`
}

// JoinRequest is the payload for /join.
type JoinRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LeaveRequest is the payload for /leave.
type LeaveRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

// StartRequest is the payload for /start.
type StartRequest struct {
	Code string `json:"code"`
}

// PlayRequest is the payload for /play.
type PlayRequest struct {
	Code           string `json:"code"`
	PlayerID       string `json:"playerId"`
	CardID         string `json:"cardId"`
	Zone           string `json:"zone"`
	TargetPlayerID string `json:"targetPlayerId"`
}

// KillRequest is the payload for /resolve-kill and /cancel-kill.
type KillRequest struct {
	Code       string `json:"code"`
	PlayerID   string `json:"playerId"`
	CardID     string `json:"cardId"`
	HiddenSign string `json:"hiddenSign"`
}

// AddBotRequest is the payload for /add-bot.
type AddBotRequest struct {
	Code string `json:"code"`
}
