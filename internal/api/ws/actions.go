package ws

import "grand-banquet/internal/game"

// SessionActions is the slice of the registry the hub needs to apply actions
// arriving over a socket and to build per-viewer snapshots.
type SessionActions interface {
	State(code, forPlayerID string) (game.Snapshot, error)
	PlayCard(code, playerID, cardID string, zone game.Zone, targetPlayerID string) error
	ResolveKill(code, playerID, cardID string, hiddenSign game.Sign) error
	CancelKill(code, playerID string) error
}
