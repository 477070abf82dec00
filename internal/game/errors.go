package game

import "errors"

// Every failure here is a caller-input or sequencing error. A failed action
// leaves the session untouched; callers should re-derive legal actions from
// the next snapshot rather than retry.
var (
	ErrSessionFull    = errors.New("session is full")
	ErrGameStarted    = errors.New("game already started")
	ErrNotStarted     = errors.New("game not started")
	ErrUnknownPlayer  = errors.New("player not found")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrUnknownZone    = errors.New("unknown target zone")
	ErrCategoryUsed   = errors.New("move category already used this turn")
	ErrKillPending    = errors.New("kill decision still pending")
	ErrNoKillPending  = errors.New("no kill pending")
	ErrNotKillDecider = errors.New("kill decision belongs to another player")
	ErrNoKillTarget   = errors.New("kill target required")
	ErrBadKillTarget  = errors.New("target not in candidate set")
	ErrShielded       = errors.New("shield cards cannot be killed")
)
