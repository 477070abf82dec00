package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Sign marks which banquet pile a card sits in or was played toward.
type Sign string

const (
	SignTop    Sign = "top"    // positive pile
	SignBottom Sign = "bottom" // negative pile
)

// Piles is one color's pair of banquet piles.
type Piles struct {
	Top    []*Card
	Bottom []*Card
}

// HiddenEntry records a masked spy card played to the banquet: the sign is
// public, the card's identity is not. Entries move into their true pile at
// reveal.
type HiddenEntry struct {
	Card *Card
	Sign Sign
}

// Player is one participant. The hand is private to its owner; the domain is
// public and may contain cards placed there by other players.
type Player struct {
	ID     string
	Name   string
	IsBot  bool
	Hand   []*Card
	Domain []*Card
	Moves  TurnMoves

	Graceful    *Objective
	Disgraceful *Objective
	// Objective results, valid only once the session has revealed.
	GracefulMet    bool
	DisgracefulMet bool
}

// DisplayName returns the player's name, falling back to the id.
func (p *Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Session is the authoritative state of one game. It has no internal
// concurrency; callers must serialize all actions against it.
type Session struct {
	Cfg Config

	Deck    []*Card // draw pile, pop-from-end = draw
	Players []*Player
	Banquet map[Color]*Piles
	Hidden  []HiddenEntry
	Removed []*Card // cards taken out of play by kills

	Turn     int // index into Players
	Started  bool
	Revealed bool
	Pending  *PendingKill
	History  []string

	rng *rand.Rand
}

// NewSession constructs a session with normalized config. A nil rng is
// replaced by a time-seeded one.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{Cfg: cfg.Normalize(), rng: rng}
	s.resetZones()
	return s
}

func (s *Session) resetZones() {
	s.Banquet = make(map[Color]*Piles, len(s.Cfg.EnabledColors))
	for _, color := range s.Cfg.EnabledColors {
		s.Banquet[color] = &Piles{}
	}
	s.Hidden = nil
	s.Removed = nil
}

// PlayerByID returns the participant with the given id, or nil.
func (s *Session) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the turn holder, or nil before the first join.
func (s *Session) CurrentPlayer() *Player {
	if len(s.Players) == 0 {
		return nil
	}
	return s.Players[s.Turn%len(s.Players)]
}

// AddPlayer registers a participant. It is idempotent for an id that already
// joined. It reports whether the player was newly added, and fails once the
// game has started or the configured capacity is reached.
func (s *Session) AddPlayer(id, name string) (bool, error) {
	if p := s.PlayerByID(id); p != nil {
		return false, nil
	}
	if s.Started {
		return false, ErrGameStarted
	}
	if len(s.Players) >= s.Cfg.MaxPlayers {
		return false, ErrSessionFull
	}
	s.Players = append(s.Players, &Player{ID: id, Name: name})
	return true, nil
}

// RemovePlayer drops a participant. If the game was in progress the session is
// forced back to a joinable pre-start state: in-flight play is discarded, the
// remaining players keep their seats but lose hands, domains, objectives and
// move records.
func (s *Session) RemovePlayer(id string) {
	idx := -1
	for i, p := range s.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wasStarted := s.Started
	s.Players = append(s.Players[:idx], s.Players[idx+1:]...)
	if wasStarted {
		s.forceReset()
	}
}

// forceReset returns the session to the unstarted, rejoinable state.
func (s *Session) forceReset() {
	s.Started = false
	s.Revealed = false
	s.Deck = nil
	s.Pending = nil
	s.History = nil
	s.Turn = 0
	s.resetZones()
	for _, p := range s.Players {
		p.Hand = nil
		p.Domain = nil
		p.Moves = TurnMoves{}
		p.Graceful, p.Disgraceful = nil, nil
		p.GracefulMet, p.DisgracefulMet = false, false
	}
}

// StartGame deals a fresh game. It is a no-op unless at least two players are
// present and the game has not started. Re-running after a reveal starts a new
// round with the same participants.
func (s *Session) StartGame() {
	if s.Started && !s.Revealed {
		return
	}
	if len(s.Players) < MinPlayers {
		return
	}

	s.Deck = BuildDeck(s.Cfg, s.rng)
	s.resetZones()
	s.History = nil
	s.Pending = nil
	s.Revealed = false
	s.Turn = 0

	for _, p := range s.Players {
		p.Hand = nil
		p.Domain = nil
		p.Moves = TurnMoves{}
		p.GracefulMet, p.DisgracefulMet = false, false
	}
	// Deal in turn order so draw order matches seating.
	for _, p := range s.Players {
		s.drawTo(p, HandSize)
	}
	s.assignObjectives()
	s.Started = true
	s.logf("The banquet begins with %d guests", len(s.Players))
}

// drawTo moves up to n cards from the draw pile into the player's hand.
func (s *Session) drawTo(p *Player, n int) {
	for i := 0; i < n && len(s.Deck) > 0; i++ {
		c := s.Deck[len(s.Deck)-1]
		s.Deck = s.Deck[:len(s.Deck)-1]
		c.Owner = p.ID
		p.Hand = append(p.Hand, c)
	}
}

// describeCard renders a card for the public history log. A still-hidden spy
// is never named by color or type.
func describeCard(c *Card) string {
	if c.Hidden {
		return "a Spy card"
	}
	return fmt.Sprintf("the %s %s", c.Color, c.Type)
}

func (s *Session) logf(format string, args ...any) {
	s.History = append(s.History, fmt.Sprintf(format, args...))
	if over := len(s.History) - historyLimit; over > 0 {
		s.History = s.History[over:]
	}
}
