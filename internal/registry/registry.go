package registry

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"grand-banquet/internal/bot"
	"grand-banquet/internal/config"
	"grand-banquet/internal/game"

	"github.com/google/uuid"
)

// ErrSessionNotFound reports an unknown session code.
var ErrSessionNotFound = errors.New("session not found")

// Registry owns every live session, one instance per code. Concurrent
// requests for different sessions proceed independently; requests for the
// same session serialize on its entry mutex, so each action applies as one
// atomic step. Sessions are destroyed when their last participant leaves.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	cfg      config.Config
	rng      *rand.Rand
	rngMu    sync.Mutex
}

type entry struct {
	mu   sync.Mutex
	sess *game.Session
}

func New(cfg config.Config) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create builds a session with the given settings and returns its join code.
func (r *Registry) Create(sc game.Config) string {
	if sc.MaxPlayers == 0 {
		sc.MaxPlayers = r.cfg.DefaultMaxPlayers
	}
	if sc.DeckMultiplier == 0 {
		sc.DeckMultiplier = r.cfg.DefaultDeckMultiplier
	}
	r.rngMu.Lock()
	code := randCode(r.rng, 6)
	seed := r.rng.Int63()
	r.rngMu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		if _, taken := r.sessions[code]; !taken {
			break
		}
		r.rngMu.Lock()
		code = randCode(r.rng, 6)
		r.rngMu.Unlock()
	}
	r.sessions[code] = &entry{sess: game.NewSession(sc, rand.New(rand.NewSource(seed)))}
	return code
}

func (r *Registry) lookup(code string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[code]
	return e, ok
}

// with runs fn against the named session under its entry lock.
func (r *Registry) with(code string, fn func(*game.Session) error) error {
	e, ok := r.lookup(code)
	if !ok {
		return ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}

// Join adds a participant and returns the issued player id.
func (r *Registry) Join(code, name string) (string, error) {
	id := uuid.NewString()
	err := r.with(code, func(s *game.Session) error {
		_, err := s.AddPlayer(id, name)
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// AddBot seats a bot participant.
func (r *Registry) AddBot(code string) (string, error) {
	id := "bot-" + uuid.NewString()
	err := r.with(code, func(s *game.Session) error {
		if _, err := s.AddPlayer(id, bot.Name(len(s.Players))); err != nil {
			return err
		}
		s.PlayerByID(id).IsBot = true
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Leave removes a participant and destroys the session once it is empty.
func (r *Registry) Leave(code, playerID string) error {
	empty := false
	err := r.with(code, func(s *game.Session) error {
		s.RemovePlayer(playerID)
		empty = len(s.Players) == 0
		return nil
	})
	if err != nil {
		return err
	}
	if empty {
		r.mu.Lock()
		delete(r.sessions, code)
		r.mu.Unlock()
	}
	return nil
}

// Start begins the game and lets seated bots act if one opens.
func (r *Registry) Start(code string) error {
	return r.with(code, func(s *game.Session) error {
		s.StartGame()
		r.runBots(s)
		return nil
	})
}

// PlayCard applies one play action, then advances any bot turns it unblocked.
func (r *Registry) PlayCard(code, playerID, cardID string, zone game.Zone, targetPlayerID string) error {
	return r.with(code, func(s *game.Session) error {
		if err := s.PlayCard(playerID, cardID, zone, targetPlayerID); err != nil {
			return err
		}
		r.runBots(s)
		return nil
	})
}

// ResolveKill settles the pending kill decision.
func (r *Registry) ResolveKill(code, playerID, cardID string, hiddenSign game.Sign) error {
	return r.with(code, func(s *game.Session) error {
		if err := s.ResolveKill(playerID, cardID, hiddenSign); err != nil {
			return err
		}
		r.runBots(s)
		return nil
	})
}

// CancelKill waives the pending kill decision.
func (r *Registry) CancelKill(code, playerID string) error {
	return r.with(code, func(s *game.Session) error {
		if err := s.CancelKill(playerID); err != nil {
			return err
		}
		r.runBots(s)
		return nil
	})
}

// State returns the masked snapshot for one viewer. Read-only.
func (r *Registry) State(code, forPlayerID string) (game.Snapshot, error) {
	var snap game.Snapshot
	err := r.with(code, func(s *game.Session) error {
		snap = s.Snapshot(forPlayerID)
		return nil
	})
	return snap, err
}

// runBots plays out consecutive bot turns while one holds the turn. Every
// completed turn consumes cards, so one deck size of iterations is enough for
// an all-bot table to play out; the bound guards against a stalled bot ever
// looping the lock.
func (r *Registry) runBots(s *game.Session) {
	for i := 0; i < s.Cfg.DeckSize()+8; i++ {
		cur := s.CurrentPlayer()
		if cur == nil || !cur.IsBot || !s.Started || s.Revealed {
			return
		}
		if err := bot.TakeTurn(s, cur.ID, r.cfg.BotWeights); err != nil {
			return
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
