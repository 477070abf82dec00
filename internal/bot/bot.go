package bot

import (
	"errors"
	"fmt"

	"grand-banquet/internal/config"
	"grand-banquet/internal/game"
)

// Name labels the bot seated at the given position.
func Name(seat int) string {
	return fmt.Sprintf("Bot %d", seat+1)
}

// IsBot reports whether the player id denotes a bot seat.
func IsBot(playerID string) bool {
	return len(playerID) > 4 && playerID[:4] == "bot-"
}

var errNoMove = errors.New("bot: no legal move available")

// candidateMove is one legal (card, zone) option for the bot's next play.
type candidateMove struct {
	card   *game.Card
	zone   game.Zone
	target string
	score  int
}

// TakeTurn plays the bot's whole turn: it fills the open move categories with
// the highest-scoring candidates and settles any kill decision it creates.
// It returns once the turn has advanced past the bot.
func TakeTurn(s *game.Session, botID string, w config.Weights) error {
	p := s.PlayerByID(botID)
	if p == nil {
		return game.ErrUnknownPlayer
	}
	// Three categories plus a kill decision per killer card is the most a
	// turn can take.
	for i := 0; i < 8; i++ {
		if !s.Started || s.Revealed || s.CurrentPlayer() != p {
			return nil
		}
		if k := s.Pending; k != nil && k.By == botID {
			if err := settleKill(s, botID, k); err != nil {
				return err
			}
			continue
		}
		best := bestMove(s, p, w)
		if best == nil {
			return errNoMove
		}
		if err := s.PlayCard(botID, best.card.ID, best.zone, best.target); err != nil {
			return err
		}
	}
	return nil
}

// settleKill removes the heaviest candidate, falls back to a hidden banquet
// entry, and waives the kill when nothing is targetable.
func settleKill(s *game.Session, botID string, k *game.PendingKill) error {
	bestID, bestWeight := "", -1
	for _, id := range k.Candidates {
		if w := candidateWeight(s, k, id); w > bestWeight {
			bestID, bestWeight = id, w
		}
	}
	if bestID != "" {
		return s.ResolveKill(botID, bestID, "")
	}
	if k.HiddenTop > 0 {
		return s.ResolveKill(botID, "", game.SignTop)
	}
	if k.HiddenBottom > 0 {
		return s.ResolveKill(botID, "", game.SignBottom)
	}
	return s.CancelKill(botID)
}

func candidateWeight(s *game.Session, k *game.PendingKill, cardID string) int {
	if k.Area == game.AreaBanquet {
		for _, piles := range s.Banquet {
			for _, c := range append(append([]*game.Card(nil), piles.Top...), piles.Bottom...) {
				if c.ID == cardID {
					return c.Weight()
				}
			}
		}
		return 0
	}
	target := s.PlayerByID(k.TargetPlayer)
	if target == nil {
		return 0
	}
	for _, c := range target.Domain {
		if c.ID == cardID {
			return c.Weight()
		}
	}
	return 0
}

// bestMove scores every (card, zone) pair for the still-open categories.
func bestMove(s *game.Session, p *game.Player, w config.Weights) *candidateMove {
	rival := leadingRival(s, p)
	var best *candidateMove
	consider := func(m candidateMove) {
		if best == nil || m.score > best.score {
			c := m
			best = &c
		}
	}
	for _, card := range p.Hand {
		if !p.Moves.Used(game.CategoryBanquet) {
			consider(candidateMove{card: card, zone: game.ZoneBanquetTop,
				score: scorePlay(s, p, card, game.ZoneBanquetTop, rival, w)})
			consider(candidateMove{card: card, zone: game.ZoneBanquetBottom,
				score: scorePlay(s, p, card, game.ZoneBanquetBottom, rival, w)})
		}
		if !p.Moves.Used(game.CategorySelf) {
			consider(candidateMove{card: card, zone: game.ZoneSelf,
				score: scorePlay(s, p, card, game.ZoneSelf, rival, w)})
		}
		if !p.Moves.Used(game.CategoryOpponent) {
			m := candidateMove{card: card, zone: game.ZoneOpponent,
				score: scorePlay(s, p, card, game.ZoneOpponent, rival, w)}
			if rival != nil {
				m.target = rival.ID
			}
			consider(m)
		}
	}
	return best
}

func scorePlay(s *game.Session, p *game.Player, card *game.Card, zone game.Zone, rival *game.Player, w config.Weights) int {
	score := card.Weight()
	switch zone {
	case game.ZoneSelf:
		if card.Type == game.TypeDouble {
			score += w.WDoubleDomain
		}
		if card.Type == game.TypeShield {
			score += w.WShieldKeep
		}
	case game.ZoneOpponent:
		if card.Type == game.TypeKiller {
			score += w.WKillerThreat
		}
	case game.ZoneBanquetTop:
		if card.Type == game.TypeSpy {
			score += w.WSpyBanquet
		}
		score += w.WTopOwnColor * colorCount(p, card.Color)
	case game.ZoneBanquetBottom:
		if card.Type == game.TypeSpy {
			score += w.WSpyBanquet + 2
		}
		if rival != nil {
			score += w.WBottomRival * colorCount(rival, card.Color)
		}
		// Sinking a color the bot holds hurts its own holdings.
		score -= w.WTopOwnColor * colorCount(p, card.Color)
	}
	return score
}

func colorCount(p *game.Player, color game.Color) int {
	n := 0
	for _, c := range p.Domain {
		if c.Color == color && !c.Hidden {
			n++
		}
	}
	return n
}

// leadingRival picks the opponent with the highest running score.
func leadingRival(s *game.Session, p *game.Player) *game.Player {
	scores := s.Scores()
	var lead *game.Player
	for _, other := range s.Players {
		if other == p {
			continue
		}
		if lead == nil || scores[other.ID] > scores[lead.ID] {
			lead = other
		}
	}
	return lead
}
