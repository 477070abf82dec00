package game

// PlayCard validates and applies one play. All precondition failures abort
// with zero mutation. On success the card leaves the actor's hand, is routed
// to the requested zone with type-specific masking, a viewer-safe history
// entry is appended, a killer triggers the kill decision, and the turn
// advances once all three categories are satisfied with no kill pending.
func (s *Session) PlayCard(playerID, cardID string, zone Zone, targetPlayerID string) error {
	if !s.Started || s.Revealed {
		return ErrNotStarted
	}
	cat, err := zoneCategory(zone)
	if err != nil {
		return err
	}
	p := s.PlayerByID(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if s.CurrentPlayer() != p {
		return ErrNotYourTurn
	}
	idx := -1
	for i, c := range p.Hand {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCardNotInHand
	}
	if p.Moves.Used(cat) {
		return ErrCategoryUsed
	}
	card := p.Hand[idx]
	if card.Type == TypeKiller && s.Pending != nil {
		// At most one kill decision may exist; the owed one must resolve first.
		return ErrKillPending
	}
	var opponent *Player
	if zone == ZoneOpponent {
		opponent = s.resolveOpponent(p, targetPlayerID)
	}

	// Validation done, mutate.
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	if card.Type == TypeSpy && !s.Revealed {
		card.mask()
	}

	switch zone {
	case ZoneBanquetTop, ZoneBanquetBottom:
		sign := SignTop
		if zone == ZoneBanquetBottom {
			sign = SignBottom
		}
		card.Owner = ""
		if card.Hidden {
			s.Hidden = append(s.Hidden, HiddenEntry{Card: card, Sign: sign})
		} else {
			piles := s.Banquet[card.Color]
			if sign == SignTop {
				piles.Top = append(piles.Top, card)
			} else {
				piles.Bottom = append(piles.Bottom, card)
			}
		}
		s.logf("%s played %s to the banquet (%s)", p.DisplayName(), describeCard(card), sign)
	case ZoneSelf:
		card.Owner = p.ID
		p.Domain = append(p.Domain, card)
		s.logf("%s played %s to their own domain", p.DisplayName(), describeCard(card))
	case ZoneOpponent:
		card.Owner = opponent.ID
		opponent.Domain = append(opponent.Domain, card)
		s.logf("%s played %s to %s's domain", p.DisplayName(), describeCard(card), opponent.DisplayName())
	}

	p.Moves.record(cat, cardID)

	if card.Type == TypeKiller {
		s.queueKill(p, zone, opponent)
	}

	s.advanceIfComplete()
	return nil
}

// resolveOpponent picks the concrete opponent for an opponent-zone play: the
// explicit target when it names another participant, otherwise the left
// neighbor in turn order.
func (s *Session) resolveOpponent(actor *Player, targetID string) *Player {
	if targetID != "" && targetID != actor.ID {
		if t := s.PlayerByID(targetID); t != nil {
			return t
		}
	}
	return s.leftNeighbor(actor)
}

// leftNeighbor returns the next player in seating order after the actor.
func (s *Session) leftNeighbor(actor *Player) *Player {
	for i, p := range s.Players {
		if p == actor {
			return s.Players[(i+1)%len(s.Players)]
		}
	}
	return actor
}

// advanceIfComplete ends the turn once all three move categories are done and
// no kill decision is pending. A hand that runs out mid-turn also ends the
// turn: late game the deck may deal short hands that cannot fill every
// category.
func (s *Session) advanceIfComplete() {
	p := s.CurrentPlayer()
	if p == nil || s.Pending != nil {
		return
	}
	if !p.Moves.Complete() && len(p.Hand) > 0 {
		return
	}
	s.endTurn()
}

// endTurn clears the mover's record, redraws their hand, rotates the pointer
// and runs game-over detection. The draw goes to the player who just
// finished, not the incoming one.
func (s *Session) endTurn() {
	p := s.CurrentPlayer()
	p.Moves = TurnMoves{}
	s.drawTo(p, HandSize)
	s.Turn = (s.Turn + 1) % len(s.Players)

	if s.checkGameOver() {
		return
	}
	// Late game the draw pile runs dry and emptied hands can no longer fill
	// the three categories; skip those seats so the game can wind down.
	for i := 0; i < len(s.Players) && len(s.CurrentPlayer().Hand) == 0; i++ {
		s.Turn = (s.Turn + 1) % len(s.Players)
	}
}

// checkGameOver fires the reveal once the draw pile and every hand are empty.
func (s *Session) checkGameOver() bool {
	if !s.Started || s.Revealed || len(s.Deck) > 0 {
		return false
	}
	for _, p := range s.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	s.reveal()
	return true
}

// reveal is the one-time, irreversible end-of-game event: every hidden card
// gets its true identity back, hidden banquet entries move into their true
// piles, and private objectives are evaluated.
func (s *Session) reveal() {
	s.Revealed = true
	s.Pending = nil

	for _, p := range s.Players {
		for _, c := range p.Domain {
			if c.Hidden {
				c.unmask()
			}
		}
	}
	for _, piles := range s.Banquet {
		for _, c := range append(append([]*Card(nil), piles.Top...), piles.Bottom...) {
			if c.Hidden {
				c.unmask()
			}
		}
	}
	for _, e := range s.Hidden {
		e.Card.unmask()
		piles := s.Banquet[e.Card.Color]
		if e.Sign == SignTop {
			piles.Top = append(piles.Top, e.Card)
		} else {
			piles.Bottom = append(piles.Bottom, e.Card)
		}
	}
	s.Hidden = nil

	for _, p := range s.Players {
		if p.Graceful != nil {
			p.GracefulMet = p.Graceful.Met(s, p)
		}
		if p.Disgraceful != nil {
			p.DisgracefulMet = p.Disgraceful.Met(s, p)
		}
	}
	s.logf("The banquet is over; every mask has fallen")
}
