package game

// KillArea is the zone a pending kill may strike.
type KillArea string

const (
	AreaSelfDomain     KillArea = "self_domain"
	AreaOpponentDomain KillArea = "opponent_domain"
	AreaBanquet        KillArea = "banquet"
)

// PendingKill is the at-most-one nested decision created the instant a killer
// card is placed. The player who played the killer decides; while present,
// turn advancement is suspended.
type PendingKill struct {
	By           string   // deciding player, always the one who played the killer
	Area         KillArea
	TargetPlayer string   // domain areas only
	Candidates   []string // non-shield card ids targetable by identity
	HiddenTop    int      // banquet only: hidden entries targetable by position
	HiddenBottom int
}

func (k *PendingKill) candidate(cardID string) bool {
	for _, id := range k.Candidates {
		if id == cardID {
			return true
		}
	}
	return false
}

// queueKill computes the candidate set at queue time and suspends the turn.
func (s *Session) queueKill(actor *Player, zone Zone, opponent *Player) {
	k := &PendingKill{By: actor.ID}
	switch zone {
	case ZoneSelf:
		k.Area = AreaSelfDomain
		k.TargetPlayer = actor.ID
		k.Candidates = nonShieldIDs(actor.Domain)
	case ZoneOpponent:
		k.Area = AreaOpponentDomain
		k.TargetPlayer = opponent.ID
		k.Candidates = nonShieldIDs(opponent.Domain)
	default:
		k.Area = AreaBanquet
		for _, color := range s.Cfg.EnabledColors {
			piles := s.Banquet[color]
			k.Candidates = append(k.Candidates, nonShieldIDs(piles.Top)...)
			k.Candidates = append(k.Candidates, nonShieldIDs(piles.Bottom)...)
		}
		for _, e := range s.Hidden {
			if e.Sign == SignTop {
				k.HiddenTop++
			} else {
				k.HiddenBottom++
			}
		}
	}
	s.Pending = k
}

func nonShieldIDs(cards []*Card) []string {
	var ids []string
	for _, c := range cards {
		if c.Type != TypeShield {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ResolveKill settles the pending decision with either an explicit candidate
// card id or, for the banquet's hidden entries, a position sign. A hidden-sign
// resolution removes one matching entry without ever exposing its identity.
// Clearing the kill re-checks turn completion.
func (s *Session) ResolveKill(playerID, cardID string, hiddenSign Sign) error {
	k := s.Pending
	if k == nil {
		return ErrNoKillPending
	}
	if k.By != playerID {
		return ErrNotKillDecider
	}
	if cardID == "" && hiddenSign == "" {
		return ErrNoKillTarget
	}

	actor := s.PlayerByID(playerID)
	if hiddenSign != "" {
		if k.Area != AreaBanquet {
			return ErrBadKillTarget
		}
		idx := -1
		for i, e := range s.Hidden {
			if e.Sign == hiddenSign {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrBadKillTarget
		}
		victim := s.Hidden[idx].Card
		s.Hidden = append(s.Hidden[:idx], s.Hidden[idx+1:]...)
		s.Removed = append(s.Removed, victim)
		s.logf("%s killed a hidden card from the banquet (%s)", actor.DisplayName(), hiddenSign)
	} else {
		if !k.candidate(cardID) {
			return ErrBadKillTarget
		}
		zone, idx := s.findInArea(k, cardID)
		if zone == nil {
			return ErrBadKillTarget
		}
		victim := (*zone)[idx]
		if victim.Type == TypeShield {
			return ErrShielded
		}
		*zone = append((*zone)[:idx], (*zone)[idx+1:]...)
		s.Removed = append(s.Removed, victim)
		s.logf("%s killed %s", actor.DisplayName(), describeCard(victim))
	}

	s.Pending = nil
	s.advanceIfComplete()
	return nil
}

// findInArea locates the named card inside the pending kill's area without
// removing it, returning the holding zone and index, or (nil, -1).
func (s *Session) findInArea(k *PendingKill, cardID string) (*[]*Card, int) {
	if k.Area == AreaBanquet {
		for _, color := range s.Cfg.EnabledColors {
			piles := s.Banquet[color]
			if i := indexOf(piles.Top, cardID); i >= 0 {
				return &piles.Top, i
			}
			if i := indexOf(piles.Bottom, cardID); i >= 0 {
				return &piles.Bottom, i
			}
		}
		return nil, -1
	}
	target := s.PlayerByID(k.TargetPlayer)
	if target == nil {
		return nil, -1
	}
	if i := indexOf(target.Domain, cardID); i >= 0 {
		return &target.Domain, i
	}
	return nil, -1
}

func indexOf(cards []*Card, cardID string) int {
	for i, c := range cards {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// CancelKill clears the pending decision without removing anything. Only the
// deciding player may cancel; the History records the waived kill.
func (s *Session) CancelKill(playerID string) error {
	k := s.Pending
	if k == nil {
		return ErrNoKillPending
	}
	if k.By != playerID {
		return ErrNotKillDecider
	}
	s.logf("%s didn't kill anyone", s.PlayerByID(playerID).DisplayName())
	s.Pending = nil
	s.advanceIfComplete()
	return nil
}
