package game

// colorValue is the banquet net value for one color: weighted top pile minus
// weighted bottom pile. Still-hidden cards never sit in the visible piles, so
// the same walk yields the visible value before reveal and the full value
// after.
func (s *Session) colorValue(color Color) int {
	piles, ok := s.Banquet[color]
	if !ok {
		return 0
	}
	value := 0
	for _, c := range piles.Top {
		if !c.Hidden {
			value += c.Weight()
		}
	}
	for _, c := range piles.Bottom {
		if !c.Hidden {
			value -= c.Weight()
		}
	}
	return value
}

// holdings is the player's weighted domain count for one color. Spy cards are
// excluded while still hidden.
func (p *Player) holdings(color Color) int {
	total := 0
	for _, c := range p.Domain {
		if c.Color == color && !c.Hidden {
			total += c.Weight()
		}
	}
	return total
}

// Score computes the player's running total: per-color banquet value times
// holdings, plus the objective bonuses once revealed.
func (s *Session) Score(p *Player) int {
	total := 0
	for _, color := range s.Cfg.EnabledColors {
		total += s.colorValue(color) * p.holdings(color)
	}
	if s.Revealed {
		if p.GracefulMet {
			total += ObjectiveBonus
		}
		if p.DisgracefulMet {
			total += ObjectiveBonus
		}
	}
	return total
}

// Scores returns every player's running total keyed by player id.
func (s *Session) Scores() map[string]int {
	scores := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		scores[p.ID] = s.Score(p)
	}
	return scores
}
