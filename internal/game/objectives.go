package game

// ObjectiveKind splits the catalog into the two private goals every player
// receives one of each.
type ObjectiveKind string

const (
	KindGraceful    ObjectiveKind = "graceful"
	KindDisgraceful ObjectiveKind = "disgraceful"
)

// Objective is a private per-player scoring condition evaluated once, at
// reveal, against the final domain/banquet state.
type Objective struct {
	ID          string        `json:"id"`
	Kind        ObjectiveKind `json:"kind"`
	Description string        `json:"description"`
	Met         func(s *Session, p *Player) bool `json:"-"`
}

var gracefulObjectives = []*Objective{
	{
		ID: "host-of-plenty", Kind: KindGraceful,
		Description: "End the game with six or more cards in your domain",
		Met: func(_ *Session, p *Player) bool { return len(p.Domain) >= 6 },
	},
	{
		ID: "true-colors", Kind: KindGraceful,
		Description: "End the game with three domain cards of one color",
		Met: func(s *Session, p *Player) bool {
			counts := map[Color]int{}
			for _, c := range p.Domain {
				counts[c.Color]++
				if counts[c.Color] >= 3 {
					return true
				}
			}
			return false
		},
	},
	{
		ID: "honored-guest", Kind: KindGraceful,
		Description: "Hold at least one shield in your domain",
		Met: func(_ *Session, p *Player) bool {
			for _, c := range p.Domain {
				if c.Type == TypeShield {
					return true
				}
			}
			return false
		},
	},
	{
		ID: "banquet-patron", Kind: KindGraceful,
		Description: "The banquet ends with more top cards than bottom cards",
		Met: func(s *Session, _ *Player) bool {
			top, bottom := 0, 0
			for _, piles := range s.Banquet {
				top += len(piles.Top)
				bottom += len(piles.Bottom)
			}
			return top > bottom
		},
	},
}

var disgracefulObjectives = []*Objective{
	{
		ID: "poisoned-well", Kind: KindDisgraceful,
		Description: "Some color's bottom pile ends with three or more cards",
		Met: func(s *Session, _ *Player) bool {
			for _, piles := range s.Banquet {
				if len(piles.Bottom) >= 3 {
					return true
				}
			}
			return false
		},
	},
	{
		ID: "empty-chair", Kind: KindDisgraceful,
		Description: "Some other guest ends with two or fewer domain cards",
		Met: func(s *Session, p *Player) bool {
			for _, other := range s.Players {
				if other != p && len(other.Domain) <= 2 {
					return true
				}
			}
			return false
		},
	},
	{
		ID: "spy-master", Kind: KindDisgraceful,
		Description: "End the game with two or more spies in your domain",
		Met: func(_ *Session, p *Player) bool {
			spies := 0
			for _, c := range p.Domain {
				if c.Type == TypeSpy {
					spies++
				}
			}
			return spies >= 2
		},
	},
	{
		ID: "ruined-color", Kind: KindDisgraceful,
		Description: "Some color ends with a negative banquet value",
		Met: func(s *Session, _ *Player) bool {
			for _, color := range s.Cfg.EnabledColors {
				if s.colorValue(color) < 0 {
					return true
				}
			}
			return false
		},
	},
}

// assignObjectives shuffles each catalog and deals one graceful and one
// disgraceful objective per player; with up to four players every pair is
// distinct.
func (s *Session) assignObjectives() {
	graceful := append([]*Objective(nil), gracefulObjectives...)
	disgraceful := append([]*Objective(nil), disgracefulObjectives...)
	s.rng.Shuffle(len(graceful), func(i, j int) { graceful[i], graceful[j] = graceful[j], graceful[i] })
	s.rng.Shuffle(len(disgraceful), func(i, j int) { disgraceful[i], disgraceful[j] = disgraceful[j], disgraceful[i] })
	for i, p := range s.Players {
		p.Graceful = graceful[i%len(graceful)]
		p.Disgraceful = disgraceful[i%len(disgraceful)]
	}
}
