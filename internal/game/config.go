package game

const (
	// MinPlayers is the fewest participants a game can start with.
	MinPlayers = 2
	// MaxPlayersLimit caps the configurable seat count.
	MaxPlayersLimit = 4
	// HandSize is dealt at start and redrawn at every turn end.
	HandSize = 3
	// maxTypeCount bounds per-type counts after multiplier or override.
	maxTypeCount = 12
	// maxMultiplier bounds the deck size multiplier.
	maxMultiplier = 5
	// historyLimit bounds the public history log.
	historyLimit = 80
	// ObjectiveBonus is added per met private objective after reveal.
	ObjectiveBonus = 3
)

// Config holds the per-session settings supplied at creation time.
type Config struct {
	MaxPlayers     int              `json:"maxPlayers"`
	DeckMultiplier int              `json:"deckMultiplier"`
	EnabledColors  []Color          `json:"enabledColors,omitempty"`
	TypeCounts     map[CardType]int `json:"typeCounts,omitempty"`
}

// Normalize clamps every field into its legal range and fills defaults.
func (c Config) Normalize() Config {
	if c.MaxPlayers < MinPlayers {
		c.MaxPlayers = MinPlayers
	}
	if c.MaxPlayers > MaxPlayersLimit {
		c.MaxPlayers = MaxPlayersLimit
	}
	if c.DeckMultiplier < 1 {
		c.DeckMultiplier = 1
	}
	if c.DeckMultiplier > maxMultiplier {
		c.DeckMultiplier = maxMultiplier
	}
	if len(c.EnabledColors) == 0 {
		c.EnabledColors = append([]Color(nil), AllColors...)
	}
	return c
}

// typeCount resolves the per-color count for one type: explicit override if
// configured, otherwise base distribution times the multiplier, clamped.
func (c Config) typeCount(t CardType) int {
	n, overridden := c.TypeCounts[t]
	if !overridden {
		n = baseTypeCounts[t] * c.DeckMultiplier
	}
	if n < 0 {
		n = 0
	}
	if n > maxTypeCount {
		n = maxTypeCount
	}
	return n
}

// EffectiveTypeCounts reports the per-color count of every card type after
// overrides, multiplier and clamping are applied.
func (c Config) EffectiveTypeCounts() map[CardType]int {
	out := make(map[CardType]int, len(AllTypes))
	for _, t := range AllTypes {
		out[t] = c.typeCount(t)
	}
	return out
}

// DeckSize reports how many cards one deck build yields.
func (c Config) DeckSize() int {
	perColor := 0
	for _, t := range AllTypes {
		perColor += c.typeCount(t)
	}
	return perColor * len(c.EnabledColors)
}
