package game

// Zone is a play destination requested by the client.
type Zone string

const (
	ZoneBanquetTop    Zone = "banquet_top"
	ZoneBanquetBottom Zone = "banquet_bottom"
	ZoneSelf          Zone = "self"
	ZoneOpponent      Zone = "opponent"
)

// MoveCategory is one of the three required move slots per turn. Both banquet
// sub-zones share the banquet category.
type MoveCategory int

const (
	CategoryBanquet MoveCategory = iota
	CategorySelf
	CategoryOpponent
)

// zoneCategory maps a target zone to its move category.
func zoneCategory(z Zone) (MoveCategory, error) {
	switch z {
	case ZoneBanquetTop, ZoneBanquetBottom:
		return CategoryBanquet, nil
	case ZoneSelf:
		return CategorySelf, nil
	case ZoneOpponent:
		return CategoryOpponent, nil
	default:
		return 0, ErrUnknownZone
	}
}

// TurnMoves records the card played per category this turn. An empty string
// means the category is still open. The three named slots keep the
// "already played" check exhaustive.
type TurnMoves struct {
	Banquet  string `json:"banquet"`
	Self     string `json:"self"`
	Opponent string `json:"opponent"`
}

func (m *TurnMoves) slot(cat MoveCategory) *string {
	switch cat {
	case CategoryBanquet:
		return &m.Banquet
	case CategorySelf:
		return &m.Self
	default:
		return &m.Opponent
	}
}

// Used reports whether the category already holds a play this turn.
func (m *TurnMoves) Used(cat MoveCategory) bool {
	return *m.slot(cat) != ""
}

func (m *TurnMoves) record(cat MoveCategory, cardID string) {
	*m.slot(cat) = cardID
}

// Complete reports whether all three categories are satisfied.
func (m *TurnMoves) Complete() bool {
	return m.Banquet != "" && m.Self != "" && m.Opponent != ""
}
