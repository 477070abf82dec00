package game

// Snapshot is the per-viewer projection of a session. Every card inside it is
// a freshly built value type; nothing aliases the authoritative records.
type Snapshot struct {
	You         string            `json:"you"`
	Started     bool              `json:"started"`
	Revealed    bool              `json:"revealed"`
	DeckCount   int               `json:"deckCount"`
	CurrentTurn string            `json:"currentTurnId,omitempty"`
	TurnMoves   TurnMoves         `json:"turnMoves"`
	Players     []PlayerSnapshot  `json:"players"`
	Banquet     BanquetSnapshot   `json:"banquetDetails"`
	PendingKill *KillSnapshot     `json:"pendingKill,omitempty"`
	Scores      map[string]int    `json:"scores"`
	History     []string          `json:"history"`
	// Objectives carries the requester's own pair; PlayerObjectives is
	// populated for everyone only after reveal, for score transparency.
	Objectives       []ObjectiveSnapshot            `json:"objectives,omitempty"`
	PlayerObjectives map[string][]ObjectiveSnapshot `json:"playerObjectives,omitempty"`
}

// SnapshotCard is a viewer-safe card. A masked card keeps its id as an opaque
// targeting token but exposes no color, type or true image.
type SnapshotCard struct {
	ID     string `json:"id,omitempty"`
	Color  string `json:"color,omitempty"`
	Type   string `json:"type,omitempty"`
	Image  string `json:"image"`
	Hidden bool   `json:"hidden,omitempty"`
}

// PlayerSnapshot is one participant as seen by the requesting viewer.
type PlayerSnapshot struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	IsBot     bool           `json:"isBot,omitempty"`
	HandCount int            `json:"handCount"`
	Hand      []SnapshotCard `json:"hand"`
	Domain    []SnapshotCard `json:"domain"`
}

// PileSnapshot is one color's visible banquet piles.
type PileSnapshot struct {
	Top    []SnapshotCard `json:"top"`
	Bottom []SnapshotCard `json:"bottom"`
}

// BanquetSnapshot is the shared scoring track plus the positional counts of
// still-hidden entries.
type BanquetSnapshot struct {
	ByColor           map[string]PileSnapshot `json:"byColor"`
	HiddenTopCount    int                     `json:"hiddenTopCount"`
	HiddenBottomCount int                     `json:"hiddenBottomCount"`
}

// KillSnapshot is the public descriptor of the pending kill decision.
type KillSnapshot struct {
	By                string   `json:"by"`
	Area              string   `json:"area"`
	TargetPlayer      string   `json:"targetPlayerId,omitempty"`
	CandidateCardIDs  []string `json:"candidateCardIds"`
	HiddenTopCount    int      `json:"hiddenTopCount"`
	HiddenBottomCount int      `json:"hiddenBottomCount"`
}

// ObjectiveSnapshot is an objective with its met-status, which stays unset
// until reveal.
type ObjectiveSnapshot struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Met         *bool  `json:"met,omitempty"`
}

// projectCard copies a card for a viewer. Hidden cards keep only the id.
func projectCard(c *Card) SnapshotCard {
	if c.Hidden {
		return SnapshotCard{ID: c.ID, Image: MaskedImage, Hidden: true}
	}
	return SnapshotCard{ID: c.ID, Color: string(c.Color), Type: string(c.Type), Image: c.Image}
}

func projectCards(cards []*Card) []SnapshotCard {
	out := make([]SnapshotCard, len(cards))
	for i, c := range cards {
		out[i] = projectCard(c)
	}
	return out
}

func projectObjectives(p *Player, revealed bool) []ObjectiveSnapshot {
	var out []ObjectiveSnapshot
	for _, pair := range []struct {
		obj *Objective
		met bool
	}{{p.Graceful, p.GracefulMet}, {p.Disgraceful, p.DisgracefulMet}} {
		if pair.obj == nil {
			continue
		}
		snap := ObjectiveSnapshot{
			ID:          pair.obj.ID,
			Kind:        string(pair.obj.Kind),
			Description: pair.obj.Description,
		}
		if revealed {
			met := pair.met
			snap.Met = &met
		}
		out = append(out, snap)
	}
	return out
}

// Snapshot builds the masked view for one requesting player. It is read-only
// and side-effect-free. Opponents' hands are reduced to placeholders (count
// preserved, content destroyed); still-hidden spy cards are masked in every
// domain view, the owner's included.
func (s *Session) Snapshot(forPlayerID string) Snapshot {
	snap := Snapshot{
		You:       forPlayerID,
		Started:   s.Started,
		Revealed:  s.Revealed,
		DeckCount: len(s.Deck),
		Scores:    s.Scores(),
		History:   append([]string(nil), s.History...),
	}
	if s.Started {
		if cur := s.CurrentPlayer(); cur != nil {
			snap.CurrentTurn = cur.ID
			snap.TurnMoves = cur.Moves
		}
	}

	snap.Players = make([]PlayerSnapshot, len(s.Players))
	for i, p := range s.Players {
		ps := PlayerSnapshot{
			ID:        p.ID,
			Name:      p.Name,
			IsBot:     p.IsBot,
			HandCount: len(p.Hand),
			Domain:    projectCards(p.Domain),
		}
		if p.ID == forPlayerID {
			ps.Hand = projectCards(p.Hand)
		} else {
			ps.Hand = make([]SnapshotCard, len(p.Hand))
			for j := range ps.Hand {
				ps.Hand[j] = SnapshotCard{Image: BackImage, Hidden: true}
			}
		}
		snap.Players[i] = ps
	}

	snap.Banquet = BanquetSnapshot{ByColor: make(map[string]PileSnapshot, len(s.Banquet))}
	for _, color := range s.Cfg.EnabledColors {
		piles := s.Banquet[color]
		snap.Banquet.ByColor[string(color)] = PileSnapshot{
			Top:    projectCards(piles.Top),
			Bottom: projectCards(piles.Bottom),
		}
	}
	for _, e := range s.Hidden {
		if e.Sign == SignTop {
			snap.Banquet.HiddenTopCount++
		} else {
			snap.Banquet.HiddenBottomCount++
		}
	}

	if k := s.Pending; k != nil {
		snap.PendingKill = &KillSnapshot{
			By:                k.By,
			Area:              string(k.Area),
			TargetPlayer:      k.TargetPlayer,
			CandidateCardIDs:  append([]string(nil), k.Candidates...),
			HiddenTopCount:    k.HiddenTop,
			HiddenBottomCount: k.HiddenBottom,
		}
	}

	if viewer := s.PlayerByID(forPlayerID); viewer != nil {
		snap.Objectives = projectObjectives(viewer, s.Revealed)
	}
	if s.Revealed {
		snap.PlayerObjectives = make(map[string][]ObjectiveSnapshot, len(s.Players))
		for _, p := range s.Players {
			snap.PlayerObjectives[p.ID] = projectObjectives(p, true)
		}
	}
	return snap
}
