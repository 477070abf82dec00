package game

import (
	"errors"
	"testing"
)

func tc(id string, color Color, typ CardType) *Card {
	return &Card{ID: id, Color: color, Type: typ, Image: imageFor(color, typ)}
}

func giveHand(p *Player, cards ...*Card) {
	p.Hand = cards
	for _, c := range cards {
		c.Owner = p.ID
	}
}

func TestPlayCardRejections(t *testing.T) {
	setup := func() *Session {
		s := newTestSession(t, "p1", "p2")
		s.StartGame()
		giveHand(s.PlayerByID("p1"), tc("c1", ColorRed, TypeCommon), tc("c2", ColorBlue, TypeDouble), tc("c3", ColorGreen, TypeCommon))
		return s
	}

	tests := []struct {
		name    string
		prep    func(s *Session)
		player  string
		card    string
		zone    Zone
		wantErr error
	}{
		{name: "not started", prep: func(s *Session) { s.Started = false }, player: "p1", card: "c1", zone: ZoneSelf, wantErr: ErrNotStarted},
		{name: "after reveal", prep: func(s *Session) { s.Revealed = true }, player: "p1", card: "c1", zone: ZoneSelf, wantErr: ErrNotStarted},
		{name: "unknown zone", player: "p1", card: "c1", zone: Zone("table"), wantErr: ErrUnknownZone},
		{name: "unknown player", player: "ghost", card: "c1", zone: ZoneSelf, wantErr: ErrUnknownPlayer},
		{name: "not your turn", player: "p2", card: "c1", zone: ZoneSelf, wantErr: ErrNotYourTurn},
		{name: "card not in hand", player: "p1", card: "nope", zone: ZoneSelf, wantErr: ErrCardNotInHand},
		{
			name: "category already used",
			prep: func(s *Session) {
				if err := s.PlayCard("p1", "c1", ZoneSelf, ""); err != nil {
					t.Fatalf("setup play: %v", err)
				}
			},
			player: "p1", card: "c2", zone: ZoneSelf, wantErr: ErrCategoryUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setup()
			if tt.prep != nil {
				tt.prep(s)
			}
			p1 := s.PlayerByID("p1")
			handBefore := len(p1.Hand)
			domainBefore := len(p1.Domain)

			err := s.PlayCard(tt.player, tt.card, tt.zone, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PlayCard err = %v, want %v", err, tt.wantErr)
			}
			// A rejected play mutates nothing.
			if len(p1.Hand) != handBefore || len(p1.Domain) != domainBefore {
				t.Fatalf("rejected play mutated zones: hand %d->%d domain %d->%d",
					handBefore, len(p1.Hand), domainBefore, len(p1.Domain))
			}
		})
	}
}

func TestPlayFullTurn(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.StartGame()
	p1, p2 := s.PlayerByID("p1"), s.PlayerByID("p2")
	giveHand(p1, tc("c1", ColorRed, TypeCommon), tc("c2", ColorBlue, TypeDouble), tc("c3", ColorGreen, TypeCommon))
	deckBefore := len(s.Deck)

	if err := s.PlayCard("p1", "c1", ZoneBanquetTop, ""); err != nil {
		t.Fatalf("banquet play: %v", err)
	}
	if got := s.Banquet[ColorRed].Top; len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("red top pile = %v", got)
	}
	if s.CurrentPlayer() != p1 {
		t.Fatal("turn advanced after one category")
	}

	if err := s.PlayCard("p1", "c2", ZoneSelf, ""); err != nil {
		t.Fatalf("self play: %v", err)
	}
	if len(p1.Domain) != 1 || p1.Domain[0].Owner != "p1" {
		t.Fatalf("own domain = %v", p1.Domain)
	}

	if err := s.PlayCard("p1", "c3", ZoneOpponent, ""); err != nil {
		t.Fatalf("opponent play: %v", err)
	}
	// No explicit target: left neighbor receives the card.
	if len(p2.Domain) != 1 || p2.Domain[0].ID != "c3" || p2.Domain[0].Owner != "p2" {
		t.Fatalf("opponent domain = %v", p2.Domain)
	}

	// Turn complete: p1 redraws a full hand, turn passes to p2.
	if s.CurrentPlayer() != p2 {
		t.Fatalf("turn holder = %s, want p2", s.CurrentPlayer().ID)
	}
	if len(p1.Hand) != HandSize {
		t.Fatalf("p1 redraw = %d cards, want %d", len(p1.Hand), HandSize)
	}
	if len(s.Deck) != deckBefore-HandSize {
		t.Fatalf("deck = %d, want %d", len(s.Deck), deckBefore-HandSize)
	}
	if p1.Moves != (TurnMoves{}) {
		t.Fatalf("p1 moves not cleared: %+v", p1.Moves)
	}
	if got := countCards(s); got != 90 {
		t.Fatalf("card total = %d, want 90", got)
	}
}

func TestPlayExplicitOpponentTarget(t *testing.T) {
	s := newTestSession(t, "p1", "p2", "p3")
	s.StartGame()
	giveHand(s.PlayerByID("p1"), tc("c1", ColorRed, TypeCommon))

	if err := s.PlayCard("p1", "c1", ZoneOpponent, "p3"); err != nil {
		t.Fatalf("targeted play: %v", err)
	}
	if d := s.PlayerByID("p3").Domain; len(d) != 1 || d[0].ID != "c1" {
		t.Fatalf("p3 domain = %v", d)
	}
}

func TestPlaySelfTargetFallsBackToNeighbor(t *testing.T) {
	s := newTestSession(t, "p1", "p2", "p3")
	s.StartGame()
	giveHand(s.PlayerByID("p1"), tc("c1", ColorRed, TypeCommon))

	// Naming yourself is not an opponent; the left neighbor receives instead.
	if err := s.PlayCard("p1", "c1", ZoneOpponent, "p1"); err != nil {
		t.Fatalf("play: %v", err)
	}
	if d := s.PlayerByID("p2").Domain; len(d) != 1 {
		t.Fatalf("left neighbor domain = %v", d)
	}
}

func TestPlaySpyIsMasked(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.StartGame()
	giveHand(s.PlayerByID("p1"),
		tc("spy1", ColorPurple, TypeSpy),
		tc("spy2", ColorBlue, TypeSpy),
		tc("c1", ColorRed, TypeCommon),
	)

	if err := s.PlayCard("p1", "spy1", ZoneBanquetBottom, ""); err != nil {
		t.Fatalf("spy to banquet: %v", err)
	}
	// The spy never reaches a visible pile; the entry records the sign only.
	if n := len(s.Banquet[ColorPurple].Bottom); n != 0 {
		t.Fatalf("purple bottom = %d cards, want 0", n)
	}
	if len(s.Hidden) != 1 || s.Hidden[0].Sign != SignBottom || !s.Hidden[0].Card.Hidden {
		t.Fatalf("hidden entries = %+v", s.Hidden)
	}

	if err := s.PlayCard("p1", "spy2", ZoneSelf, ""); err != nil {
		t.Fatalf("spy to domain: %v", err)
	}
	d := s.PlayerByID("p1").Domain
	if len(d) != 1 || !d[0].Hidden || d[0].Image != MaskedImage {
		t.Fatalf("domain spy not masked: %+v", d[0])
	}
	// True identity survives under the mask for the reveal.
	if d[0].Color != ColorBlue || d[0].Type != TypeSpy {
		t.Fatalf("masked spy lost identity: %+v", d[0])
	}

	// The public history names neither spy.
	for _, line := range s.History {
		if containsAny(line, "purple", "blue", "spy1", "spy2") {
			t.Fatalf("history leaked spy identity: %q", line)
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if len(sub) > 0 && indexSub(s, sub) >= 0 {
			return true
		}
	}
	return false
}

func indexSub(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestKillerSuspendsTurn(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.StartGame()
	p2 := s.PlayerByID("p2")
	p2.Domain = []*Card{tc("v1", ColorRed, TypeCommon), tc("sh1", ColorBlue, TypeShield)}
	giveHand(s.PlayerByID("p1"),
		tc("b1", ColorRed, TypeCommon),
		tc("s1", ColorGreen, TypeCommon),
		tc("k1", ColorBlue, TypeKiller),
	)

	if err := s.PlayCard("p1", "b1", ZoneBanquetTop, ""); err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := s.PlayCard("p1", "s1", ZoneSelf, ""); err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := s.PlayCard("p1", "k1", ZoneOpponent, ""); err != nil {
		t.Fatalf("killer play: %v", err)
	}

	k := s.Pending
	if k == nil {
		t.Fatal("no pending kill after killer play")
	}
	if k.By != "p1" || k.Area != AreaOpponentDomain || k.TargetPlayer != "p2" {
		t.Fatalf("pending kill = %+v", k)
	}
	// Candidates were computed at queue time; shields are not candidates but
	// the freshly placed killer itself is.
	want := map[string]bool{"v1": true, "k1": true}
	if len(k.Candidates) != len(want) {
		t.Fatalf("candidates = %v", k.Candidates)
	}
	for _, id := range k.Candidates {
		if !want[id] {
			t.Fatalf("unexpected candidate %s", id)
		}
	}
	// All three categories are done, yet the turn must wait for the decision.
	if s.CurrentPlayer().ID != "p1" {
		t.Fatal("turn advanced past a pending kill")
	}
}

func TestSecondKillerWhilePendingRejected(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.StartGame()
	giveHand(s.PlayerByID("p1"),
		tc("k1", ColorRed, TypeKiller),
		tc("k2", ColorBlue, TypeKiller),
		tc("c1", ColorGreen, TypeCommon),
	)

	if err := s.PlayCard("p1", "k1", ZoneSelf, ""); err != nil {
		t.Fatalf("first killer: %v", err)
	}
	if err := s.PlayCard("p1", "k2", ZoneOpponent, ""); !errors.Is(err, ErrKillPending) {
		t.Fatalf("second killer err = %v, want ErrKillPending", err)
	}
	// A non-killer is still playable while the decision is owed.
	if err := s.PlayCard("p1", "c1", ZoneBanquetTop, ""); err != nil {
		t.Fatalf("common while pending: %v", err)
	}
}

func TestGameOverRevealsEverything(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.StartGame()
	p1, p2 := s.PlayerByID("p1"), s.PlayerByID("p2")

	// Craft the last move of the game: the deck is dry, p2's hand is empty, and
	// p1 holds exactly the three cards of the final turn.
	s.Deck = nil
	p2.Hand = nil
	spy := tc("spy1", ColorRed, TypeSpy)
	giveHand(p1, spy, tc("c1", ColorGreen, TypeCommon), tc("c2", ColorBlue, TypeCommon))
	p1.Domain = []*Card{func() *Card { c := tc("dspy", ColorGreen, TypeSpy); c.mask(); return c }()}

	if err := s.PlayCard("p1", "spy1", ZoneBanquetTop, ""); err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := s.PlayCard("p1", "c1", ZoneSelf, ""); err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := s.PlayCard("p1", "c2", ZoneOpponent, ""); err != nil {
		t.Fatalf("play: %v", err)
	}

	if !s.Revealed {
		t.Fatal("game did not reveal with deck and hands empty")
	}
	// The hidden banquet spy migrated into its true pile.
	if len(s.Hidden) != 0 {
		t.Fatalf("hidden entries survive reveal: %v", s.Hidden)
	}
	found := false
	for _, c := range s.Banquet[ColorRed].Top {
		if c.ID == "spy1" {
			found = true
			if c.Hidden {
				t.Fatal("revealed banquet spy still masked")
			}
		}
	}
	if !found {
		t.Fatal("banquet spy missing from its true pile after reveal")
	}
	// The domain spy is unmasked in place.
	if p1.Domain[0].Hidden {
		t.Fatal("domain spy still masked after reveal")
	}
	// Objectives were evaluated exactly once, at reveal.
	if p1.Graceful == nil {
		t.Fatal("objectives missing")
	}
}

func TestShortHandEndsTurnEarly(t *testing.T) {
	s := newTestSession(t, "p1", "p2")
	s.StartGame()
	p1 := s.PlayerByID("p1")

	// A dry deck can deal a short hand; playing it out must still end the
	// turn even though not every category was filled.
	s.Deck = nil
	giveHand(p1, tc("c1", ColorRed, TypeCommon))

	if err := s.PlayCard("p1", "c1", ZoneSelf, ""); err != nil {
		t.Fatalf("play: %v", err)
	}
	if s.CurrentPlayer().ID == "p1" {
		t.Fatal("turn stuck on an emptied short hand")
	}
}

func TestEmptyHandSeatsSkipped(t *testing.T) {
	s := newTestSession(t, "p1", "p2", "p3")
	s.StartGame()
	p1, p2, p3 := s.PlayerByID("p1"), s.PlayerByID("p2"), s.PlayerByID("p3")

	// Dry deck, p2 already played out; after p1's last turn only p3 can act.
	s.Deck = nil
	p2.Hand = nil
	p3.Hand = []*Card{tc("x1", ColorRed, TypeCommon), tc("x2", ColorBlue, TypeCommon), tc("x3", ColorGreen, TypeCommon)}
	giveHand(p1, tc("c1", ColorRed, TypeCommon), tc("c2", ColorGreen, TypeCommon), tc("c3", ColorBlue, TypeCommon))

	for _, play := range []struct {
		card string
		zone Zone
	}{{"c1", ZoneBanquetTop}, {"c2", ZoneSelf}, {"c3", ZoneOpponent}} {
		if err := s.PlayCard("p1", play.card, play.zone, ""); err != nil {
			t.Fatalf("play %s: %v", play.card, err)
		}
	}

	if s.Revealed {
		t.Fatal("revealed while a hand still holds cards")
	}
	if s.CurrentPlayer() != p3 {
		t.Fatalf("turn holder = %s, want p3 (p2 has no cards)", s.CurrentPlayer().ID)
	}
}
