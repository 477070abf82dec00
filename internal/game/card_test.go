package game

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestBuildDeckBaseDistribution(t *testing.T) {
	cfg := Config{MaxPlayers: 2, DeckMultiplier: 1}.Normalize()
	deck := BuildDeck(cfg, rand.New(rand.NewSource(1)))

	if len(deck) != 90 {
		t.Fatalf("deck size = %d, want 90", len(deck))
	}
	if got := cfg.DeckSize(); got != len(deck) {
		t.Fatalf("DeckSize() = %d, deck has %d", got, len(deck))
	}

	seen := make(map[string]bool)
	perType := make(map[CardType]int)
	for _, c := range deck {
		if seen[c.ID] {
			t.Fatalf("duplicate card id: %s", c.ID)
		}
		seen[c.ID] = true
		perType[c.Type]++
		if c.Hidden {
			t.Fatalf("fresh card %s built hidden", c.ID)
		}
		if c.Image != fmt.Sprintf("%s_%s.png", c.Color, c.Type) {
			t.Fatalf("card %s image = %q", c.ID, c.Image)
		}
	}
	// 6 colors x base counts.
	wants := map[CardType]int{TypeCommon: 42, TypeDouble: 12, TypeShield: 12, TypeKiller: 12, TypeSpy: 12}
	for typ, want := range wants {
		if perType[typ] != want {
			t.Fatalf("%s count = %d, want %d", typ, perType[typ], want)
		}
	}
}

func TestConfigTypeCounts(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		typ  CardType
		want int
	}{
		{name: "base common", cfg: Config{DeckMultiplier: 1}, typ: TypeCommon, want: 7},
		{name: "multiplier doubles", cfg: Config{DeckMultiplier: 2}, typ: TypeSpy, want: 4},
		{name: "multiplied count clamps at 12", cfg: Config{DeckMultiplier: 5}, typ: TypeCommon, want: 12},
		{name: "override wins over multiplier", cfg: Config{DeckMultiplier: 3, TypeCounts: map[CardType]int{TypeKiller: 1}}, typ: TypeKiller, want: 1},
		{name: "override clamps low", cfg: Config{DeckMultiplier: 1, TypeCounts: map[CardType]int{TypeSpy: -4}}, typ: TypeSpy, want: 0},
		{name: "override clamps high", cfg: Config{DeckMultiplier: 1, TypeCounts: map[CardType]int{TypeDouble: 99}}, typ: TypeDouble, want: 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg.Normalize()
			if got := cfg.typeCount(tt.typ); got != tt.want {
				t.Fatalf("typeCount(%s) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name           string
		in             Config
		wantPlayers    int
		wantMultiplier int
		wantColors     int
	}{
		{name: "zero value gets defaults", in: Config{}, wantPlayers: 2, wantMultiplier: 1, wantColors: 6},
		{name: "players clamp high", in: Config{MaxPlayers: 9, DeckMultiplier: 1}, wantPlayers: 4, wantMultiplier: 1, wantColors: 6},
		{name: "multiplier clamp high", in: Config{MaxPlayers: 3, DeckMultiplier: 50}, wantPlayers: 3, wantMultiplier: 5, wantColors: 6},
		{name: "explicit colors kept", in: Config{MaxPlayers: 2, DeckMultiplier: 1, EnabledColors: []Color{ColorRed, ColorBlue}}, wantPlayers: 2, wantMultiplier: 1, wantColors: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.MaxPlayers != tt.wantPlayers {
				t.Fatalf("MaxPlayers = %d, want %d", got.MaxPlayers, tt.wantPlayers)
			}
			if got.DeckMultiplier != tt.wantMultiplier {
				t.Fatalf("DeckMultiplier = %d, want %d", got.DeckMultiplier, tt.wantMultiplier)
			}
			if len(got.EnabledColors) != tt.wantColors {
				t.Fatalf("EnabledColors = %d, want %d", len(got.EnabledColors), tt.wantColors)
			}
		})
	}
}

func TestCardWeight(t *testing.T) {
	if w := (&Card{Type: TypeDouble}).Weight(); w != 2 {
		t.Fatalf("double weight = %d, want 2", w)
	}
	for _, typ := range []CardType{TypeCommon, TypeShield, TypeKiller, TypeSpy} {
		if w := (&Card{Type: typ}).Weight(); w != 1 {
			t.Fatalf("%s weight = %d, want 1", typ, w)
		}
	}
}

func TestMaskRoundTrip(t *testing.T) {
	c := &Card{ID: "blue-spy-1", Color: ColorBlue, Type: TypeSpy, Image: imageFor(ColorBlue, TypeSpy)}
	c.mask()
	if !c.Hidden || c.Image != MaskedImage {
		t.Fatalf("mask left card visible: %+v", c)
	}
	if c.Color != ColorBlue || c.Type != TypeSpy {
		t.Fatalf("mask destroyed true identity: %+v", c)
	}
	c.unmask()
	if c.Hidden || c.Image != "blue_spy.png" {
		t.Fatalf("unmask failed: %+v", c)
	}
}
