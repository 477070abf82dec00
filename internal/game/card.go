package game

import (
	"fmt"
	"math/rand"
)

// Color identifies one of the six card colors.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
)

// AllColors lists every color in a fixed order used for deck building and scoring.
var AllColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}

// CardType identifies one of the five card types.
type CardType string

const (
	TypeCommon CardType = "common"
	TypeDouble CardType = "double"
	TypeShield CardType = "shield"
	TypeKiller CardType = "killer"
	TypeSpy    CardType = "spy"
)

// AllTypes lists every card type in deck-building order.
var AllTypes = []CardType{TypeCommon, TypeDouble, TypeShield, TypeKiller, TypeSpy}

// baseTypeCounts is the per-color count of each type at multiplier 1.
var baseTypeCounts = map[CardType]int{
	TypeCommon: 7,
	TypeDouble: 2,
	TypeShield: 2,
	TypeKiller: 2,
	TypeSpy:    2,
}

// MaskedImage is the display token substituted for a hidden spy card.
const MaskedImage = "card_hidden.png"

// BackImage is the display token used for an opponent's hand placeholder.
const BackImage = "card_back.png"

// Card is a single card in a session's deck. Color and Type always hold the
// true identity; Hidden and Image are the only fields that get masked.
type Card struct {
	ID     string   `json:"id"`
	Color  Color    `json:"color"`
	Type   CardType `json:"type"`
	Owner  string   `json:"owner,omitempty"`
	Image  string   `json:"image"`
	Hidden bool     `json:"hidden"`
}

// Weight returns the card's scoring weight: 2 for double-value cards, 1 otherwise.
func (c *Card) Weight() int {
	if c.Type == TypeDouble {
		return 2
	}
	return 1
}

func imageFor(color Color, t CardType) string {
	return fmt.Sprintf("%s_%s.png", color, t)
}

// mask hides the card's outward identity. The true Color/Type stay in place.
func (c *Card) mask() {
	c.Hidden = true
	c.Image = MaskedImage
}

// unmask restores the card's true display token.
func (c *Card) unmask() {
	c.Hidden = false
	c.Image = imageFor(c.Color, c.Type)
}

// BuildDeck produces one card per (enabled color x type x count) and shuffles
// it with a single-pass uniform permutation. Card IDs are color-type-index and
// are only unique within one deck build.
func BuildDeck(cfg Config, rng *rand.Rand) []*Card {
	var deck []*Card
	for _, color := range cfg.EnabledColors {
		for _, t := range AllTypes {
			for i := 0; i < cfg.typeCount(t); i++ {
				deck = append(deck, &Card{
					ID:    fmt.Sprintf("%s-%s-%d", color, t, i+1),
					Color: color,
					Type:  t,
					Image: imageFor(color, t),
				})
			}
		}
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
