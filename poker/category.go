package poker

import "github.com/pkg/errors"

// HandCategory identifies one of the nine hand categories. A royal flush is
// the top straight flush, not a category of its own; DisplayName surfaces
// it as a label only.
type HandCategory int32

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// categoryStrength is the explicit strength table for the total order over
// results. Comparisons go through this table rather than trusting the
// declaration order of the constants above; the table itself is verified by
// tests against the known hand hierarchy.
var categoryStrength = map[HandCategory]int32{
	HighCard:      0,
	OnePair:       1,
	TwoPair:       2,
	ThreeOfAKind:  3,
	Straight:      4,
	Flush:         5,
	FullHouse:     6,
	FourOfAKind:   7,
	StraightFlush: 8,
}

var categoryNames = map[HandCategory]string{
	HighCard:      "High Card",
	OnePair:       "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

// Strength returns the integer strength used by the comparator. Higher is
// stronger.
func (hc HandCategory) Strength() int32 {
	return categoryStrength[hc]
}

func (hc HandCategory) String() string {
	if name, ok := categoryNames[hc]; ok {
		return name
	}
	return "Unknown"
}

// ParseCategory maps a display name back to its category. Used by the hand
// script reader.
func ParseCategory(name string) (HandCategory, error) {
	for hc, n := range categoryNames {
		if n == name {
			return hc, nil
		}
	}
	return 0, errors.Errorf("unknown hand category [%s]", name)
}
