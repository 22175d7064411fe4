package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The strength table is the basis of the total order over hands; pin the
// exact values so nothing drifts with constant reordering.
func TestCategoryStrengthTable(t *testing.T) {
	assert.Equal(t, int32(0), HighCard.Strength())
	assert.Equal(t, int32(1), OnePair.Strength())
	assert.Equal(t, int32(2), TwoPair.Strength())
	assert.Equal(t, int32(3), ThreeOfAKind.Strength())
	assert.Equal(t, int32(4), Straight.Strength())
	assert.Equal(t, int32(5), Flush.Strength())
	assert.Equal(t, int32(6), FullHouse.Strength())
	assert.Equal(t, int32(7), FourOfAKind.Strength())
	assert.Equal(t, int32(8), StraightFlush.Strength())
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "High Card", HighCard.String())
	assert.Equal(t, "Pair", OnePair.String())
	assert.Equal(t, "Two Pair", TwoPair.String())
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.String())
	assert.Equal(t, "Straight", Straight.String())
	assert.Equal(t, "Flush", Flush.String())
	assert.Equal(t, "Full House", FullHouse.String())
	assert.Equal(t, "Four of a Kind", FourOfAKind.String())
	assert.Equal(t, "Straight Flush", StraightFlush.String())
}

func TestParseCategory(t *testing.T) {
	for _, name := range []string{
		"High Card", "Pair", "Two Pair", "Three of a Kind", "Straight",
		"Flush", "Full House", "Four of a Kind", "Straight Flush",
	} {
		category, err := ParseCategory(name)
		require.NoError(t, err)
		assert.Equal(t, name, category.String())
	}

	_, err := ParseCategory("Royal Flush")
	assert.Error(t, err)
}
