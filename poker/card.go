package poker

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Suit is one of the four card suits. Suits carry no ordering; two hands
// that differ only by suit compare equal.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Rank is a card rank. The numeric value of a Rank is its hold'em value:
// Two is 2 up through Ace at 14. The ace counts low only inside a wheel
// straight, and that is handled by the classifier, not here.
type Rank int8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var (
	strRanks = "23456789TJQKA"

	charSuits = map[uint8]Suit{
		'c': Clubs,
		'd': Diamonds,
		'h': Hearts,
		's': Spades,
	}
	suitChars = map[Suit]string{
		Clubs:    "c",
		Diamonds: "d",
		Hearts:   "h",
		Spades:   "s",
	}
	prettySuits = map[Suit]string{
		Clubs:    "♣",
		Diamonds: "♦",
		Hearts:   "❤",
		Spades:   "♠",
	}
)

// Value returns the rank's integer value, 2 through 14.
func (r Rank) Value() int32 {
	return int32(r)
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(strRanks[r-Two])
}

func (s Suit) String() string {
	if pretty, ok := prettySuits[s]; ok {
		return pretty
	}
	return "?"
}

// Card is an immutable (suit, rank) value. Cards are comparable: two cards
// are the same card exactly when both suit and rank match, so Card works as
// a map key and with ==.
type Card struct {
	Suit Suit
	Rank Rank
}

// ParseCard parses the two-character card notation, rank first: "As", "Td",
// "2c".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, errors.Errorf("invalid card [%s]", s)
	}
	rankIdx := strings.IndexByte(strRanks, s[0])
	if rankIdx < 0 {
		return Card{}, errors.Errorf("invalid card rank [%c]", s[0])
	}
	suit, ok := charSuits[s[1]]
	if !ok {
		return Card{}, errors.Errorf("invalid card suit [%c]", s[1])
	}
	return Card{Suit: suit, Rank: Two + Rank(rankIdx)}, nil
}

// NewCard is ParseCard for hardcoded card strings. It panics on bad input
// and is meant for tests and scripted decks.
func NewCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return card
}

func (c Card) String() string {
	return c.Rank.String() + suitChars[c.Suit]
}

// PrettyString renders the card with the unicode suit symbol, e.g. "A♠".
func (c Card) PrettyString() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) != 4 {
		return errors.Errorf("invalid card json %s", string(b))
	}
	card, err := ParseCard(string(b[1:3]))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// AllCards returns the 52 cards of a full deck in suit-then-rank order.
func AllCards() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// CardsToString pretty-prints a card slice for logs and console output.
func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", c.PrettyString())
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}

// PrintCards is an alias kept for call sites that read better with a verb.
func PrintCards(cards []Card) string {
	return CardsToString(cards)
}
