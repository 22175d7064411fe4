package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Deck is a standard 52-card deck. A Deck owns its own card order and its
// own random source; there is no shared deck state anywhere in this
// package. Components that need a deck hold an explicit *Deck.
type Deck struct {
	cards   []Card
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewDeck returns a shuffled deck. A nil source seeds from crypto/rand;
// tests pass a fixed source for reproducible orders.
func NewDeck(source rand.Source) *Deck {
	if source == nil {
		source = newSeed()
	}
	deck := &Deck{randGen: rand.New(source)}
	deck.Reset(true)
	return deck
}

// NewDeckNoShuffle returns a full deck in the canonical suit-then-rank
// order.
func NewDeckNoShuffle() *Deck {
	deck := &Deck{randGen: rand.New(newSeed())}
	deck.Reset(false)
	return deck
}

// Shuffle runs a Fisher-Yates pass over whatever cards remain in the deck.
func (deck *Deck) Shuffle() *Deck {
	for i := len(deck.cards) - 1; i > 0; i-- {
		j := deck.randGen.Intn(i + 1)
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	}
	return deck
}

// Reset restores the full 52 cards, optionally shuffling them.
func (deck *Deck) Reset(shuffle bool) {
	deck.cards = AllCards()
	if shuffle {
		deck.Shuffle()
	}
}

// DealCard deals the top card. The second return is false when the deck is
// exhausted.
func (deck *Deck) DealCard() (Card, bool) {
	if len(deck.cards) == 0 {
		return Card{}, false
	}
	card := deck.cards[0]
	deck.cards = deck.cards[1:]
	return card, true
}

// DealCards deals up to n cards; the result is shorter than n if the deck
// runs out.
func (deck *Deck) DealCards(n int) []Card {
	if n > len(deck.cards) {
		n = len(deck.cards)
	}
	cards := make([]Card, n)
	copy(cards, deck.cards[:n])
	deck.cards = deck.cards[n:]
	return cards
}

func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}

func (deck *Deck) CardsRemaining() int {
	return len(deck.cards)
}

func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.cards)
}

// CardsInAscii is a list of card strings ("Kh", "2c", ...) used by scripted
// decks.
type CardsInAscii []string

// DeckFromScript builds a stacked deck that deals the given hole cards to
// each player in order, then a burn card, two flop cards, a burn, the turn,
// a burn, and the river. Used by tests and the script runner to replay
// known hands through the normal dealing path.
func DeckFromScript(playerCards []CardsInAscii, flop CardsInAscii, turn Card, river Card) *Deck {
	deck := NewDeck(nil)
	noOfPlayers := len(playerCards)
	for i, hole := range playerCards {
		for j, cardStr := range hole {
			deckIndex := i + j*noOfPlayers
			deck.placeCard(NewCard(cardStr), deckIndex)
		}
	}

	deckIndex := noOfPlayers * len(playerCards[0])

	// burn card
	deckIndex++
	for _, cardStr := range flop {
		deck.placeCard(NewCard(cardStr), deckIndex)
		deckIndex++
	}

	// burn card
	deckIndex++
	deck.placeCard(turn, deckIndex)
	deckIndex++

	// burn card
	deckIndex++
	deck.placeCard(river, deckIndex)

	return deck
}

func (deck *Deck) placeCard(card Card, deckIndex int) {
	cardLoc := deck.getCardLoc(card)
	deck.cards[cardLoc] = deck.cards[deckIndex]
	deck.cards[deckIndex] = card
}

func (deck *Deck) getCardLoc(cardToLocate Card) int {
	for i, card := range deck.cards {
		if card == cardToLocate {
			return i
		}
	}
	return -1
}
