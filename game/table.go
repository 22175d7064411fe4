package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cardroomhq/holdem/logging"
	"github.com/cardroomhq/holdem/poker"
)

var tableLogger = logging.GetZeroLogger("game::table", nil)

// Player is a seat at the table.
type Player struct {
	ID   uuid.UUID `json:"id"`
	Seat uint32    `json:"seat"`
	Name string    `json:"name"`
}

// NewPlayer assigns a fresh ID to a named player.
func NewPlayer(seat uint32, name string) Player {
	return Player{ID: uuid.New(), Seat: seat, Name: name}
}

// Table deals 2+4 hold'em hands. Two decks alternate between hands so the
// next deck can be shuffled while a hand plays out. The table owns its
// decks; nothing here is shared globally.
type Table struct {
	deck1        *poker.Deck
	deck2        *poker.Deck
	lastDeckUsed int32
	players      []Player
	handNum      int64
}

// Hand is one dealt hand: each player's hole cards plus the 4 community
// cards.
type Hand struct {
	HandNum   int64                      `json:"handNum"`
	HoleCards map[uuid.UUID][]poker.Card `json:"holeCards"`
	Community []poker.Card               `json:"community"`
	Players   []Player                   `json:"players"`
}

func NewTable(players []Player) *Table {
	return &Table{
		deck1:        poker.NewDeck(nil),
		deck2:        poker.NewDeck(nil),
		lastDeckUsed: 1,
		players:      players,
	}
}

// Players returns the seated players in seat order.
func (t *Table) Players() []Player {
	return t.players
}

func (t *Table) nextDeck() *poker.Deck {
	if t.lastDeckUsed == 1 {
		t.lastDeckUsed = 2
		return t.deck2
	}
	t.lastDeckUsed = 1
	return t.deck1
}

// Deal shuffles the next deck and deals a new hand: two hole cards per
// player dealt one at a time around the table, then a burn and the 2-card
// flop, a burn and the turn, a burn and the river.
func (t *Table) Deal() *Hand {
	deck := t.nextDeck()
	deck.Reset(true)
	t.handNum++
	return t.dealFrom(deck)
}

// DealScripted deals a hand from an already stacked deck. Used to replay
// hand scripts through the same dealing path as live hands.
func (t *Table) DealScripted(deck *poker.Deck) *Hand {
	t.handNum++
	return t.dealFrom(deck)
}

func (t *Table) dealFrom(deck *poker.Deck) *Hand {
	hand := &Hand{
		HandNum:   t.handNum,
		HoleCards: make(map[uuid.UUID][]poker.Card, len(t.players)),
		Players:   t.players,
	}

	for cardNum := 0; cardNum < 2; cardNum++ {
		for _, player := range t.players {
			card, _ := deck.DealCard()
			hand.HoleCards[player.ID] = append(hand.HoleCards[player.ID], card)
		}
	}

	// burn, 2-card flop
	deck.DealCards(1)
	community := deck.DealCards(2)
	// burn, turn
	deck.DealCards(1)
	community = append(community, deck.DealCards(1)...)
	// burn, river
	deck.DealCards(1)
	community = append(community, deck.DealCards(1)...)
	hand.Community = community

	tableLogger.Debug().
		Int64(logging.HandNumKey, hand.HandNum).
		Msgf("dealt community %s", poker.PrintCards(community))
	return hand
}

// PrettyPrint renders the hand for console output.
func (h *Hand) PrettyPrint() string {
	var b strings.Builder
	b.Grow(64)
	fmt.Fprintf(&b, "Hand num: %d\n", h.HandNum)
	for _, player := range h.Players {
		fmt.Fprintf(&b, "Player: %s  %s\n",
			player.Name, poker.PrintCards(h.HoleCards[player.ID]))
	}
	fmt.Fprintf(&b, "Community: %s\n", poker.PrintCards(h.Community))
	return b.String()
}
