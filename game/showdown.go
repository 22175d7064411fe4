package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/cardroomhq/holdem/poker"
)

// PlayerResult is one player's evaluated hand at showdown.
type PlayerResult struct {
	PlayerID uuid.UUID               `json:"playerId"`
	Seat     uint32                  `json:"seat"`
	Name     string                  `json:"name"`
	Result   *poker.EvaluationResult `json:"result"`
}

// HandResult ranks every player of a hand. Winners holds every player tied
// at the top — more than one entry means a split pot.
type HandResult struct {
	HandNum       int64          `json:"handNum"`
	PlayersResult []PlayerResult `json:"playersResult"`
	Winners       []uuid.UUID    `json:"winners"`
}

// Showdown evaluates every player's hole cards against the community cards
// and determines the winners. Ranking uses the result comparator only; no
// hand is re-evaluated to compare two players.
func Showdown(hand *Hand) (*HandResult, error) {
	handResult := &HandResult{
		HandNum:       hand.HandNum,
		PlayersResult: make([]PlayerResult, 0, len(hand.Players)),
		Winners:       make([]uuid.UUID, 0),
	}

	for _, player := range hand.Players {
		result, err := poker.Evaluate6Cards(hand.HoleCards[player.ID], hand.Community)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating hand for player %s", player.Name)
		}
		handResult.PlayersResult = append(handResult.PlayersResult, PlayerResult{
			PlayerID: player.ID,
			Seat:     player.Seat,
			Name:     player.Name,
			Result:   result,
		})
	}

	sort.SliceStable(handResult.PlayersResult, func(i, j int) bool {
		return poker.CompareResults(
			handResult.PlayersResult[i].Result,
			handResult.PlayersResult[j].Result) > 0
	})

	best := handResult.PlayersResult[0].Result
	for _, pr := range handResult.PlayersResult {
		if pr.Result.Ties(best) {
			handResult.Winners = append(handResult.Winners, pr.PlayerID)
		}
	}

	return handResult, nil
}

// IsWinner reports whether the given player is among the winners.
func (hr *HandResult) IsWinner(playerID uuid.UUID) bool {
	for _, winner := range hr.Winners {
		if winner == playerID {
			return true
		}
	}
	return false
}

// ToJSON renders the result via jsoniter for callers that export hand
// histories.
func (hr *HandResult) ToJSON() ([]byte, error) {
	data, err := jsoniter.Marshal(hr)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling hand result")
	}
	return data, nil
}

// PrettyPrint renders the ranked results for console output.
func (hr *HandResult) PrettyPrint() string {
	var b strings.Builder
	b.Grow(64)
	for _, result := range hr.PlayersResult {
		winnerStr := ""
		if hr.IsWinner(result.PlayerID) {
			winnerStr = "*** WINNER ***"
		}
		fmt.Fprintf(&b, "Player: %s %s Best hand: %s Rank: %s\n",
			result.Name, winnerStr, poker.PrintCards(result.Result.BestFive[:]),
			result.Result.DisplayName())
	}
	return b.String()
}
