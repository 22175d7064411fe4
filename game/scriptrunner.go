package game

import (
	"github.com/pkg/errors"

	"github.com/cardroomhq/holdem/handscript"
	"github.com/cardroomhq/holdem/logging"
	"github.com/cardroomhq/holdem/poker"
)

var scriptLogger = logging.GetZeroLogger("game::script", nil)

// RunHandScripts replays every hand script in dir and checks the expected
// categories, kickers and winners against the evaluator. Returns an error
// describing the first mismatch.
func RunHandScripts(dir string) error {
	scripts, err := handscript.ReadHandScriptDir(dir)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return errors.Errorf("no hand scripts found in [%s]", dir)
	}

	for _, script := range scripts {
		if err := RunHandScript(script); err != nil {
			return errors.Wrapf(err, "hand script [%s]", script.Hand)
		}
		scriptLogger.Info().Msgf("hand script [%s] passed", script.Hand)
	}
	return nil
}

// RunHandScript replays one scripted hand.
func RunHandScript(script *handscript.Script) error {
	community := script.CommunityCards()

	results := make(map[string]*poker.EvaluationResult, len(script.Seats))
	var best *poker.EvaluationResult
	for i := range script.Seats {
		seat := &script.Seats[i]
		result, err := poker.Evaluate6Cards(seat.HoleCards(), community)
		if err != nil {
			return errors.Wrapf(err, "seat [%d]", seat.Seat)
		}
		results[seat.Player] = result
		if best == nil || result.Beats(best) {
			best = result
		}

		if seat.Expected == nil {
			continue
		}
		expectedCategory, err := poker.ParseCategory(seat.Expected.Category)
		if err != nil {
			return err
		}
		if result.Category != expectedCategory {
			return errors.Errorf("seat [%d] expected %s got %s",
				seat.Seat, expectedCategory, result.Category)
		}
		if len(seat.Expected.Kickers) == 5 {
			var expectedKickers poker.KickerSequence
			copy(expectedKickers[:], seat.Expected.Kickers)
			if result.Kickers.Compare(expectedKickers) != 0 {
				return errors.Errorf("seat [%d] expected kickers %v got %v",
					seat.Seat, expectedKickers, result.Kickers)
			}
		}
	}

	if len(script.Winners) == 0 {
		return nil
	}

	expectedWinners := make(map[string]bool, len(script.Winners))
	for _, winner := range script.Winners {
		expectedWinners[winner] = true
	}
	for player, result := range results {
		isWinner := result.Ties(best)
		if isWinner != expectedWinners[player] {
			return errors.Errorf("player [%s] winner=%v, script says %v",
				player, isWinner, expectedWinners[player])
		}
	}
	return nil
}
