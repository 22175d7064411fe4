package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cardroomhq/holdem/game"
	"github.com/cardroomhq/holdem/logging"
)

var mainLogger = logging.GetZeroLogger("main", nil)

func main() {
	var runHandScripts = flag.String("hand-scripts", "", "replay hand script files from this directory")
	var numHands = flag.Int("hands", 1, "number of random hands to deal")
	var asJSON = flag.Bool("json", false, "print hand results as JSON")
	var debug = flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *runHandScripts != "" {
		if err := game.RunHandScripts(*runHandScripts); err != nil {
			mainLogger.Error().Err(err).Msg("hand scripts failed")
			os.Exit(1)
		}
		return
	}

	dealHands(*numHands, *asJSON)
}

func dealHands(numHands int, asJSON bool) {
	players := []game.Player{
		game.NewPlayer(1, "Bob"),
		game.NewPlayer(2, "Dev"),
		game.NewPlayer(3, "Kamal"),
		game.NewPlayer(4, "Anna"),
	}
	table := game.NewTable(players)

	for i := 0; i < numHands; i++ {
		hand := table.Deal()
		result, err := game.Showdown(hand)
		if err != nil {
			mainLogger.Error().Err(err).Msg("showdown failed")
			os.Exit(1)
		}

		if asJSON {
			data, err := result.ToJSON()
			if err != nil {
				mainLogger.Error().Err(err).Msg("marshaling result failed")
				os.Exit(1)
			}
			fmt.Printf("%s\n", data)
			continue
		}
		fmt.Printf("%s%s\n", hand.PrettyPrint(), result.PrettyPrint())
	}
}
