package handscript

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cardroomhq/holdem/poker"
)

// Script contains hand script YAML content: a fixed deal plus the expected
// showdown outcome for each seat.
type Script struct {
	Hand      string   `yaml:"hand"`
	Seats     []Seat   `yaml:"seats"`
	Community []string `yaml:"community-cards"`
	Winners   []string `yaml:"winners"`
}

// Seat is one player's entry in the script.
type Seat struct {
	Seat     uint32    `yaml:"seat"`
	Player   string    `yaml:"player"`
	Cards    []string  `yaml:"cards"`
	Expected *Expected `yaml:"expected"`
}

// Expected is the asserted evaluation outcome for a seat.
type Expected struct {
	Category string  `yaml:"category"`
	Kickers  []int32 `yaml:"kickers"`
}

// ReadHandScript reads a hand script yaml file.
func ReadHandScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading hand script file [%s]", fileName)
	}

	var script Script
	err = yaml.Unmarshal(bytes, &script)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}

	err = script.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Error validating script [%s]", fileName)
	}

	return &script, nil
}

// ReadHandScriptDir reads every .yaml script in a directory, sorted by file
// name.
func ReadHandScriptDir(dir string) ([]*Script, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, errors.Wrapf(err, "Error listing script directory [%s]", dir)
	}
	sort.Strings(matches)

	scripts := make([]*Script, 0, len(matches))
	for _, fileName := range matches {
		script, err := ReadHandScript(fileName)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

// Validate checks the script is a playable deal: seats and player names
// unique, every card parseable, no card appearing twice, exactly 2 hole
// cards per seat and 4 community cards, and any expected category a known
// name.
func (s *Script) Validate() error {
	seats := mapset.NewSet()
	playerNames := mapset.NewSet()
	dealtCards := mapset.NewSet()

	if len(s.Seats) < 2 {
		return fmt.Errorf("Need at least 2 seats, got [%d]", len(s.Seats))
	}
	if len(s.Community) != 4 {
		return fmt.Errorf("Need exactly 4 community cards, got [%d]", len(s.Community))
	}

	for _, seat := range s.Seats {
		if !seats.Add(seat.Seat) {
			return fmt.Errorf("Duplicate seat number [%d] in seats", seat.Seat)
		}
		if !playerNames.Add(seat.Player) {
			return fmt.Errorf("Duplicate player name [%s] in seats", seat.Player)
		}
		if len(seat.Cards) != 2 {
			return fmt.Errorf("Seat [%d] needs exactly 2 hole cards, got [%d]", seat.Seat, len(seat.Cards))
		}
		for _, cardStr := range seat.Cards {
			card, err := poker.ParseCard(cardStr)
			if err != nil {
				return errors.Wrapf(err, "Seat [%d]", seat.Seat)
			}
			if !dealtCards.Add(card) {
				return fmt.Errorf("Card [%s] dealt twice", cardStr)
			}
		}
		if seat.Expected != nil {
			if _, err := poker.ParseCategory(seat.Expected.Category); err != nil {
				return errors.Wrapf(err, "Seat [%d]", seat.Seat)
			}
			if len(seat.Expected.Kickers) != 0 && len(seat.Expected.Kickers) != 5 {
				return fmt.Errorf("Seat [%d] expected kickers must have 5 entries", seat.Seat)
			}
		}
	}

	for _, cardStr := range s.Community {
		card, err := poker.ParseCard(cardStr)
		if err != nil {
			return errors.Wrap(err, "Community cards")
		}
		if !dealtCards.Add(card) {
			return fmt.Errorf("Card [%s] dealt twice", cardStr)
		}
	}

	for _, winner := range s.Winners {
		if !playerNames.Contains(winner) {
			return fmt.Errorf("Winner [%s] is not a seated player", winner)
		}
	}

	return nil
}

// HoleCards returns the parsed hole cards for a seat.
func (seat *Seat) HoleCards() []poker.Card {
	cards := make([]poker.Card, len(seat.Cards))
	for i, cardStr := range seat.Cards {
		cards[i] = poker.NewCard(cardStr)
	}
	return cards
}

// CommunityCards returns the parsed community cards.
func (s *Script) CommunityCards() []poker.Card {
	cards := make([]poker.Card, len(s.Community))
	for i, cardStr := range s.Community {
		cards[i] = poker.NewCard(cardStr)
	}
	return cards
}
