package handscript

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cardroomhq/holdem/poker"
)

func TestReadHandScript(t *testing.T) {
	script, err := ReadHandScript("test_scripts/script1.yaml")
	if err != nil {
		t.Fatalf("ReadHandScript returned error [%s]", err)
	}
	if script == nil {
		t.Fatal("ReadHandScript returned nil data")
	}

	expectedScript := Script{
		Hand: "two-pair-vs-trips",
		Seats: []Seat{
			{
				Seat:   1,
				Player: "yong",
				Cards:  []string{"Kh", "Qd"},
				Expected: &Expected{
					Category: "Two Pair",
					Kickers:  []int32{14, 14, 13, 13, 12},
				},
			},
			{
				Seat:   5,
				Player: "brian",
				Cards:  []string{"As", "7s"},
				Expected: &Expected{
					Category: "Three of a Kind",
					Kickers:  []int32{14, 14, 14, 13, 12},
				},
			},
		},
		Community: []string{"Ac", "Ad", "Kd", "Qc"},
		Winners:   []string{"brian"},
	}

	if !cmp.Equal(expectedScript, *script) {
		t.Errorf("ReadHandScript result does not match the expected value. Diff: %s",
			cmp.Diff(expectedScript, *script))
	}
}

func TestScriptCards(t *testing.T) {
	script, err := ReadHandScript("test_scripts/script1.yaml")
	if err != nil {
		t.Fatalf("ReadHandScript returned error [%s]", err)
	}

	holeCards := script.Seats[0].HoleCards()
	if len(holeCards) != 2 || holeCards[0] != poker.NewCard("Kh") || holeCards[1] != poker.NewCard("Qd") {
		t.Errorf("unexpected hole cards %v", holeCards)
	}

	communityCards := script.CommunityCards()
	if len(communityCards) != 4 || communityCards[0] != poker.NewCard("Ac") {
		t.Errorf("unexpected community cards %v", communityCards)
	}
}

func TestValidateRejectsBadScripts(t *testing.T) {
	base := func() *Script {
		return &Script{
			Hand: "bad",
			Seats: []Seat{
				{Seat: 1, Player: "alice", Cards: []string{"Ah", "2c"}},
				{Seat: 2, Player: "bob", Cards: []string{"Kd", "Kc"}},
			},
			Community: []string{"3d", "4s", "5h", "9c"},
		}
	}

	script := base()
	if err := script.Validate(); err != nil {
		t.Fatalf("valid script rejected [%s]", err)
	}

	script = base()
	script.Seats[1].Cards = []string{"Ah", "Kc"}
	if err := script.Validate(); err == nil {
		t.Error("duplicate card not rejected")
	}

	script = base()
	script.Seats[1].Cards = []string{"Kd"}
	if err := script.Validate(); err == nil {
		t.Error("wrong hole card count not rejected")
	}

	script = base()
	script.Community = []string{"3d", "4s", "5h"}
	if err := script.Validate(); err == nil {
		t.Error("wrong community card count not rejected")
	}

	script = base()
	script.Seats[1].Seat = 1
	if err := script.Validate(); err == nil {
		t.Error("duplicate seat not rejected")
	}

	script = base()
	script.Seats[1].Cards = []string{"Xx", "Kc"}
	if err := script.Validate(); err == nil {
		t.Error("unparseable card not rejected")
	}

	script = base()
	script.Winners = []string{"carol"}
	if err := script.Validate(); err == nil {
		t.Error("unknown winner not rejected")
	}

	script = base()
	script.Seats[0].Expected = &Expected{Category: "Royal Flush"}
	if err := script.Validate(); err == nil {
		t.Error("unknown category not rejected")
	}
}
