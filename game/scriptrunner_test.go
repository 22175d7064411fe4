package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroomhq/holdem/handscript"
)

func TestRunHandScripts(t *testing.T) {
	err := RunHandScripts("../test/hand-scripts")
	assert.NoError(t, err)
}

func TestRunHandScriptsMissingDir(t *testing.T) {
	err := RunHandScripts("../test/no-such-dir")
	assert.Error(t, err)
}

func TestRunHandScriptMismatch(t *testing.T) {
	script := &handscript.Script{
		Hand: "wrong-expectation",
		Seats: []handscript.Seat{
			{
				Seat:   1,
				Player: "alice",
				Cards:  []string{"Ah", "2c"},
				Expected: &handscript.Expected{
					Category: "Flush",
				},
			},
			{Seat: 2, Player: "bob", Cards: []string{"Kd", "Kc"}},
		},
		Community: []string{"3d", "4s", "5h", "9c"},
	}
	require.NoError(t, script.Validate())

	err := RunHandScript(script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected Flush")
}
