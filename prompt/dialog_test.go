package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harveysanders/lcdprompt/keypad"
)

func TestYesNo(t *testing.T) {
	tests := []struct {
		name       string
		keys       []keypad.Key
		wantChoice int
		wantSig    Signal
		wantRow    string
	}{
		{"yes", []keypad.Key{keypad.Enter}, 0, Accept, ">YES< NO "},
		{"no", []keypad.Key{keypad.Down, keypad.Enter}, 1, Accept, " YES >NO<"},
		{"down wraps", []keypad.Key{keypad.Down, keypad.Down, keypad.Enter}, 0, Accept, ">YES< NO "},
		{"shortcut", []keypad.Key{keypad.NoKey, keypad.Key('2')}, 1, Accept, " YES >NO<"},
		{"cancel", []keypad.Key{keypad.Down, keypad.Escape}, -1, Cancel, " YES >NO<"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, grid, _ := newTestUI(t, 16, 2, tt.keys...)

			choice, sig := ui.YesNo("Save changes?")
			assert.Equal(t, tt.wantChoice, choice)
			assert.Equal(t, tt.wantSig, sig)
			assert.Equal(t, "Save changes?   ", grid.Line(0))
			assert.Equal(t, "       "+tt.wantRow, grid.Line(1))
		})
	}
}

func TestYesNoWrapsMessage(t *testing.T) {
	ui, grid, _ := newTestUI(t, 12, 4, keypad.Enter)

	ui.YesNo("Overwrite the\nfile?")
	assert.Equal(t, []string{
		"Overwrite th",
		"e           ",
		"file?       ",
		"   >YES< NO ",
	}, grid.Lines())
}

func TestOK(t *testing.T) {
	ui, grid, sc := newTestUI(t, 16, 2, keypad.NoKey, keypad.NoKey, keypad.Key('x'))

	assert.Equal(t, keypad.Key('x'), ui.OK("Done"))
	assert.Equal(t, 3, sc.polls)
	assert.Equal(t, "Done            ", grid.Line(0))
	assert.Equal(t, "            >OK<", grid.Line(1))
	assert.Equal(t, 3*DialogPoll, sc.clock.t.Sub(ui.epoch))
}
