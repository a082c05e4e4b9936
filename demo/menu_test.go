package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveysanders/lcdprompt/keypad"
	"github.com/harveysanders/lcdprompt/lcd"
	"github.com/harveysanders/lcdprompt/prompt"
)

type keyScript struct {
	t    *testing.T
	keys []keypad.Key
}

func (s *keyScript) Poll(time.Duration) keypad.Key {
	if len(s.keys) == 0 {
		s.t.Fatal("key script exhausted")
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

func newMenu(t *testing.T, s *Settings, keys ...keypad.Key) (*Menu, *lcd.Grid, *keyScript) {
	t.Helper()
	grid := lcd.NewGrid(20, 4)
	sc := &keyScript{t: t, keys: keys}
	ui, err := prompt.New(prompt.Config{Display: grid, Keys: sc, Width: 20, Height: 4})
	require.NoError(t, err)
	return New(ui, s), grid, sc
}

func run(t *testing.T, s *Settings, keys ...keypad.Key) *lcd.Grid {
	t.Helper()
	m, grid, sc := newMenu(t, s, keys...)
	m.Run()
	assert.Empty(t, sc.keys, "unread keys")
	return grid
}

func TestMenuExit(t *testing.T) {
	grid := run(t, Defaults(), keypad.Escape)
	assert.Equal(t, "~About this demo  ", grid.Line(0)[:18])
	assert.Equal(t, "\xa5Setup wizard     ", grid.Line(1)[:18])
}

func TestMenuBrightness(t *testing.T) {
	s := Defaults()
	run(t, s, keypad.Key('4'), keypad.Up, keypad.Up, keypad.Enter, keypad.Escape)
	assert.Equal(t, 60, s.Brightness)
}

func TestMenuSound(t *testing.T) {
	s := Defaults()
	run(t, s, keypad.Key('6'), keypad.Enter, keypad.Escape)
	assert.True(t, s.Sound)

	run(t, s, keypad.Key('6'), keypad.Down, keypad.Enter, keypad.Escape)
	assert.False(t, s.Sound)

	s.Sound = true
	run(t, s, keypad.Key('6'), keypad.Down, keypad.Escape, keypad.Escape)
	assert.True(t, s.Sound, "cancel keeps the setting")
}

func TestMenuName(t *testing.T) {
	s := Defaults()
	run(t, s, keypad.Key('3'), keypad.Key('P'), keypad.Key('i'), keypad.Enter, keypad.Escape)
	assert.Equal(t, "Pico    ", string(s.Name))
}

func TestMenuOffset(t *testing.T) {
	s := Defaults()
	// "001.25": cycle the sign cell down to '-' and accept.
	run(t, s, keypad.Key('5'), keypad.Down, keypad.Enter, keypad.Escape)
	assert.Equal(t, -1.25, s.Offset)
}

func TestMenuSetupWalksFields(t *testing.T) {
	s := Defaults()
	keys := []keypad.Key{keypad.Key('2')}
	// The last Right leaves the name field.
	for i := 0; i < len(s.Name); i++ {
		keys = append(keys, keypad.Right)
	}
	// Brightness to 55 and on to the offset, back again, then 60 from the
	// stored 55.
	keys = append(keys, keypad.Up, keypad.Right, keypad.Left, keypad.Up, keypad.Enter, keypad.Escape)
	run(t, s, keys...)
	assert.Equal(t, 60, s.Brightness)
	assert.Equal(t, "pico    ", string(s.Name))
}

func TestMenuColor(t *testing.T) {
	s := Defaults()
	run(t, s, keypad.Key('7'), keypad.Down, keypad.Right, keypad.Enter, keypad.Escape)
	assert.Equal(t, 4, s.Color)

	run(t, s, keypad.Key('7'), keypad.Key('1'), keypad.Escape)
	assert.Equal(t, 0, s.Color, "digit shortcut picks the color")
}

func TestMenuAboutAndSummary(t *testing.T) {
	s := Defaults()
	run(t, s, keypad.Key('1'), keypad.Down, keypad.Right, keypad.Enter,
		keypad.Key('8'), keypad.NoKey, keypad.Key('x'),
		keypad.Escape)

	assert.Equal(t, "Name: pico    \nBright: 50\nOffset: 1.25\nSound: off\nColor: Red", (&Menu{s: s}).Summary())
}

func TestMenuOnChange(t *testing.T) {
	s := Defaults()
	m, _, _ := newMenu(t, s, keypad.Key('4'), keypad.Up, keypad.Enter, keypad.Key('4'), keypad.Escape, keypad.Escape)
	var seen []int
	m.OnChange = func(s *Settings) { seen = append(seen, s.Brightness) }
	m.Run()
	assert.Equal(t, []int{55, 55}, seen)
}
