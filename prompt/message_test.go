package prompt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveysanders/lcdprompt/keypad"
	"github.com/harveysanders/lcdprompt/lcd"
)

func TestNextPrevLine(t *testing.T) {
	text := Static("AB\nCDEF\nG")

	var forward []int
	for off := 0; ; {
		forward = append(forward, off)
		next := NextLine(text, off, 3)
		if next == off {
			break
		}
		off = next
	}
	assert.Equal(t, []int{0, 3, 6, 8}, forward)

	var back []int
	for off := 8; off > 0; {
		off = PrevLine(text, off, 3)
		back = append(back, off)
	}
	assert.Equal(t, []int{6, 3, 0}, back)
}

func TestLineBreakOnWrapColumn(t *testing.T) {
	text := Static("ABC\nD")
	assert.Equal(t, 3, NextLine(text, 0, 3))
	assert.Equal(t, 4, NextLine(text, 3, 3), "the break is an empty line of its own")
	assert.Equal(t, 4, NextLine(text, 4, 3))
	assert.Equal(t, 3, PrevLine(text, 4, 3))
	assert.Equal(t, 0, PrevLine(text, 3, 3))
}

func TestLinesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []byte("abcd\n")
	for n := 0; n < 500; n++ {
		buf := make([]byte, rng.Intn(30))
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		text := Bytes(buf)
		width := 1 + rng.Intn(5)

		steps := 0
		for off := 0; ; {
			next := NextLine(text, off, width)
			if next == off {
				break
			}
			require.Greater(t, next, off)
			require.Equal(t, off, PrevLine(text, next, width), "buf %q width %d from %d", buf, width, off)

			back := next
			for i := 0; back > 0; i++ {
				require.Less(t, i, len(buf)+1, "PrevLine from %d never reached 0 in %q", next, buf)
				back = PrevLine(text, back, width)
			}

			off = next
			steps++
			require.LessOrEqual(t, steps, len(buf)+1)
		}
	}
}

func TestLongMessage(t *testing.T) {
	ui, grid, _ := newTestUI(t, 3, 2)
	s := &TextState{Text: Static("AB\nCDEF\nG"), Rows: 2, Columns: 3}

	ui.LongMessage(s)
	assert.Equal(t, []string{"AB ", "CDE"}, grid.Lines())

	s.NextLine()
	ui.LongMessage(s)
	assert.Equal(t, []string{"CDE", "F  "}, grid.Lines())

	s.NextLine()
	ui.LongMessage(s)
	assert.Equal(t, []string{"F  ", "G  "}, grid.Lines())

	s.PrevLine()
	assert.Equal(t, 3, s.Offset)
}

func TestLongMessageBreakOnWrapColumn(t *testing.T) {
	ui, grid, _ := newTestUI(t, 3, 3)
	ui.LongMessage(&TextState{Text: Static("ABC\nD"), Rows: 3, Columns: 3})
	assert.Equal(t, []string{"ABC", "   ", "D  "}, grid.Lines())
}

func TestLongMessageScrollBar(t *testing.T) {
	ui, grid, _ := newTestUI(t, 4, 2)
	s := &TextState{Text: Static("AB\nCDEF\nG"), Rows: 2, Columns: 3, ScrollBar: true}

	ui.LongMessage(s)
	assert.Equal(t, byte(lcd.GlyphTopMarker), grid.At(3, 0))
	assert.Equal(t, byte(lcd.GlyphBottom), grid.At(3, 1))

	s.Offset = 8
	ui.LongMessage(s)
	assert.Equal(t, byte(lcd.GlyphTop), grid.At(3, 0))
	assert.Equal(t, byte(lcd.GlyphBottomMarker), grid.At(3, 1))
}

func TestTextArea(t *testing.T) {
	ui, grid, _ := newTestUI(t, 3, 2,
		keypad.NoKey, keypad.Down, keypad.Down, keypad.Up, keypad.Key('x'), keypad.Enter)
	s := &TextState{Text: Static("AB\nCDEF\nG"), Rows: 2, Columns: 3}

	sig, n := ui.TextArea(s)
	assert.Equal(t, Accept, sig)
	assert.Zero(t, n)
	assert.Equal(t, 3, s.Offset)
	assert.Equal(t, []string{"CDE", "F  "}, grid.Lines())
}

func TestTextAreaPagesAndShortcut(t *testing.T) {
	ui, _, sc := newTestUI(t, 3, 3, keypad.Right, keypad.Left, keypad.Right, keypad.Key('4'))
	s := &TextState{Text: Static("abcdefghijklmno"), Rows: 3, Columns: 3}

	sig, n := ui.TextArea(s)
	assert.Equal(t, Shortcut, sig)
	assert.Equal(t, 4, n)
	assert.Equal(t, 6, s.Offset, "a page is two lines on a three row window")

	sc.push(keypad.Escape)
	sig, _ = ui.TextArea(s)
	assert.Equal(t, Cancel, sig)
}
