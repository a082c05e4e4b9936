package prompt

import (
	"log/slog"
	"strconv"

	"github.com/harveysanders/lcdprompt/keypad"
)

// Counter selects the position readout drawn next to a list.
type Counter uint8

const (
	NoCounter    Counter = iota
	IndexStrip           // One digit per item, the highlighted one replaced by the indicator: "12~45".
	CurrentTotal         // Indicator followed by position and count: "~3/12".
)

// ListOptions are the rendering choices for a list. The zero value is a plain
// list with no decoration.
type ListOptions struct {
	Bullets     bool    // Indicator before the highlighted item, bullet before the rest.
	Counter     Counter // Drawn at ListState.CounterCol, CounterRow.
	AutoScroll  bool    // Slide an overlong highlighted item through its cell.
	FlashCursor bool    // Park a blinking cursor on the highlighted item.
	Centered    bool    // Keep the highlighted item mid-screen instead of paging.
	ScrollBar   bool    // Bar right of the list showing the position.
}

// ListState is a list laid out as a grid of Rows x Columns cells, filled
// top to bottom then left to right. Each cell is Width characters plus one
// column for the bullet or gap.
type ListState struct {
	Items       []string // Borrowed; must stay valid for the call.
	Highlighted int      // Index into Items.

	Rows    int
	Columns int
	Col     int // Top left corner of the first cell.
	Row     int
	Width   int // Characters shown per item.

	Options    ListOptions
	CounterCol int
	CounterRow int
}

// Last returns the index of the last item.
func (s *ListState) Last() int { return len(s.Items) - 1 }

// PerScreen returns how many cells the grid has.
func (s *ListState) PerScreen() int { return s.Rows * s.Columns }

// Window returns the first and last item shown for a list of total items
// with perScreen cells. Paged lists show the screen-aligned page holding
// highlighted; centered lists put highlighted mid-screen, keeping the window
// inside the list.
func Window(total, highlighted, perScreen int, centered bool) (first, last int) {
	if centered {
		first = highlighted - perScreen/2
		if first > total-perScreen {
			first = total - perScreen
		}
		if first < 0 {
			first = 0
		}
	} else {
		first = highlighted / perScreen * perScreen
	}
	last = first + perScreen - 1
	if last > total-1 {
		last = total - 1
	}
	return first, last
}

// cell returns the screen position of the k-th cell on screen.
func (s *ListState) cell(k int) (col, row int) {
	return s.Col + (k/s.Rows)*(s.Width+1), s.Row + k%s.Rows
}

// RenderList draws one frame of s. It returns true while the highlighted
// item is auto-scrolling; the caller should keep calling RenderList on its
// poll tick until it returns false.
func (u *UI) RenderList(s *ListState) bool {
	pending := false
	per := s.PerScreen()
	first, last := Window(len(s.Items), s.Highlighted, per, s.Options.Centered)
	line := u.scratch(s.Width)

	for i := first; i < first+per; i++ {
		switch {
		case i > last:
			PadText(line, "")
		case s.Options.AutoScroll && i == s.Highlighted && len(s.Items[i]) > s.Width:
			item := s.Items[i]
			pos := u.tick()%(len(item)+s.Width) - s.Width
			ScrollText(line, Static(item), pos)
			pending = true
		default:
			PadText(line, s.Items[i])
		}

		u.d.SetCursor(s.cell(i - first))
		if s.Options.Bullets {
			switch {
			case i > last:
				u.d.WriteChar(' ')
			case i == s.Highlighted:
				u.d.WriteChar(u.indicator)
			default:
				u.d.WriteChar(u.bullet)
			}
		}
		u.writeBytes(line)
	}

	switch s.Options.Counter {
	case IndexStrip:
		u.d.SetCursor(s.CounterCol, s.CounterRow)
		for i := range s.Items {
			if i == s.Highlighted {
				u.d.WriteChar(u.indicator)
			} else {
				u.d.WriteChar(byte('0' + (i+1)%10))
			}
		}
	case CurrentTotal:
		b := append(u.line[:0], u.indicator)
		b = strconv.AppendInt(b, int64(s.Highlighted+1), 10)
		b = append(b, '/')
		b = strconv.AppendInt(b, int64(len(s.Items)), 10)
		// Pad to the width of "~T/T" so a shorter index blanks the old digits.
		digits := 1
		for n := len(s.Items); n >= 10; n /= 10 {
			digits++
		}
		for len(b) < 2+2*digits {
			b = append(b, ' ')
		}
		u.line = b
		u.d.SetCursor(s.CounterCol, s.CounterRow)
		u.writeBytes(b)
	}

	if s.Options.ScrollBar {
		col := s.Col + s.Columns*(s.Width+1) - 1
		if s.Options.Bullets {
			col++
		}
		u.ScrollBar((s.Highlighted+1)*100/len(s.Items), col, s.Row, s.Rows)
	}

	if s.Options.FlashCursor {
		u.d.SetCursor(s.cell(s.Highlighted - first))
		u.d.Blink(true)
	} else {
		u.d.Blink(false)
	}
	return pending
}

// SelectList shows s and lets the user move the highlight until Enter or
// Escape. Up and Down step with wrap-around; Left and Right jump a column;
// digits 1-9 pick that item and return Shortcut with the digit; any other key
// flips to the next page, then to the last item, then back to the first.
func (u *UI) SelectList(s *ListState) (Signal, int) {
	pending := u.RenderList(s)
	for {
		k := u.wait(u.poll)
		last := s.Last()
		switch k {
		case keypad.NoKey:
			if pending {
				pending = u.RenderList(s)
			}
			continue
		case keypad.Up:
			if s.Highlighted > 0 {
				s.Highlighted--
			} else {
				s.Highlighted = last
			}
		case keypad.Down:
			if s.Highlighted < last {
				s.Highlighted++
			} else {
				s.Highlighted = 0
			}
		case keypad.Left:
			if s.Highlighted-s.Rows >= 0 {
				s.Highlighted -= s.Rows
			}
		case keypad.Right:
			if s.Highlighted+s.Rows <= last {
				s.Highlighted += s.Rows
			}
		case keypad.Enter:
			u.d.Blink(false)
			u.log.Debug("list:accept", slog.Int("item", s.Highlighted))
			return Accept, 0
		case keypad.Escape:
			u.d.Blink(false)
			u.log.Debug("list:cancel")
			return Cancel, 0
		default:
			if k >= '1' && k <= '9' && int(k-'1') <= last {
				s.Highlighted = int(k - '1')
				u.RenderList(s)
				u.d.Blink(false)
				u.log.Debug("list:shortcut", slog.Int("item", s.Highlighted))
				return Shortcut, int(k - '0')
			}
			per := s.PerScreen()
			switch {
			case s.Highlighted+per <= last:
				s.Highlighted += per
			case s.Highlighted == last:
				s.Highlighted = 0
			default:
				s.Highlighted = last
			}
		}
		pending = u.RenderList(s)
	}
}
