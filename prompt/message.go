package prompt

import "github.com/harveysanders/lcdprompt/keypad"

// TextState is a window onto a long message.
type TextState struct {
	Text   Text // Borrowed; must stay valid for the call.
	Offset int  // Start of the first visible line.

	Rows    int // Window height.
	Columns int // Window width; lines wrap here.
	Col     int // Top left corner of the window.
	Row     int

	ScrollBar bool // Draw a scroll bar just right of the window.
}

// NextLine moves the window down one visual line.
func (s *TextState) NextLine() { s.Offset = NextLine(s.Text, s.Offset, s.Columns) }

// PrevLine moves the window up one visual line.
func (s *TextState) PrevLine() { s.Offset = PrevLine(s.Text, s.Offset, s.Columns) }

// LongMessage draws the window. Lines wrap at Columns and break early on
// '\n'; a line break falling exactly on the wrap column produces an empty
// line, the same as NextLine counts it.
func (u *UI) LongMessage(s *TextState) {
	n := s.Text.Len()
	at := func(i int) byte {
		if i >= n {
			return 0
		}
		return s.Text.At(i)
	}

	inc := 0
	for r := 0; r < s.Rows; r++ {
		ch := at(s.Offset + inc)
		if ch == '\n' || ch == 0 {
			ch = 0
			inc++
		}
		u.d.SetCursor(s.Col, s.Row+r)
		for j := 0; j < s.Columns; j++ {
			if ch == 0 {
				u.d.WriteChar(' ')
				continue
			}
			u.d.WriteChar(ch)
			inc++
			ch = at(s.Offset + inc)
			if ch == '\n' && j < s.Columns-1 {
				ch = 0
				inc++
			}
		}
	}

	if s.ScrollBar && n > 0 {
		u.ScrollBar(s.Offset*100/n, s.Col+s.Columns, s.Row, s.Rows)
	}
}

// TextArea shows s and scrolls it until the user leaves. Up and Down move one
// line, Left and Right one page (Rows-1 lines, so the last line stays in
// view). Digits 1-9 return Shortcut with the digit, for menus printed as
// numbered text.
func (u *UI) TextArea(s *TextState) (Signal, int) {
	page := s.Rows - 1
	if page < 1 {
		page = 1
	}
	u.LongMessage(s)
	for {
		k := u.wait(u.poll)
		switch k {
		case keypad.NoKey:
			continue
		case keypad.Up:
			s.PrevLine()
		case keypad.Down:
			s.NextLine()
		case keypad.Left:
			for i := 0; i < page; i++ {
				s.PrevLine()
			}
		case keypad.Right:
			for i := 0; i < page; i++ {
				s.NextLine()
			}
		case keypad.Enter:
			return Accept, 0
		case keypad.Escape:
			return Cancel, 0
		default:
			if k >= '1' && k <= '9' {
				return Shortcut, int(k - '0')
			}
			continue
		}
		u.LongMessage(s)
	}
}
