package prompt

import "github.com/harveysanders/lcdprompt/keypad"

// FieldState is a fixed-width character field edited in place.
type FieldState struct {
	Buf []byte // Borrowed; the field is len(Buf) characters wide.

	Low   byte // Character range for ClassRange and ClassRangeDigits.
	High  byte
	Class CharClass

	Col int
	Row int
}

// InputPanel edits f one character at a time. Up and Down cycle the character
// under the cursor through f.Class; typed characters the class accepts are
// stored and the cursor advances; Backspace blanks the cell and steps back.
//
// It returns Accept on Enter, Cancel on Escape, Previous on Left from the
// first cell and Next on Right from the last. f.Buf holds whatever was
// edited in every case.
func (u *UI) InputPanel(f *FieldState) Signal {
	return u.editField(f, false)
}

// InputNumber edits f for keypads that only have digits and the function
// keys. Digits are stored as typed; Up writes '-' and Down writes '.', both
// advancing the cursor. f.Class is ignored.
func (u *UI) InputNumber(f *FieldState) Signal {
	return u.editField(f, true)
}

func (u *UI) editField(f *FieldState, numeric bool) Signal {
	width := len(f.Buf)
	p := 0
	u.d.SetCursor(f.Col, f.Row)
	u.writeBytes(f.Buf)
	u.d.SetCursor(f.Col, f.Row)
	u.d.Cursor(true)

	// put stores c under the cursor and optionally moves right, staying on
	// the last cell.
	put := func(c byte, advance bool) {
		f.Buf[p] = c
		u.d.WriteChar(c)
		if advance && p < width-1 {
			p++
		}
		u.d.SetCursor(f.Col+p, f.Row)
	}

	for {
		k := u.wait(u.poll)
		switch k {
		case keypad.NoKey:
		case keypad.Up:
			if numeric {
				put('-', true)
			} else {
				put(f.Class.Inc(f.Buf[p], f.Low, f.High), false)
			}
		case keypad.Down:
			if numeric {
				put('.', true)
			} else {
				put(f.Class.Dec(f.Buf[p], f.Low, f.High), false)
			}
		case keypad.Left:
			if p == 0 {
				u.d.Cursor(false)
				return Previous
			}
			p--
			u.d.SetCursor(f.Col+p, f.Row)
		case keypad.Right:
			if p == width-1 {
				u.d.Cursor(false)
				return Next
			}
			p++
			u.d.SetCursor(f.Col+p, f.Row)
		case keypad.Backspace:
			f.Buf[p] = ' '
			u.d.WriteChar(' ')
			if p > 0 {
				p--
			}
			u.d.SetCursor(f.Col+p, f.Row)
		case keypad.Enter, keypad.Newline:
			u.d.Cursor(false)
			return Accept
		case keypad.Escape:
			u.d.Cursor(false)
			return Cancel
		default:
			c := byte(k)
			if numeric && k.IsDigit() || !numeric && k.IsPrintable() && f.Class.Accepts(c, f.Low, f.High) {
				put(c, true)
			}
		}
	}
}
