package prompt

import (
	"log/slog"
	"time"

	"github.com/harveysanders/lcdprompt/keypad"
)

// DialogPoll is how often OK checks for a key.
const DialogPoll = 500 * time.Millisecond

var yesNoItems = []string{">YES< NO ", " YES >NO<"}

const yesNoWidth = 9

// message fills the whole screen with msg.
func (u *UI) message(msg string) {
	u.d.Clear()
	u.LongMessage(&TextState{Text: Static(msg), Rows: u.height, Columns: u.width})
}

// YesNo shows msg with a YES/NO choice on the bottom row. Up and Down toggle
// between the two; a digit shortcut counts as Enter. It returns 0 for yes and
// 1 for no with Accept, or -1 with Cancel.
func (u *UI) YesNo(msg string) (int, Signal) {
	u.message(msg)
	col := u.width - yesNoWidth
	if col < 0 {
		col = 0
	}
	s := &ListState{
		Items:   yesNoItems,
		Rows:    1,
		Columns: 1,
		Col:     col,
		Row:     u.height - 1,
		Width:   yesNoWidth,
	}
	sig, _ := u.SelectList(s)
	if sig == Cancel {
		return -1, Cancel
	}
	u.log.Debug("dialog:yesno", slog.Int("choice", s.Highlighted))
	return s.Highlighted, Accept
}

// OK shows msg with ">OK<" in the bottom right corner and returns the first
// key pressed.
func (u *UI) OK(msg string) keypad.Key {
	u.message(msg)
	u.Print(u.width-4, u.height-1, ">OK<")
	for {
		if k := u.wait(DialogPoll); k != keypad.NoKey {
			return k
		}
	}
}
