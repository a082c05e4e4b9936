// Package keypad turns polled button hardware into key events for the prompt
// package.
//
// Raw sources report one byte per press (a character such as '2' or 'U'). A
// Poller scans every source for a bounded interval and translates raw bytes
// through an Aliases table into the six function keys:
//
//	p := keypad.NewPoller(keypad.DefaultAliases, buttons, knob)
//	for {
//	    switch k := p.Poll(50 * time.Millisecond); k {
//	    case keypad.NoKey:
//	        // nothing pressed this interval
//	    case keypad.Enter:
//	        // ...
//	    }
//	}
package keypad

// Key is a translated key event. Values 1-6 are function keys, every other
// non-zero value is the raw character reported by a source.
type Key byte

const (
	NoKey Key = 0 // Nothing was pressed within the poll interval.

	Up     Key = 1
	Down   Key = 2
	Left   Key = 3
	Right  Key = 4
	Enter  Key = 5
	Escape Key = 6

	Backspace Key = '\b'
	Newline   Key = '\n'
)

// FunctionKeys is the number of function keys, Up through Escape.
const FunctionKeys = 6

// IsFunction reports whether k is one of Up, Down, Left, Right, Enter or Escape.
func (k Key) IsFunction() bool {
	return k >= Up && k <= Escape
}

// IsDigit reports whether k is the raw character '0' through '9'.
func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// IsPrintable reports whether k is a raw character the display can show.
func (k Key) IsPrintable() bool {
	return k >= ' ' && k != 0x7f
}

func (k Key) String() string {
	switch k {
	case NoKey:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Enter:
		return "enter"
	case Escape:
		return "escape"
	case Backspace:
		return "backspace"
	case Newline:
		return "newline"
	}
	if k.IsPrintable() {
		return string([]byte{byte(k)})
	}
	return "0x" + string([]byte{hexDigit(byte(k) >> 4), hexDigit(byte(k) & 0xf)})
}

func hexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'a' + b - 10
}
