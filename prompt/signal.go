package prompt

// Signal is how an interactive call ended.
type Signal int8

const (
	Accept   Signal = 1  // Enter was pressed.
	Cancel   Signal = -1 // Escape was pressed. Values are left as they were.
	Previous Signal = -3 // Left was pressed at the first position: move to the previous field.
	Next     Signal = -4 // Right was pressed at the last position: move to the next field.
	Shortcut Signal = 2  // A digit key 1-9 picked an entry directly.
)

func (s Signal) String() string {
	switch s {
	case Accept:
		return "accept"
	case Cancel:
		return "cancel"
	case Previous:
		return "previous"
	case Next:
		return "next"
	case Shortcut:
		return "shortcut"
	}
	return "unknown"
}
