package keypad

// Aliases maps raw source characters onto function keys. Each entry lists every
// raw character that should produce that function key, in the order Up, Down,
// Left, Right, Enter, Escape. A character listed under more than one key
// translates to the first one.
type Aliases [FunctionKeys]string

// DefaultAliases suits a 6-button pad wired as U/D/L/R/B/A plus the arrow
// layout of a phone-style 4x3 matrix keypad (2, 8, 4, 6, #, *).
var DefaultAliases = Aliases{
	"U2", // up
	"D8", // down
	"L4", // left
	"R6", // right
	"B#", // enter
	"A*", // escape
}

// Translate returns the function key raw is aliased to, or raw unchanged.
func (a *Aliases) Translate(raw byte) Key {
	if raw == 0 {
		return NoKey
	}
	for i := range a {
		for j := 0; j < len(a[i]); j++ {
			if a[i][j] == raw {
				return Up + Key(i)
			}
		}
	}
	return Key(raw)
}
