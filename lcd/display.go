// Package lcd defines the character display surface the prompt package draws
// on, and adapters for the displays it usually runs against.
//
// Example usage:
//
//	dev, err := lcd.Probe(machine.I2C0, 20, 4)
//	if err != nil {
//	    // no LCD on 0x27 or 0x3F
//	}
//	display := lcd.NewHD44780(dev, 20, 4)
//	lcd.LoadGlyphs(display)
//
// Grid is an in-memory display used by tests and the terminal simulator.
package lcd

// Display is a character grid with a hardware cursor. Columns and rows count
// from zero at the top left. Writes advance the cursor one column.
type Display interface {
	Clear()
	SetCursor(col, row int)
	WriteChar(c byte)
	Print(s string)
	Blink(on bool)  // Blinking block cursor.
	Cursor(on bool) // Underline cursor.
	CreateChar(slot uint8, bitmap [8]byte)
}

// MaxRows is the most rows an HD44780 class controller can address.
const MaxRows = 4

// MaxColumns is the widest line the row address table supports.
const MaxColumns = 20

// RowOffsets holds the DDRAM address of column 0 for each row of a 20x4
// HD44780 controller. 16x2 and 20x2 modules use the first two entries.
var RowOffsets = [MaxRows]uint8{0x00, 0x40, 0x14, 0x54}

// Address returns the set-DDRAM-address command for col, row. ok is false when
// the position is off the addressable grid; such moves are dropped.
func Address(col, row int) (cmd uint8, ok bool) {
	if col < 0 || col > MaxColumns || row < 0 || row >= MaxRows {
		return 0, false
	}
	return 0x80 | (RowOffsets[row] + uint8(col)), true
}

// Truncate returns the first n bytes of b, or b when it is shorter. No copy
// is made.
func Truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
