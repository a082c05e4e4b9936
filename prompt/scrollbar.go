package prompt

import "github.com/harveysanders/lcdprompt/lcd"

// ScrollMarker maps percent onto a bar height rows tall. Each row has two
// half positions, so the marker moves in half-row steps. It returns the row
// that holds the marker and whether the marker sits in its lower half.
// percent is clamped to 0-99.
func ScrollMarker(percent, height int) (row int, lower bool) {
	if percent > 99 {
		percent = 99
	}
	if percent < 0 {
		percent = 0
	}
	mapped := (height*2 - 2) * percent / 100
	return (mapped + 1) / 2, (mapped+1)%2 == 1
}

// ScrollBar draws a vertical bar height rows tall from col, row using the
// glyphs uploaded by New.
func (u *UI) ScrollBar(percent, col, row, height int) {
	marker, lower := ScrollMarker(percent, height)
	for i := 0; i < height; i++ {
		u.d.SetCursor(col, row+i)
		var c byte
		switch {
		case i == marker && i == 0:
			c = lcd.GlyphTopMarker
		case i == marker && i == height-1:
			c = lcd.GlyphBottomMarker
		case i == marker && lower:
			c = lcd.GlyphLowerHalf
		case i == marker:
			c = lcd.GlyphUpperHalf
		case i == 0:
			c = lcd.GlyphTop
		case i == height-1:
			c = lcd.GlyphBottom
		default:
			c = ' '
		}
		u.d.WriteChar(c)
	}
}
