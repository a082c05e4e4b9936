package lcd

// Glyph slots used by the vertical scroll bar. Slot numbers double as the
// character codes that print them.
const (
	GlyphTopMarker    uint8 = iota // Up triangle over a block: marker on the top row.
	GlyphTop                       // Up triangle: top row without the marker.
	GlyphUpperHalf                 // Upper half block: marker in the top half of a middle row.
	GlyphLowerHalf                 // Lower half block: marker in the bottom half of a middle row.
	GlyphBottom                    // Down triangle: bottom row without the marker.
	GlyphBottomMarker              // Down triangle under a block: marker on the bottom row.
)

// ScrollBarGlyphs are the 5x8 bitmaps for the scroll bar slots, one byte per
// pixel row, low five bits used.
var ScrollBarGlyphs = [6][8]byte{
	GlyphTopMarker:    {0x04, 0x0e, 0x1f, 0x00, 0x1f, 0x1f, 0x1f, 0x1f},
	GlyphTop:          {0x04, 0x0e, 0x1f, 0x00, 0x00, 0x00, 0x00, 0x00},
	GlyphUpperHalf:    {0x1f, 0x1f, 0x1f, 0x1f, 0x00, 0x00, 0x00, 0x00},
	GlyphLowerHalf:    {0x00, 0x00, 0x00, 0x00, 0x1f, 0x1f, 0x1f, 0x1f},
	GlyphBottom:       {0x00, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x0e, 0x04},
	GlyphBottomMarker: {0x1f, 0x1f, 0x1f, 0x1f, 0x00, 0x1f, 0x0e, 0x04},
}

// LoadGlyphs uploads the scroll bar glyphs into slots 0-5. Anything the
// application stored in those slots is overwritten.
func LoadGlyphs(d Display) {
	for i := range ScrollBarGlyphs {
		d.CreateChar(uint8(i), ScrollBarGlyphs[i])
	}
}
