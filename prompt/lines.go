package prompt

// NextLine returns the offset of the visual line after the one starting at
// off, wrapping at width columns. A '\n' inside the line ends it early. The
// last visual line of the buffer does not advance.
//
// off must be a line start previously returned by NextLine or PrevLine (or 0)
// and width must be positive.
func NextLine(t Text, off, width int) int {
	n := t.Len()
	for i := off; i < off+width; i++ {
		if i >= n {
			return off
		}
		if t.At(i) == '\n' {
			return i + 1
		}
	}
	return off + width
}

// PrevLine returns the offset of the visual line before the one starting at
// off. When the previous character is a '\n' the previous paragraph may wrap
// over several lines, so the result is the start of its last wrapped segment.
//
// The same preconditions as NextLine apply.
func PrevLine(t Text, off, width int) int {
	if off <= 0 {
		return 0
	}
	if t.At(off-1) != '\n' {
		if off < width {
			return 0
		}
		return off - width
	}
	start := 0
	for i := off - 2; i >= 0; i-- {
		if t.At(i) == '\n' {
			start = i + 1
			break
		}
	}
	length := off - 1 - start
	return off - (length%width + 1)
}
