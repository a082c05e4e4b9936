package prompt

// Text is a read-only byte source for long messages. Bytes wraps a buffer the
// caller may keep editing between calls; Static wraps a string constant, the
// equivalent of a message kept in program memory.
type Text interface {
	Len() int
	At(i int) byte
}

// Bytes is a Text over a caller-owned buffer.
type Bytes []byte

func (b Bytes) Len() int      { return len(b) }
func (b Bytes) At(i int) byte { return b[i] }

// Static is a Text over a string.
type Static string

func (s Static) Len() int      { return len(s) }
func (s Static) At(i int) byte { return s[i] }

// ScrollText fills dst with the window of src starting at pos. Positions
// before the start or past the end of src become spaces, so stepping pos from
// -len(dst) to src.Len() slides the text in from the right and out to the
// left.
func ScrollText(dst []byte, src Text, pos int) {
	n := src.Len()
	for j := range dst {
		if pos < 0 || pos >= n {
			dst[j] = ' '
		} else {
			dst[j] = src.At(pos)
		}
		pos++
	}
}

// PadText copies s into dst, cutting it to len(dst) or filling the rest with
// spaces.
func PadText(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = ' '
	}
}

// CenterText fills dst with s centered between '>' on the left and '<' on the
// right, and returns dst. "Introduction" on 20 columns gives
// ">>>>Introduction<<<<".
func CenterText(dst []byte, s string) []byte {
	w, n := len(dst), len(s)
	left := w/2 - (n - n/2)
	right := w/2 + n/2
	j := 0
	for i := range dst {
		switch {
		case i < left:
			dst[i] = '>'
		case i >= right:
			dst[i] = '<'
		case j < n:
			dst[i] = s[j]
			j++
		default:
			dst[i] = ' '
		}
	}
	return dst
}
