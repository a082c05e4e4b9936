package prompt

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/harveysanders/lcdprompt/keypad"
)

// Padding is how an integer is laid out in its field.
type Padding uint8

const (
	PadRight Padding = iota // "42  "
	PadZero                 // "0042", "-042"
	PadLeft                 // "  42"
)

// IntState is an integer edited with Up and Down between Low and High.
type IntState struct {
	Value int
	Low   int
	High  int
	Step  int

	Col   int
	Row   int
	Width int // Field width; the whole field is repainted on each change.
	Pad   Padding
}

// AppendInt appends n formatted into a field width characters wide. Numbers
// wider than the field are appended in full.
func AppendInt(dst []byte, n, width int, pad Padding) []byte {
	start := len(dst)
	dst = strconv.AppendInt(dst, int64(n), 10)
	fill := width - (len(dst) - start)
	if fill <= 0 {
		return dst
	}
	switch pad {
	case PadRight:
		for i := 0; i < fill; i++ {
			dst = append(dst, ' ')
		}
	case PadZero, PadLeft:
		c := byte(' ')
		at := start
		if pad == PadZero {
			c = '0'
			if n < 0 {
				at++ // keep the sign in front of the zeros
			}
		}
		for i := 0; i < fill; i++ {
			dst = append(dst, 0)
		}
		copy(dst[at+fill:], dst[at:len(dst)-fill])
		for i := at; i < at+fill; i++ {
			dst[i] = c
		}
	}
	return dst
}

func (u *UI) drawInt(s *IntState, n int) {
	u.line = AppendInt(u.line[:0], n, s.Width, s.Pad)
	u.d.SetCursor(s.Col, s.Row)
	u.writeBytes(u.line)
	u.d.SetCursor(s.Col, s.Row)
}

// InputInteger steps s.Value by s.Step with Up and Down, wrapping from High
// to Low and back. Left, Right and Enter store the value and return
// Previous, Next and Accept; Escape returns Cancel and leaves s.Value as it
// was.
func (u *UI) InputInteger(s *IntState) Signal {
	n := s.Value
	u.drawInt(s, n)
	u.d.Cursor(true)
	for {
		switch u.wait(u.poll) {
		case keypad.Up:
			if n+s.Step <= s.High {
				n += s.Step
			} else {
				n = s.Low
			}
			u.drawInt(s, n)
		case keypad.Down:
			if n-s.Step >= s.Low {
				n -= s.Step
			} else {
				n = s.High
			}
			u.drawInt(s, n)
		case keypad.Left:
			return u.storeInt(s, n, Previous)
		case keypad.Right:
			return u.storeInt(s, n, Next)
		case keypad.Enter:
			return u.storeInt(s, n, Accept)
		case keypad.Escape:
			u.d.Cursor(false)
			return Cancel
		}
	}
}

func (u *UI) storeInt(s *IntState, n int, sig Signal) Signal {
	s.Value = n
	u.d.Cursor(false)
	return sig
}

// SignMode restricts the sign of a FloatState.
type SignMode uint8

const (
	SignPositive SignMode = iota // Digits only.
	SignNegative                 // Fixed leading '-'.
	SignEither                   // Every cell accepts '-' as well as digits.
)

// FloatState is a fixed-point number edited digit by digit.
type FloatState struct {
	Value  float64
	Before int // Characters before the decimal point, sign included.
	After  int // Digits after the decimal point. Zero drops the point.

	Col  int
	Row  int
	Sign SignMode
}

// AppendFixed appends v with before integer characters (zero padded, sign
// included) and after decimals, rounded half away from zero.
func AppendFixed(dst []byte, v float64, before, after int) []byte {
	scale := math.Pow10(after)
	scaled := int64(math.Round(math.Abs(v) * scale))
	ip := scaled / int64(scale)
	fp := scaled % int64(scale)

	width := before
	if v < 0 && scaled != 0 {
		dst = append(dst, '-')
		width--
	}
	dst = appendZeroPadded(dst, ip, width)
	if after > 0 {
		dst = append(dst, '.')
		dst = appendZeroPadded(dst, fp, after)
	}
	return dst
}

// saturate clamps v to the largest magnitude AppendFixed can write in before
// integer characters, keeping its sign.
func saturate(v float64, before, after int) float64 {
	digits := before
	if v < 0 {
		digits--
	}
	limit := math.Pow10(digits) - math.Pow10(-after)
	return math.Copysign(math.Min(math.Abs(v), limit), v)
}

func appendZeroPadded(dst []byte, n int64, width int) []byte {
	digits := 1
	for m := n; m >= 10; m /= 10 {
		digits++
	}
	for i := digits; i < width; i++ {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, n, 10)
}

// ParseFixed reads a number edited by InputFloat. Blanks left by Backspace
// are skipped.
func ParseFixed(b []byte) (float64, error) {
	clean := make([]byte, 0, len(b))
	for _, c := range b {
		if c != ' ' {
			clean = append(clean, c)
		}
	}
	return strconv.ParseFloat(string(clean), 64)
}

// InputFloat edits s.Value through a character panel laid out as
// Before.After digits. Unless the result is Cancel, the edited text is parsed
// back into s.Value; text that does not parse (two signs, say) leaves the
// value unchanged.
func (u *UI) InputFloat(s *FloatState) Signal {
	width := s.Before
	if s.After > 0 {
		width += s.After + 1
	}
	buf := AppendFixed(make([]byte, 0, width+1), s.Value, s.Before, s.After)
	if len(buf) > width {
		buf = AppendFixed(buf[:0], saturate(s.Value, s.Before, s.After), s.Before, s.After)
	}
	if len(buf) > width {
		buf = buf[len(buf)-width:]
	}

	f := &FieldState{Buf: buf, Col: s.Col, Row: s.Row, Low: '0', High: '9', Class: ClassRange}
	switch s.Sign {
	case SignNegative:
		buf[0] = '-'
	case SignEither:
		f.Low, f.High, f.Class = '-', '-', ClassRangeDigits
	}

	sig := u.InputPanel(f)
	if sig == Cancel {
		return sig
	}
	v, err := ParseFixed(buf)
	if err != nil {
		u.log.Debug("float:unparsable", slog.String("text", string(buf)), slog.String("err", err.Error()))
		return sig
	}
	s.Value = v
	return sig
}
