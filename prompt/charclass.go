package prompt

// CharClass is the set of characters an input panel cell cycles through with
// Up and Down, and accepts from a full keypad. The low and high bounds passed
// to its methods only matter for ClassRange and ClassRangeDigits.
//
// Characters outside the class are left alone by Inc and Dec, so fixed
// separators such as the '.' of a decimal field survive Up and Down.
type CharClass uint8

const (
	ClassRange       CharClass = iota // low..high, high wraps to low.
	ClassRangeDigits                  // low..high then '0'..'9', '9' wraps to low.
	ClassDigits                       // '0'..'9'.
	ClassSigned                       // '-' then '0'..'9'.
	// ClassDigitsAuto and ClassSignedAuto are reserved for digit runs that
	// carry into their neighbours ("0009" to "0010"). They currently cycle a
	// single cell like ClassDigits and ClassSigned.
	ClassDigitsAuto
	ClassSignedAuto
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Inc returns the character after ch.
func (c CharClass) Inc(ch, low, high byte) byte {
	switch c {
	case ClassRange:
		switch {
		case ch >= low && ch < high:
			return ch + 1
		case ch == high:
			return low
		}
	case ClassRangeDigits:
		switch {
		case ch >= low && ch < high:
			return ch + 1
		case ch == '9':
			return low
		case ch >= '0' && ch < '9':
			return ch + 1
		case ch == high:
			return '0'
		}
	case ClassDigits, ClassDigitsAuto:
		switch {
		case ch == '9':
			return '0'
		case isDigit(ch):
			return ch + 1
		}
	case ClassSigned, ClassSignedAuto:
		switch {
		case ch == '9':
			return '-'
		case ch == '-':
			return '0'
		case isDigit(ch):
			return ch + 1
		}
	}
	return ch
}

// Dec returns the character before ch.
func (c CharClass) Dec(ch, low, high byte) byte {
	switch c {
	case ClassRange:
		switch {
		case ch > low && ch <= high:
			return ch - 1
		case ch == low:
			return high
		}
	case ClassRangeDigits:
		switch {
		case ch > low && ch <= high:
			return ch - 1
		case ch == '0':
			return high
		case ch > '0' && ch <= '9':
			return ch - 1
		case ch == low:
			return '9'
		}
	case ClassDigits, ClassDigitsAuto:
		switch {
		case ch == '0':
			return '9'
		case isDigit(ch):
			return ch - 1
		}
	case ClassSigned, ClassSignedAuto:
		switch {
		case ch == '0':
			return '-'
		case ch == '-':
			return '9'
		case isDigit(ch):
			return ch - 1
		}
	}
	return ch
}

// Accepts reports whether ch typed on a full keypad may be stored.
func (c CharClass) Accepts(ch, low, high byte) bool {
	switch c {
	case ClassRange:
		return ch >= low && ch <= high
	case ClassRangeDigits:
		return ch >= low && ch <= high || isDigit(ch)
	case ClassDigits, ClassDigitsAuto:
		return isDigit(ch)
	case ClassSigned, ClassSignedAuto:
		return isDigit(ch) || ch == '-'
	}
	return false
}
