package lcd

import (
	"io"
	"time"
)

// Serial backpack command bytes. Every command is the prefix followed by one
// HD44780 instruction byte.
const (
	serialCommand = 0xfe
	cmdClear      = 0x01
	cmdDisplayOn  = 0x0c
	cmdCursorOn   = 0x02
	cmdBlinkOn    = 0x01
	cmdSetCGRAM   = 0x40
)

// DefaultSettle is the instruction settle time used by NewSerial.
const DefaultSettle = 50 * time.Millisecond

// Serial drives a character LCD behind a UART backpack that forwards bytes
// prefixed with 0xFE to the controller as instructions and prints the rest.
// machine.UART satisfies io.Writer on TinyGo targets.
type Serial struct {
	w      io.Writer
	cmd    [2]byte
	one    [1]byte
	blink  bool
	cursor bool
	err    error

	// Settle is the pause after each instruction. Slow backpacks drop bytes
	// without it.
	Settle time.Duration
	Sleep  func(time.Duration)
}

// NewSerial returns a Serial display writing to w with DefaultSettle.
func NewSerial(w io.Writer) *Serial {
	return &Serial{w: w, Settle: DefaultSettle, Sleep: time.Sleep}
}

// Err returns the first write error seen. Display methods have no error
// result, so failures are latched here and later writes are skipped.
func (s *Serial) Err() error { return s.err }

func (s *Serial) Clear() {
	s.command(cmdClear)
}

func (s *Serial) SetCursor(col, row int) {
	addr, ok := Address(col, row)
	if !ok {
		return
	}
	s.command(addr)
}

func (s *Serial) WriteChar(c byte) {
	s.one[0] = c
	s.write(s.one[:])
}

func (s *Serial) Print(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *Serial) Blink(on bool) {
	s.blink = on
	s.control()
}

func (s *Serial) Cursor(on bool) {
	s.cursor = on
	s.control()
}

func (s *Serial) CreateChar(slot uint8, bitmap [8]byte) {
	s.command(cmdSetCGRAM | (slot&0x7)<<3)
	s.write(bitmap[:])
}

func (s *Serial) control() {
	c := byte(cmdDisplayOn)
	if s.cursor {
		c |= cmdCursorOn
	}
	if s.blink {
		c |= cmdBlinkOn
	}
	s.command(c)
}

func (s *Serial) command(c byte) {
	s.cmd[0], s.cmd[1] = serialCommand, c
	s.write(s.cmd[:])
	if s.Settle > 0 && s.Sleep != nil {
		s.Sleep(s.Settle)
	}
}

func (s *Serial) write(b []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(b)
}
