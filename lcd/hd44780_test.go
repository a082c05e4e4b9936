package lcd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNack = errors.New("nack")

// i2cBus records writes to the addresses that acknowledge.
type i2cBus struct {
	present  map[uint16]bool
	attempts map[uint16]int
	writes   map[uint16][]byte
}

func newI2CBus(present ...uint16) *i2cBus {
	b := &i2cBus{present: map[uint16]bool{}, attempts: map[uint16]int{}, writes: map[uint16][]byte{}}
	for _, a := range present {
		b.present[a] = true
	}
	return b
}

func (b *i2cBus) Tx(addr uint16, w, r []byte) error {
	b.attempts[addr]++
	if !b.present[addr] {
		return errNack
	}
	b.writes[addr] = append(b.writes[addr], w...)
	return nil
}

type lcdOp struct {
	data bool
	b    byte
}

// sent decodes the 4-bit transfers latched on each enable pulse.
func (b *i2cBus) sent(addr uint16) []lcdOp {
	var (
		out  []lcdOp
		hi   byte
		half bool
	)
	for _, w := range b.writes[addr] {
		if w&0x04 == 0 {
			continue
		}
		if !half {
			hi, half = w&0xf0, true
			continue
		}
		out = append(out, lcdOp{data: w&0x01 != 0, b: hi | w>>4})
		half = false
	}
	return out
}

func TestProbeDeadBus(t *testing.T) {
	bus := newI2CBus()
	dev, err := Probe(bus, 20, 4)
	assert.Nil(t, dev)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, bus.attempts[0x27])
	assert.Equal(t, 1, bus.attempts[0x3f])
}

func TestProbeAddresses(t *testing.T) {
	tests := []struct {
		name    string
		present uint16
		absent  uint16
	}{
		{"0x27", 0x27, 0x3f},
		{"0x3f only", 0x3f, 0x27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := newI2CBus(tt.present)
			dev, err := Probe(bus, 20, 4)
			require.NoError(t, err)
			require.NotNil(t, dev)
			assert.NotEmpty(t, bus.writes[tt.present], "device initialized")
			assert.LessOrEqual(t, bus.attempts[tt.absent], 1, "only the presence check")
		})
	}
}

func TestHD44780(t *testing.T) {
	bus := newI2CBus(0x27)
	dev, err := Probe(bus, 4, 2)
	require.NoError(t, err)
	h := NewHD44780(dev, 4, 2)

	cmd := func(b byte) lcdOp { return lcdOp{b: b} }
	dat := func(b byte) lcdOp { return lcdOp{data: true, b: b} }
	step := func(do func()) []lcdOp {
		t.Helper()
		bus.writes[0x27] = nil
		do()
		return bus.sent(0x27)
	}

	assert.Equal(t, []lcdOp{cmd(0x01)}, step(h.Clear))
	assert.Equal(t, []lcdOp{cmd(0xc2)}, step(func() { h.SetCursor(2, 1) }))
	assert.Empty(t, step(func() { h.SetCursor(0, 2) }), "rows past the glass are ignored")

	assert.Equal(t, []lcdOp{cmd(0x81), dat('a'), dat('b'), dat('c')},
		step(func() {
			h.SetCursor(1, 0)
			h.Print("abcdef")
		}), "print stops at the last column")
	assert.Empty(t, step(func() { h.WriteChar('z') }), "no wrap onto the next row")

	assert.Equal(t, []lcdOp{cmd(0x80), dat('z')},
		step(func() {
			h.SetCursor(0, 0)
			h.WriteChar('z')
		}))

	assert.Equal(t, []lcdOp{cmd(0x0e)}, step(func() { h.Cursor(true) }))
	assert.Equal(t, []lcdOp{cmd(0x0f)}, step(func() { h.Blink(true) }))

	ops := step(func() { h.CreateChar(9, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}) })
	require.Len(t, ops, 10)
	assert.Equal(t, cmd(0x48), ops[0], "slot wraps to 1")
	assert.Equal(t, dat(8), ops[8])
}
