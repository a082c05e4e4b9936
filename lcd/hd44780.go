package lcd

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// ProbeAddrs are the I2C addresses PCF8574 LCD backpacks ship with, in the
// order Probe tries them.
var ProbeAddrs = []uint8{0x27, 0x3F}

// ErrNotFound is returned by Probe when no address acknowledges.
var ErrNotFound = errors.New("LCD not found on addresses: 0x27, 0x3f")

// Probe takes a preconfigured I2C bus and initializes the first HD44780
// backpack that answers on ProbeAddrs.
func Probe(bus drivers.I2C, cols, rows int) (*hd44780i2c.Device, error) {
	for _, a := range ProbeAddrs {
		// The driver drops bus errors, so look for an ACK first.
		if err := bus.Tx(uint16(a), []byte{0}, nil); err != nil {
			continue
		}
		dev := hd44780i2c.New(bus, a)
		err := dev.Configure(hd44780i2c.Config{
			Width:  uint8(cols),
			Height: uint8(rows),
		})
		if err != nil {
			continue
		}
		return &dev, nil
	}
	return nil, ErrNotFound
}

// HD44780 adapts an hd44780i2c device to Display.
type HD44780 struct {
	dev     *hd44780i2c.Device
	rows    int
	columns int
	col     int
	// Scratch buffers so printing doesn't allocate on every redraw.
	one [1]byte
	buf []byte
}

// NewHD44780 wraps a configured device with the given glass size.
func NewHD44780(dev *hd44780i2c.Device, cols, rows int) *HD44780 {
	return &HD44780{
		dev:     dev,
		rows:    rows,
		columns: cols,
		buf:     make([]byte, 0, cols),
	}
}

func (h *HD44780) Clear() {
	h.dev.ClearDisplay()
	h.col = 0
}

func (h *HD44780) SetCursor(col, row int) {
	if col < 0 || row < 0 || row >= h.rows {
		return
	}
	h.col = col
	h.dev.SetCursor(uint8(col), uint8(row))
}

// WriteChar drops characters past the last column. The driver would
// otherwise wrap them onto the next row.
func (h *HD44780) WriteChar(c byte) {
	if h.col >= h.columns {
		return
	}
	h.one[0] = c
	h.dev.Print(h.one[:])
	h.col++
}

func (h *HD44780) Print(s string) {
	// Truncate in place, no allocation
	room := h.columns - h.col
	if room <= 0 {
		return
	}
	h.buf = append(h.buf[:0], s...)
	out := Truncate(h.buf, room)
	h.dev.Print(out)
	h.col += len(out)
}

func (h *HD44780) Blink(on bool) {
	h.dev.CursorBlink(on)
}

func (h *HD44780) Cursor(on bool) {
	h.dev.CursorOn(on)
}

func (h *HD44780) CreateChar(slot uint8, bitmap [8]byte) {
	h.dev.CreateCharacter(slot&0x7, bitmap[:])
}
