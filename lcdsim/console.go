package main

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/harveysanders/lcdprompt/keypad"
	"github.com/harveysanders/lcdprompt/lcd"
)

const ctrlC = 0x03

// decodeKeys appends the keys in one chunk read from a raw terminal to dst.
// Arrow keys become the function key codes, Return is Enter, Delete is
// Backspace and a lone ESC is Escape. Other control bytes are dropped so they
// cannot alias a function key. quit reports a Ctrl-C anywhere in the chunk.
func decodeKeys(dst, chunk []byte) (keys []byte, quit bool) {
	for i := 0; i < len(chunk); i++ {
		c := chunk[i]
		switch {
		case c == ctrlC:
			return dst, true
		case c == 0x1b:
			if i+2 < len(chunk) && (chunk[i+1] == '[' || chunk[i+1] == 'O') {
				switch chunk[i+2] {
				case 'A':
					dst = append(dst, byte(keypad.Up))
				case 'B':
					dst = append(dst, byte(keypad.Down))
				case 'C':
					dst = append(dst, byte(keypad.Right))
				case 'D':
					dst = append(dst, byte(keypad.Left))
				}
				// Skip the rest of the sequence up to its final byte.
				j := i + 2
				for j < len(chunk) && (chunk[j] < 0x40 || chunk[j] > 0x7e) {
					j++
				}
				i = j
				continue
			}
			dst = append(dst, byte(keypad.Escape))
		case c == '\r':
			dst = append(dst, byte(keypad.Enter))
		case c == 0x7f || c == '\b':
			dst = append(dst, byte(keypad.Backspace))
		case c == '\n':
			dst = append(dst, byte(keypad.Newline))
		case c >= ' ':
			dst = append(dst, c)
		}
	}
	return dst, false
}

// console is the simulator's keypad.Source. It queues keys read from the
// terminal and repaints the frame whenever the display changed since the
// previous poll.
type console struct {
	grid  *lcd.Grid
	out   io.Writer
	title string
	log   *zap.Logger

	mu   sync.Mutex
	keys []byte
	quit chan struct{}
	once sync.Once
}

func newConsole(grid *lcd.Grid, out io.Writer, title string, log *zap.Logger) *console {
	return &console{grid: grid, out: out, title: title, log: log, quit: make(chan struct{})}
}

// readFrom feeds keys from r until it fails or sees Ctrl-C, then closes
// Quit.
func (c *console) readFrom(r io.Reader) {
	defer c.once.Do(func() { close(c.quit) })
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.mu.Lock()
			var quit bool
			c.keys, quit = decodeKeys(c.keys, buf[:n])
			c.mu.Unlock()
			if quit {
				c.log.Info("quit requested")
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				c.log.Warn("terminal read failed", zap.Error(err))
			}
			return
		}
	}
}

// Quit is closed when input ends.
func (c *console) Quit() <-chan struct{} { return c.quit }

// GetKey returns the next queued key, or 0.
func (c *console) GetKey() byte {
	if c.grid.Dirty() {
		c.repaint()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.keys) == 0 {
		return 0
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	c.log.Debug("key", zap.Stringer("key", keypad.Key(k)))
	return k
}

func (c *console) repaint() {
	frame := renderFrame(c.grid, c.title)
	// Raw mode needs explicit carriage returns.
	frame = strings.ReplaceAll(frame, "\n", "\r\n")
	if _, err := io.WriteString(c.out, "\x1b[H\x1b[2J"+frame+"\r\n"); err != nil {
		c.log.Warn("repaint failed", zap.Error(err))
	}
}

var (
	frameColor  = lipgloss.Color("#43BF6D")
	glassColor  = lipgloss.Color("#1E3A8A")
	pixelColor  = lipgloss.Color("#E0F2FE")
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frameColor).Padding(0, 1)
	glassStyle  = lipgloss.NewStyle().Background(glassColor).Foreground(pixelColor)
	cursorStyle = glassStyle.Reverse(true)
	blinkStyle  = glassStyle.Reverse(true).Blink(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).PaddingLeft(1)
)

// lcdRune maps an A00 character ROM byte onto what a terminal can show.
func lcdRune(c byte) rune {
	switch c {
	case lcd.GlyphTopMarker:
		return '▲'
	case lcd.GlyphTop:
		return '╥'
	case lcd.GlyphUpperHalf:
		return '▀'
	case lcd.GlyphLowerHalf:
		return '▄'
	case lcd.GlyphBottom:
		return '╨'
	case lcd.GlyphBottomMarker:
		return '▼'
	case 0x7e:
		return '→'
	case 0x7f:
		return '←'
	case 0xa5:
		return '·'
	case 0xff:
		return '█'
	}
	if c < ' ' || c >= 0x80 {
		return ' '
	}
	return rune(c)
}

// renderFrame draws the grid as a bordered LCD with the cursor marked.
func renderFrame(g *lcd.Grid, title string) string {
	cols, rows := g.Size()
	ccol, crow := g.CursorAt()
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for col := 0; col < cols; col++ {
			cell := string(lcdRune(g.At(col, r)))
			switch {
			case r == crow && col == ccol && g.Blinking():
				b.WriteString(blinkStyle.Render(cell))
			case r == crow && col == ccol && g.Underline():
				b.WriteString(cursorStyle.Render(cell))
			default:
				b.WriteString(glassStyle.Render(cell))
			}
		}
		lines[r] = b.String()
	}
	screen := frameStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, screen, titleStyle.Render(title))
}
