// Package prompt renders menus, scrolling text, input panels and dialogs on a
// character LCD and drives them from polled keys.
//
// Every interactive call is a blocking loop: poll the keys for one interval,
// apply at most one key, redraw, repeat until Enter, Escape or an edge of the
// field ends it. There is no background work; a list with an overlong
// highlighted item re-renders on the poll tick to animate it.
//
//	ui, err := prompt.New(prompt.Config{
//	    Display:   display,
//	    Keys:      keypad.NewPoller(keypad.DefaultAliases, buttons),
//	    Width:     20,
//	    Height:    4,
//	    Indicator: '~',
//	})
//	menu := &prompt.ListState{Items: items, Rows: 4, Columns: 1, Width: 18}
//	if sig, _ := ui.SelectList(menu); sig == prompt.Accept {
//	    // menu.Highlighted is the choice
//	}
//
// State records (ListState, TextState, FieldState, IntState, FloatState)
// borrow the caller's buffers and are only touched during the call they are
// passed to.
package prompt

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/harveysanders/lcdprompt/keypad"
	"github.com/harveysanders/lcdprompt/lcd"
)

const (
	// DefaultIndicator marks the highlighted list item. On the HD44780 A00
	// character ROM '~' is drawn as a right arrow.
	DefaultIndicator = '~'
	// DefaultBullet marks the other list items; 0xA5 is a centered dot on A00.
	DefaultBullet = 0xa5
	// DefaultPollInterval is how long each loop iteration waits for a key.
	DefaultPollInterval = 50 * time.Millisecond
	// ScrollTick is how long an auto-scrolling item rests on each character.
	ScrollTick = 500 * time.Millisecond
)

// KeySource is where interactive calls read keys from. keypad.Poller
// implements it.
type KeySource interface {
	// Poll waits at most timeout for a key and returns keypad.NoKey if none
	// arrived.
	Poll(timeout time.Duration) keypad.Key
}

// Config is everything a UI needs. It is read once by New.
type Config struct {
	Display lcd.Display
	Keys    KeySource

	Width  int // Display columns, 1 to lcd.MaxColumns.
	Height int // Display rows, 1 to lcd.MaxRows.

	Indicator byte // Zero means DefaultIndicator.
	Bullet    byte // Zero means DefaultBullet.

	PollInterval time.Duration    // Zero means DefaultPollInterval.
	Clock        func() time.Time // Drives auto-scroll. Nil means time.Now.
	Logger       *slog.Logger     // Nil discards logs.
}

var (
	ErrNoDisplay = errors.New("prompt: no display")
	ErrNoKeys    = errors.New("prompt: no key source")
	ErrSize      = errors.New("prompt: display size out of range")
)

// UI holds the process-wide display configuration. It is not safe to change
// its indicator or bullet while an interactive call is running.
type UI struct {
	d         lcd.Display
	keys      KeySource
	width     int
	height    int
	indicator byte
	bullet    byte
	poll      time.Duration
	clock     func() time.Time
	epoch     time.Time
	log       *slog.Logger

	line []byte // Scratch line, reused across renders.
}

// New validates cfg and uploads the scroll bar glyphs to the display.
func New(cfg Config) (*UI, error) {
	if cfg.Display == nil {
		return nil, ErrNoDisplay
	}
	if cfg.Keys == nil {
		return nil, ErrNoKeys
	}
	if cfg.Width < 1 || cfg.Width > lcd.MaxColumns || cfg.Height < 1 || cfg.Height > lcd.MaxRows {
		return nil, errors.New(ErrSize.Error() + ": " + strconv.Itoa(cfg.Width) + "x" + strconv.Itoa(cfg.Height))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Make temporary logger that does no logging.
		}))
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	u := &UI{
		d:         cfg.Display,
		keys:      cfg.Keys,
		width:     cfg.Width,
		height:    cfg.Height,
		indicator: cfg.Indicator,
		bullet:    cfg.Bullet,
		poll:      cfg.PollInterval,
		clock:     clock,
		epoch:     clock(),
		log:       logger,
		line:      make([]byte, 0, lcd.MaxColumns+1),
	}
	if u.indicator == 0 {
		u.indicator = DefaultIndicator
	}
	if u.bullet == 0 {
		u.bullet = DefaultBullet
	}
	if u.poll <= 0 {
		u.poll = DefaultPollInterval
	}

	lcd.LoadGlyphs(u.d)
	u.log.Info("prompt:ready", slog.Int("width", u.width), slog.Int("height", u.height))
	return u, nil
}

// Display returns the display the UI draws on.
func (u *UI) Display() lcd.Display { return u.d }

// Size returns the display size in characters.
func (u *UI) Size() (width, height int) { return u.width, u.height }

// SetIndicator changes the highlighted item marker.
func (u *UI) SetIndicator(c byte) { u.indicator = c }

// SetBullet changes the marker drawn before the other list items.
func (u *UI) SetBullet(c byte) { u.bullet = c }

// Clear blanks the display.
func (u *UI) Clear() { u.d.Clear() }

// Print writes s at col, row. Nothing is truncated; the display drops what
// falls off its edge.
func (u *UI) Print(col, row int, s string) {
	u.d.SetCursor(col, row)
	u.d.Print(s)
}

// Center writes title on row, centered between '>' and '<' fill.
func (u *UI) Center(row int, title string) {
	u.d.SetCursor(0, row)
	u.writeBytes(CenterText(u.scratch(u.width), title))
}

func (u *UI) wait(timeout time.Duration) keypad.Key {
	return u.keys.Poll(timeout)
}

// tick counts ScrollTick periods since New.
func (u *UI) tick() int {
	return int(u.clock().Sub(u.epoch) / ScrollTick)
}

// scratch returns the reusable line buffer resized to n bytes.
func (u *UI) scratch(n int) []byte {
	if cap(u.line) < n {
		u.line = make([]byte, n)
	}
	return u.line[:n]
}

func (u *UI) writeBytes(b []byte) {
	for _, c := range b {
		u.d.WriteChar(c)
	}
}
