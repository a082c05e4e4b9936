// Package demo is a small settings menu that exercises every prompt flow. The
// firmware and the host simulator both run it.
package demo

import (
	"strconv"

	"github.com/harveysanders/lcdprompt/prompt"
)

// Settings is what the menu edits.
type Settings struct {
	Name       []byte // Fixed width; edited in place.
	Brightness int    // 0 to 100.
	Offset     float64
	Sound      bool
	Color      int // Index into Colors.
}

// Colors are offered by the color picker.
var Colors = []string{
	"Red", "Orange", "Yellow", "Green", "Cyan", "Blue", "Indigo", "Violet", "White", "Black", "Grey", "Pink",
}

// Defaults returns the settings the menu starts from.
func Defaults() *Settings {
	return &Settings{Name: []byte("pico    "), Brightness: 50, Offset: 1.25}
}

// Main menu entries, in order.
const (
	itemAbout = iota
	itemSetup
	itemName
	itemBrightness
	itemOffset
	itemSound
	itemColor
	itemSummary
)

var mainItems = []string{
	"About this demo",
	"Setup wizard",
	"Name",
	"Brightness",
	"Offset",
	"Sound",
	"Color",
	"Summary",
}

const about = "lcdprompt demo\n" +
	"Up/Down move, Left/Right page, Enter picks, Escape goes back.\n" +
	"In the setup wizard Left and Right at the edge of a field move between fields.\n" +
	"Digits 1-9 pick a menu entry directly."

// Menu runs the main menu until Escape is pressed on it.
type Menu struct {
	// OnChange, when set, is called after each editor closes so the caller
	// can apply the settings (backlight level, say).
	OnChange func(*Settings)

	ui  *prompt.UI
	s   *Settings
	top prompt.ListState
}

// New returns a menu over s.
func New(ui *prompt.UI, s *Settings) *Menu {
	w, h := ui.Size()
	width := w - 2 // bullet and scroll bar
	if width < 1 {
		width = 1
	}
	return &Menu{
		ui: ui,
		s:  s,
		top: prompt.ListState{
			Items:   mainItems,
			Rows:    h,
			Columns: 1,
			Width:   width,
			Options: prompt.ListOptions{Bullets: true, AutoScroll: true, ScrollBar: h > 1},
		},
	}
}

// Run shows the main menu and dispatches until the user leaves it.
func (m *Menu) Run() {
	for {
		m.ui.Clear()
		// A shortcut has already moved the highlight to its item.
		if sig, _ := m.ui.SelectList(&m.top); sig == prompt.Cancel {
			return
		}
		m.open(m.top.Highlighted)
		if m.OnChange != nil {
			m.OnChange(m.s)
		}
	}
}

func (m *Menu) open(item int) {
	switch item {
	case itemAbout:
		m.About()
	case itemSetup:
		m.Setup()
	case itemName:
		m.editName()
	case itemBrightness:
		m.editBrightness()
	case itemOffset:
		m.editOffset()
	case itemSound:
		m.EditSound()
	case itemColor:
		m.PickColor()
	case itemSummary:
		m.ui.OK(m.Summary())
	}
}

// About shows the help text with a scroll bar.
func (m *Menu) About() {
	w, h := m.ui.Size()
	m.ui.Clear()
	m.ui.TextArea(&prompt.TextState{
		Text:      prompt.Static(about),
		Rows:      h,
		Columns:   w - 1,
		ScrollBar: true,
	})
}

// fieldRow is where single field editors put their input.
func (m *Menu) fieldRow() int {
	_, h := m.ui.Size()
	if h > 1 {
		return 1
	}
	return 0
}

func (m *Menu) header(title string) {
	m.ui.Clear()
	if m.fieldRow() > 0 {
		m.ui.Center(0, title)
	}
}

func (m *Menu) editName() prompt.Signal {
	m.header("Name")
	return m.ui.InputPanel(&prompt.FieldState{
		Buf:   m.s.Name,
		Low:   ' ',
		High:  '~',
		Class: prompt.ClassRange,
		Row:   m.fieldRow(),
	})
}

func (m *Menu) editBrightness() prompt.Signal {
	m.header("Brightness")
	st := &prompt.IntState{Value: m.s.Brightness, Low: 0, High: 100, Step: 5, Width: 3, Pad: prompt.PadLeft, Row: m.fieldRow()}
	sig := m.ui.InputInteger(st)
	m.s.Brightness = st.Value
	return sig
}

func (m *Menu) editOffset() prompt.Signal {
	m.header("Offset")
	st := &prompt.FloatState{Value: m.s.Offset, Before: 3, After: 2, Sign: prompt.SignEither, Row: m.fieldRow()}
	sig := m.ui.InputFloat(st)
	m.s.Offset = st.Value
	return sig
}

// Setup walks the name, brightness and offset editors in turn. Leaving a
// field to the right opens the next one and to the left the previous one;
// Enter or Escape ends the wizard.
func (m *Menu) Setup() prompt.Signal {
	steps := []func() prompt.Signal{m.editName, m.editBrightness, m.editOffset}
	i := 0
	for {
		sig := steps[i]()
		switch sig {
		case prompt.Next:
			if i < len(steps)-1 {
				i++
			}
		case prompt.Previous:
			if i > 0 {
				i--
			}
		default:
			return sig
		}
	}
}

// EditSound asks whether sound should be on.
func (m *Menu) EditSound() {
	choice, sig := m.ui.YesNo("Enable sound?")
	if sig == prompt.Accept {
		m.s.Sound = choice == 0
	}
}

// PickColor shows the colors in as many columns as fit, with a position
// counter on the last row.
func (m *Menu) PickColor() {
	w, h := m.ui.Size()
	rows := h
	counter := prompt.NoCounter
	if h > 1 {
		rows = h - 1
		counter = prompt.CurrentTotal
	}
	const cell = 7
	cols := (w + 1) / (cell + 1)
	if cols < 1 {
		cols = 1
	}
	st := &prompt.ListState{
		Items:       Colors,
		Highlighted: m.s.Color,
		Rows:        rows,
		Columns:     cols,
		Width:       cell,
		Options:     prompt.ListOptions{Bullets: true, Counter: counter, FlashCursor: true},
		CounterRow:  h - 1,
	}
	m.ui.Clear()
	if sig, _ := m.ui.SelectList(st); sig != prompt.Cancel {
		m.s.Color = st.Highlighted
	}
}

// Summary renders the settings as a message.
func (m *Menu) Summary() string {
	b := make([]byte, 0, 96)
	b = append(b, "Name: "...)
	b = append(b, m.s.Name...)
	b = append(b, "\nBright: "...)
	b = strconv.AppendInt(b, int64(m.s.Brightness), 10)
	b = append(b, "\nOffset: "...)
	b = strconv.AppendFloat(b, m.s.Offset, 'f', 2, 64)
	b = append(b, "\nSound: "...)
	if m.s.Sound {
		b = append(b, "on"...)
	} else {
		b = append(b, "off"...)
	}
	b = append(b, "\nColor: "...)
	b = append(b, Colors[m.s.Color]...)
	return string(b)
}
