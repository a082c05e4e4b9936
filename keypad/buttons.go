package keypad

import "time"

// Pin is a digital input. machine.Pin satisfies it on TinyGo targets.
type Pin interface {
	Get() bool
}

// Button binds a pin to the raw character it reports.
type Button struct {
	Pin  Pin
	Char byte
}

// DefaultDebounce is the settle time used when Buttons.Debounce is zero.
const DefaultDebounce = 20 * time.Millisecond

// Buttons is a Source over individually wired push buttons. A press is
// reported once after the pin has been stable for the debounce time. Holding
// a button repeats it when RepeatDelay is set.
type Buttons struct {
	Keys      []Button
	ActiveLow bool // Pressed reads low, as with pull-up wiring.

	Debounce    time.Duration // Minimum stable time before a change counts.
	RepeatDelay time.Duration // Hold time before the first repeat. Zero disables repeat.
	RepeatRate  time.Duration // Interval between repeats once started.

	Now func() time.Time // Defaults to time.Now.

	state []buttonState
}

type buttonState struct {
	raw      bool      // Last sampled level, pressed or not.
	since    time.Time // When raw last changed.
	pressed  bool      // Debounced level.
	repeatAt time.Time // Next repeat while held.
}

// SetRepeat enables hold-to-repeat with the same delay and rate.
func (b *Buttons) SetRepeat(every time.Duration) {
	b.RepeatDelay = every
	b.RepeatRate = every
}

// GetKey samples every button and returns the first new press or repeat.
func (b *Buttons) GetKey() byte {
	if len(b.state) != len(b.Keys) {
		b.state = make([]buttonState, len(b.Keys))
	}
	now := b.now()
	debounce := b.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	for i := range b.Keys {
		s := &b.state[i]
		down := b.Keys[i].Pin.Get() != b.ActiveLow
		if down != s.raw {
			s.raw = down
			s.since = now
			continue
		}
		if now.Sub(s.since) < debounce {
			continue
		}
		if down != s.pressed {
			s.pressed = down
			if down {
				s.repeatAt = now.Add(b.RepeatDelay)
				return b.Keys[i].Char
			}
			continue
		}
		if down && b.RepeatDelay > 0 && !now.Before(s.repeatAt) {
			rate := b.RepeatRate
			if rate <= 0 {
				rate = b.RepeatDelay
			}
			s.repeatAt = now.Add(rate)
			return b.Keys[i].Char
		}
	}
	return 0
}

func (b *Buttons) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
