package keypad

import "time"

// Source is a polled raw key source such as a button pad or matrix keypad.
// GetKey must not block and returns 0 when no key is pressed.
type Source interface {
	GetKey() byte
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() byte

func (f SourceFunc) GetKey() byte { return f() }

// DefaultGap is how long Poll sleeps between scans of its sources.
const DefaultGap = time.Millisecond

// Poller scans a set of sources and translates what they report.
type Poller struct {
	sources []Source
	aliases Aliases

	// Now and Sleep default to time.Now and time.Sleep. Tests replace them.
	Now   func() time.Time
	Sleep func(time.Duration)
	// Gap is the pause between scans. Zero means DefaultGap.
	Gap time.Duration
}

// NewPoller creates a poller over sources, scanned in order on every pass.
func NewPoller(aliases Aliases, sources ...Source) *Poller {
	return &Poller{
		sources: sources,
		aliases: aliases,
		Now:     time.Now,
		Sleep:   time.Sleep,
	}
}

// Poll scans all sources at least once and keeps scanning until a key is
// reported or timeout has elapsed. Only one key is returned per call; a key
// held on a second source is picked up by the next call.
func (p *Poller) Poll(timeout time.Duration) Key {
	gap := p.Gap
	if gap <= 0 {
		gap = DefaultGap
	}
	start := p.Now()
	for {
		for _, s := range p.sources {
			if raw := s.GetKey(); raw != 0 {
				return p.aliases.Translate(raw)
			}
		}
		if p.Now().Sub(start) >= timeout {
			return NoKey
		}
		p.Sleep(gap)
	}
}

// SetAliases replaces the translation table. It must not be called while a
// prompt is waiting on the poller.
func (p *Poller) SetAliases(a Aliases) {
	p.aliases = a
}
