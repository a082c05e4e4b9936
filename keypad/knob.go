package keypad

// ADC is an analog input. machine.ADC satisfies it on TinyGo targets; values
// span the full 16-bit range.
type ADC interface {
	Get() uint16
}

// DefaultDetents is the number of knob positions when Knob.Detents is zero.
const DefaultDetents = 16

// Knob is a Source that turns a potentiometer into Up and Down presses. The
// full travel is split into Detents positions; moving clockwise by one
// position reports Down, counter-clockwise reports Up. A quarter position of
// hysteresis keeps a wiper resting on a boundary from chattering.
type Knob struct {
	ADC     ADC
	Detents int

	pos    int
	primed bool
}

// GetKey reports at most one position change per call, so a fast turn is
// delivered as a run of presses over consecutive polls.
func (k *Knob) GetKey() byte {
	detents := k.Detents
	if detents <= 0 {
		detents = DefaultDetents
	}
	step := 65536 / detents
	v := int(k.ADC.Get())
	if !k.primed {
		k.pos = v / step
		k.primed = true
		return 0
	}
	switch {
	case k.pos < detents-1 && v >= (k.pos+1)*step+step/4:
		k.pos++
		return byte(Down)
	case k.pos > 0 && v < k.pos*step-step/4:
		k.pos--
		return byte(Up)
	}
	return 0
}
