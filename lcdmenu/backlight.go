//go:build tinygo

package main

import (
	"machine"
	"time"
)

// pwmGroup is the method set of the rp2040 PWM slices.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// backlight drives an LED from a PWM channel with a 0-100 level.
type backlight struct {
	pwm pwmGroup
	ch  uint8
}

// https://tinygo.org/docs/reference/microcontrollers/pico2-w/
// GP15 is on PWM7.
func newBacklight(pin machine.Pin) (*backlight, error) {
	var pwm pwmGroup = machine.PWM7
	err := pwm.Configure(machine.PWMConfig{
		// 500hz
		Period: uint64(1*time.Second) / 500,
	})
	if err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	return &backlight{pwm: pwm, ch: ch}, nil
}

// Set changes the duty cycle to level percent.
func (b *backlight) Set(level int) {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	b.pwm.Set(b.ch, b.pwm.Top()*uint32(level)/100)
}
