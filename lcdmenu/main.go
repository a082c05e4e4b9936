//go:build tinygo

// Lcdmenu runs the demo menu on a Raspberry Pi Pico with a 20x4 HD44780 LCD
// on an I2C backpack, six push buttons and a potentiometer.
//
// Wiring:
//
//	I2C0 SDA GP4, SCL GP5     LCD backpack at 0x27 or 0x3F
//	UART1 TX GP8              serial LCD backpack, used when no I2C LCD answers
//	GP16-GP20, GP22           Up, Down, Left, Right, Enter, Escape to ground
//	ADC0 (GP26)               potentiometer wiper, scrolls like Up/Down
//	GP15                      backlight LED (PWM), follows the Brightness setting
//	GP21                      heartbeat LED
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/lcdprompt/demo"
	"github.com/harveysanders/lcdprompt/keypad"
	"github.com/harveysanders/lcdprompt/lcd"
	"github.com/harveysanders/lcdprompt/prompt"
)

const (
	width  = 20
	height = 4
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// The only other goroutine; it touches nothing but its LED.
	go heartbeat(machine.GP21)

	display := configureDisplay(logger)
	keys := keypad.NewPoller(keypad.DefaultAliases, configureButtons(), configureKnob())

	ui, err := prompt.New(prompt.Config{
		Display: display,
		Keys:    keys,
		Width:   width,
		Height:  height,
		Logger:  logger,
	})
	if err != nil {
		printErrForever(logger, "configure menu", slog.Any("reason", err))
	}

	backlight, err := newBacklight(machine.GP15)
	if err != nil {
		logger.Warn("backlight disabled", slog.Any("reason", err))
	}

	settings := demo.Defaults()
	menu := demo.New(ui, settings)
	menu.OnChange = func(s *demo.Settings) {
		if backlight != nil {
			backlight.Set(s.Brightness)
		}
	}
	menu.OnChange(settings)
	for {
		menu.Run()
		ui.OK("Bye! Any key to restart.")
	}
}

// configureDisplay returns the I2C LCD if one answers, otherwise a serial
// backpack on UART1.
func configureDisplay(logger *slog.Logger) lcd.Display {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		printErrForever(logger, "configure I2C", slog.Any("reason", err))
	}

	dev, err := lcd.Probe(machine.I2C0, width, height)
	if err == nil {
		logger.Info("display:i2c")
		return lcd.NewHD44780(dev, width, height)
	}
	logger.Warn("display:serial", slog.Any("reason", err))

	uart := machine.UART1
	err = uart.Configure(machine.UARTConfig{BaudRate: 9600, TX: machine.GP8, RX: machine.GP9})
	if err != nil {
		printErrForever(logger, "configure UART", slog.Any("reason", err))
	}
	return lcd.NewSerial(uart)
}

func configureButtons() *keypad.Buttons {
	wiring := []struct {
		pin  machine.Pin
		char byte
	}{
		{machine.GP16, 'U'},
		{machine.GP17, 'D'},
		{machine.GP18, 'L'},
		{machine.GP19, 'R'},
		{machine.GP20, '#'},
		{machine.GP22, '*'},
	}
	b := &keypad.Buttons{ActiveLow: true}
	for _, w := range wiring {
		w.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		b.Keys = append(b.Keys, keypad.Button{Pin: w.pin, Char: w.char})
	}
	b.RepeatDelay = 400 * time.Millisecond
	b.RepeatRate = 150 * time.Millisecond
	return b
}

func configureKnob() *keypad.Knob {
	machine.InitADC()
	sensor := machine.ADC{Pin: machine.ADC0}
	sensor.Configure(machine.ADCConfig{})
	return &keypad.Knob{ADC: sensor, Detents: keypad.DefaultDetents}
}

// heartbeat blinks led at 1Hz so a hung menu loop is visible.
func heartbeat(led machine.Pin) {
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(500 * time.Millisecond)
		led.Low()
		time.Sleep(500 * time.Millisecond)
	}
}

// printErrForever logs msg at 1Hz. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
