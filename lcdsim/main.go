// Lcdsim runs the demo menu against a simulated character LCD in the
// terminal.
//
// The display is drawn as a bordered frame; the arrow keys, Return, Escape
// and Backspace drive it and every other printable key is passed through.
// Ctrl-C quits.
//
// Usage:
//
//	lcdsim [--config lcdsim.yaml] [--width 16 --height 2] [--log-level debug]
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/harveysanders/lcdprompt/demo"
	"github.com/harveysanders/lcdprompt/keypad"
	"github.com/harveysanders/lcdprompt/lcd"
	"github.com/harveysanders/lcdprompt/prompt"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var flags struct {
	config   string
	width    int
	height   int
	logLevel string
	logFile  string
}

var rootCmd = &cobra.Command{
	Use:   "lcdsim",
	Short: "Character LCD menu simulator",
	Long: `Runs the lcdprompt demo menu on a simulated character LCD.

Arrow keys move, Return accepts, Escape goes back, Backspace erases and
digits pick menu entries. Ctrl-C quits.`,
	Version:      version(),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.Width = flags.width
		}
		if cmd.Flags().Changed("height") {
			cfg.Height = flags.height
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = flags.logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = flags.logFile
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVarP(&flags.config, "config", "c", "", "YAML config file")
	rootCmd.Flags().IntVar(&flags.width, "width", lcd.MaxColumns, "display columns")
	rootCmd.Flags().IntVar(&flags.height, "height", lcd.MaxRows, "display rows")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error; empty disables logging")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "lcdsim.log", "log file")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lcdsim %s\n", version())
	},
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "dev"
	}
	return info.Main.Version
}

var errNotTerminal = errors.New("stdin is not a terminal")

func run(cfg Config) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	sinks, err := openLogs(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer sinks.Close()
	log := sinks.zap

	grid := lcd.NewGrid(cfg.Width, cfg.Height)
	con := newConsole(grid, os.Stdout, fmt.Sprintf("%dx%d  ctrl-c quits", cfg.Width, cfg.Height), log)

	uiCfg := cfg.UIConfig()
	uiCfg.Display = grid
	uiCfg.Keys = keypad.NewPoller(cfg.KeyAliases(), con)
	uiCfg.Logger = sinks.slog
	ui, err := prompt.New(uiCfg)
	if err != nil {
		return err
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, old); err != nil {
			log.Warn("restore terminal", zap.Error(err))
		}
		fmt.Print("\x1b[?25h")
	}()
	fmt.Print("\x1b[?25l") // hide the terminal's own cursor

	log.Info("started", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	go con.readFrom(os.Stdin)

	done := make(chan struct{})
	go func() {
		defer close(done)
		demo.New(ui, demo.Defaults()).Run()
	}()

	select {
	case <-done:
		log.Info("menu closed")
	case <-con.Quit():
		log.Info("interrupted")
	}
	return nil
}
