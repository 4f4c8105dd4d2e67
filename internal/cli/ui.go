// Package cli provides TUI launch commands.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nnyyxxxx/linutil/internal/config"
	"github.com/nnyyxxxx/linutil/internal/logging"
	"github.com/nnyyxxxx/linutil/internal/theme"
	"github.com/nnyyxxxx/linutil/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the linutil TUI",
	Long:  "Launch the linutil terminal user interface (TUI).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// runTUI is swapped out in tests.
var runTUI = func() error {
	if !canRunTUI() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "linutil --help",
		}
	}

	tuiConfig, closeLog, err := buildTUIConfig(GetConfig())
	if err != nil {
		return err
	}
	defer closeLog()

	tuiConfig.Logger.Info().Str("theme", tuiConfig.Theme.Slug()).Msg("starting tui")
	err = tui.Run(tuiConfig)
	if err != nil {
		tuiConfig.Logger.Error().Err(err).Msg("tui exited with error")
	}
	return err
}

func buildTUIConfig(cfg *config.Config) (tui.Config, func(), error) {
	id, err := theme.Parse(cfg.TUI.Theme)
	if err != nil {
		return tui.Config{}, func() {}, &PreflightError{
			Message:  "unknown theme",
			Hint:     "Valid themes: " + strings.Join(theme.Names(), ", "),
			NextStep: "linutil themes",
			Err:      err,
		}
	}

	logger, closer, err := logging.File(cfg.Logging)
	if err != nil {
		return tui.Config{}, func() {}, err
	}
	return tui.Config{Theme: id, Logger: logger}, func() { _ = closer.Close() }, nil
}

// canRunTUI is false under --non-interactive, LINUTIL_NON_INTERACTIVE, a dumb
// terminal, or when stdin or stdout is not a terminal.
func canRunTUI() bool {
	if nonInteractive {
		return false
	}
	if _, ok := os.LookupEnv("LINUTIL_NON_INTERACTIVE"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
