// Package cli implements the linutil command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nnyyxxxx/linutil/internal/config"
	"github.com/nnyyxxxx/linutil/internal/logging"
	"github.com/nnyyxxxx/linutil/internal/theme"
)

var (
	cfgFile        string
	nonInteractive bool
	jsonOutput     bool

	v         = viper.New()
	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "linutil",
	Short:         "Linux toolbox with a themeable terminal UI",
	Long:          "linutil is a terminal toolbox for setting up and maintaining Linux systems.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: <user config dir>/linutil/config.yaml)")
	flags.StringP("theme", "t", "", fmt.Sprintf("startup theme (%s)", strings.Join(theme.Names(), ", ")))
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file")
	flags.Bool("no-color", false, "disable colors")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the TUI")
	flags.BoolVar(&jsonOutput, "json", false, "print machine-readable JSON where supported")

	mustBind("tui.theme", "theme")
	mustBind("logging.level", "log-level")
	mustBind("logging.file", "log-file")
	mustBind("tui.no_color", "no-color")
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

func initConfig() error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg
	applyColorProfile(cfg.TUI.NoColor)

	logger, err = logging.Console(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("config", v.ConfigFileUsed()).
		Str("theme", cfg.TUI.Theme).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

func applyColorProfile(disabled bool) {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		disabled = true
	}
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func printError(out io.Writer, err error) {
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		fmt.Fprintln(out, "Error:", preflight.Message)
		if preflight.Hint != "" {
			fmt.Fprintln(out, "Hint:", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintln(out, "Try:", preflight.NextStep)
		}
		return
	}
	fmt.Fprintln(out, "Error:", err)
}
