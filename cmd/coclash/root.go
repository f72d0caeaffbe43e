package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coclash/coclash"
)

const version = "0.3.0"

var (
	flagVerbose int
	flagTheme   string
	flagWidth   int
	flagNoColor bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coclash",
		Short: "Clash of Code puzzles in your terminal",
		Long: `coclash fetches Clash of Code puzzles, renders their statements in the
terminal, and runs your solution against the test cases.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flagVerbose)
			return loadConfig()
		},
	}

	pf := cmd.PersistentFlags()
	pf.CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	pf.StringVar(&flagTheme, "theme", "", "statement color theme")
	pf.IntVar(&flagWidth, "width", 0, "output width in columns (0 = detect)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors")

	cmd.AddCommand(
		newShowCmd(),
		newNextCmd(),
		newStatusCmd(),
		newRunCmd(),
		newFetchCmd(),
		newShowTestsCmd(),
		newJSONCmd(),
		newGenerateStubCmd(),
	)
	return cmd
}

func setupLogging(verbosity int) {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// renderOptions resolves width, color and theme from flags, config and the
// terminal, in that order.
func renderOptions() coclash.Options {
	width := flagWidth
	if width == 0 {
		width = cfg.Width
	}
	if width == 0 {
		width = coclash.DetectWidth(os.Stdout.Fd())
	}

	name := flagTheme
	if name == "" {
		name = cfg.Theme
	}
	th, ok := coclash.ThemeByName(name)
	if !ok {
		log.Warn().Str("theme", name).Msg("unknown theme, using default")
		th = coclash.DefaultTheme()
	}

	return coclash.Options{
		Width: width,
		Color: !flagNoColor && coclash.DetectColor(os.Stdout),
		Theme: th,
	}
}

// paint wraps s in the style prefix when color is on.
func paint(s string, st coclash.Style, color bool) string {
	if !color || st.Prefix == "" {
		return s
	}
	return st.Prefix + s + coclash.Reset
}
