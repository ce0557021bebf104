package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fll-tools/teamgen/internal/config"
	"github.com/fll-tools/teamgen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	warnMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CD37")).Render("⚠")
	errorMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D01012")).Render("✗")
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0055BF"))
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "teamgen",
		Short: "Page toolkit for the FLL Team Name Generator",
		Long: `teamgen hosts the FLL Team Name Generator page in memory.

It loads the page, installs the notification helper and lets you:

  • Render the page after showing a notification
  • Escape text the way the page does before inserting it
  • Print the notification stylesheet
  • Preview a notification in the terminal`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: teamgen.json, teamgen.yaml or teamgen.yml if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(
		renderCmd(a),
		sanitizeCmd(),
		stylesCmd(a),
		previewCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// setup loads the config and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if _, err := config.ParseLevel(a.logLevel); err != nil {
			return err
		}
		cfg.Log.Level = a.logLevel
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	if path := cfg.Path(); path != "" {
		a.logger.Debug("config loaded", "path", path)
	}
	return nil
}

// printError writes err to w, formatted when it is a coded error.
func printError(w io.Writer, err error) {
	var coded *errors.Error
	if errors.As(err, &coded) {
		fmt.Fprint(w, coded.Format())
		return
	}
	errorMsg(w, "%s", err)
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnMark, fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", errorMark, fmt.Sprintf(format, args...))
}
