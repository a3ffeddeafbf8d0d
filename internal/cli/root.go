// Package cli wires the deckhand commands.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"deckhand/internal/deck"
)

// version is set at build time via ldflags.
var version = "dev"

// Setting keys, also accepted as DECKHAND_* environment variables.
const (
	keyDeck      = "deck"
	keyStore     = "store"
	keyExportDir = "export-dir"
	keyLogFile   = "log-file"
)

// DefaultLogFile is written in the working directory unless --log-file says
// otherwise.
const DefaultLogFile = "deckhand.log"

// app carries the settings and shared resources of one invocation
type app struct {
	v       *viper.Viper
	out     io.Writer
	logFile *os.File
}

// NewRootCommand builds the command tree. Running it without a subcommand
// presents the deck.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "deckhand",
		Short: "Run timed workshop slides in the terminal",
		Long: `deckhand presents a deck of slides with per-slide countdown timers,
collects the answers typed in during the session, and exports the marketing
clinic answers as a paginated report.

The deck is read from .deckhand.toml in the working directory unless --deck
names another TOML or YAML file. Settings may also come from DECKHAND_*
environment variables.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			return a.setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.closeLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.present(cmd.Context(), args)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyDeck, "", "deck file (default ./.deckhand.toml)")
	flags.String(keyStore, "", "field store database (default: user config dir)")
	flags.String(keyExportDir, "", "directory for exported reports (default ./reports)")
	flags.String(keyLogFile, DefaultLogFile, "log file")

	for _, key := range []string{keyDeck, keyStore, keyExportDir, keyLogFile} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}
	a.v.SetEnvPrefix("DECKHAND")
	a.v.SetEnvKeyReplacer(envKeyReplacer)
	a.v.AutomaticEnv()

	root.AddCommand(
		a.presentCommand(),
		a.initCommand(),
		a.exportCommand(),
		a.fieldsCommand(),
		versionCommand(),
	)
	return root
}

// Execute runs the command line and returns the process exit code. A deck
// that cannot be presented exits with 2.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if deck.IsConfigError(err) {
			return 2
		}
		return 1
	}
	return 0
}

// setupLogging redirects the standard logger to the log file
func (a *app) setupLogging() error {
	path := a.v.GetString(keyLogFile)
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return nil
	}
	a.logFile = f
	log.SetOutput(f)
	return nil
}

func (a *app) closeLogging() {
	if a.logFile == nil {
		return
	}
	log.SetOutput(os.Stderr)
	_ = a.logFile.Close()
	a.logFile = nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of deckhand",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deckhand %s\n", version)
		},
	}
}
