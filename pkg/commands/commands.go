package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

// env is the state shared by every command: the loaded config, the logger
// and the lazily opened journal.
type env struct {
	configFile string
	logLevel   string
	backend    string
	ephemeral  bool

	cfg     *store.FileConfig
	log     *slog.Logger
	kv      store.KV
	journal *journal.Journal
}

func New() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: options.Wrap80("Track a daily score, notes, tasks and wellness habits on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return e.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&e.configFile, "config", "",
		"Config file, default is .daybook.yaml in $DAYBOOK_CONFIG_PATH, ./ or $HOME.")
	cmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "",
		"Log level: debug, info, warn or error. Overrides log_level from config.")
	cmd.PersistentFlags().StringVar(&e.backend, "backend", "",
		"Storage backend: diskv, sqlite or memory. Overrides backend from config.")
	cmd.PersistentFlags().BoolVar(&e.ephemeral, "ephemeral", false,
		"Keep everything in memory for this run.")

	addCommands(cmd, e)
	return cmd
}

func addCommands(topLevel *cobra.Command, e *env) {
	addShow(topLevel, e)
	addScore(topLevel, e)
	addNote(topLevel, e)
	addToggle(topLevel, e)
	addLists(topLevel, e)
	addMonth(topLevel, e)
	addReport(topLevel, e)
	addExport(topLevel, e)
	addImport(topLevel, e)
	addInfo(topLevel, e)
	addUI(topLevel, e)
	addMCP(topLevel, e)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := store.LoadConfig(e.configFile)
	if err != nil {
		return err
	}
	if e.backend != "" {
		cfg.Kind = e.backend
	}
	if e.ephemeral {
		cfg.Kind = store.BackendMemory
	}
	e.cfg = cfg

	level := cfg.LogLevel
	if e.logLevel != "" {
		level = e.logLevel
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	e.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(e.log)

	printers.DetectColor()
	return nil
}

// open returns the journal, opening the store on first use.
func (e *env) open() (*journal.Journal, error) {
	if e.journal != nil {
		return e.journal, nil
	}
	kv, err := store.Open(e.cfg)
	if err != nil {
		return nil, err
	}
	e.log.Debug("opened store", "backend", e.cfg.Backend(), "path", e.cfg.BasePath())

	opts := []journal.Option{
		journal.WithLogger(e.log),
		journal.WithDefaults(e.cfg.DefaultTasks, e.cfg.DefaultWellness),
	}
	if len(e.cfg.Quotes) > 0 {
		opts = append(opts, journal.WithQuotes(quote.NewPool(e.cfg.Quotes)))
	}
	e.kv = kv
	e.journal = journal.Open(kv, opts...)
	return e.journal, nil
}

func (e *env) close() error {
	if e.kv == nil {
		return nil
	}
	err := e.kv.Close()
	e.kv = nil
	e.journal = nil
	return err
}
