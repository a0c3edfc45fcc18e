// Package cli wires the gtd command line: the interactive board by
// default, plus a few scriptable subcommands over the same store.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhle/gtd/internal/logging"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/store"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootOptions struct {
	configPath string
}

// NewRootCommand builds the command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "gtd",
		Short: "A keyboard-driven Getting Things Done board for the terminal",
		Long: `gtd organizes to-dos into an inbox, schedule buckets, projects and areas.

Run without a subcommand to open the interactive board.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd, opts)
		},
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", model.DefaultConfigPath(), "path to the config file")

	root.AddCommand(
		newAddCommand(opts),
		newListCommand(opts),
		newDoneCommand(opts),
		newExportCommand(opts),
		newVersionCommand(info),
	)
	return root
}

// Execute runs the command line and reports failures on stderr.
func Execute(info BuildInfo) error {
	if err := NewRootCommand(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// session is an opened store with its state loaded.
type session struct {
	cfg    *model.AppConfig
	state  *state.Manager
	store  *store.SQLiteStore
	logger *log.Logger
}

func (s *session) Close() error {
	return s.store.Close()
}

// openSession loads the config, opens the database and loads the state,
// logging to logOut.
func openSession(ctx context.Context, opts *rootOptions, logOut io.Writer) (*session, error) {
	cfg, err := model.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	return openWith(ctx, cfg, logging.New(logOut, cfg.Log.Level))
}

func openWith(ctx context.Context, cfg *model.AppConfig, logger *log.Logger) (*session, error) {
	st, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	mgr, err := state.Load(ctx, st,
		state.WithLogger(logger),
		state.WithDefaultView(cfg.DefaultViewSelector()),
	)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("loading state: %w", err)
	}
	return &session{cfg: cfg, state: mgr, store: st, logger: logger}, nil
}
