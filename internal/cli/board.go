package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/gtd/internal/app"
	"github.com/nhle/gtd/internal/emoji"
	"github.com/nhle/gtd/internal/logging"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/theme"
)

// runBoard starts the full-screen board. The terminal belongs to the UI,
// so logs go to the configured file.
func runBoard(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := model.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := openWith(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}
	defer s.Close()

	theme.Apply(cfg.Display.Theme)

	p := tea.NewProgram(
		app.New(s.state, boardOptions(s)...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}

func boardOptions(s *session) []app.Option {
	opts := []app.Option{
		app.WithLogger(s.logger),
		app.WithHighlight(time.Duration(s.cfg.Display.HighlightMS) * time.Millisecond),
		app.WithShowCompleted(s.cfg.Display.ShowCompleted),
	}
	if s.cfg.Emoji.NativeCommand != "" {
		opts = append(opts, app.WithNativePicker(emoji.NewCommandPicker(s.cfg.Emoji.NativeCommand)))
	}
	return opts
}
