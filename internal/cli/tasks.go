package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/view"
)

func parseViewFlag(s string) (model.ViewSelector, error) {
	v, ok := model.ParseView(s)
	if !ok {
		return model.ViewSelector{}, fmt.Errorf("unknown view %q (inbox, today, this_week, next_week, anytime, someday, logbook or project:<id>)", s)
	}
	return v, nil
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	var viewFlag, projectID string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a to-do",
		Example: `  gtd add "Buy milk" --view today
  gtd add "Draft outline" --project 2f1c...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			where, err := parseViewFlag(viewFlag)
			if err != nil {
				return err
			}
			if projectID != "" {
				where = model.ProjectView(projectID)
			}

			s, err := openSession(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			t, err := s.state.CreateTask(cmd.Context(), state.NewTask{Title: strings.Join(args, " ")}, where)
			if err != nil {
				return fmt.Errorf("adding task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q to %s\n", t.ID, t.Title, viewTitle(s.state.Snapshot(), where))
			return nil
		},
	}
	cmd.Flags().StringVar(&viewFlag, "view", string(model.ViewKindInbox), "view the task is created in")
	cmd.Flags().StringVar(&projectID, "project", "", "project to file the task under")
	return cmd
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var viewFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the to-dos of a view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			sel := s.cfg.DefaultViewSelector()
			if viewFlag != "" {
				if sel, err = parseViewFlag(viewFlag); err != nil {
					return err
				}
			}

			snap := s.state.Snapshot()
			res := view.Filter(snap.Tasks, sel, snap.Preferences)
			tasks := slices.Concat(res.Tasks, res.Completed)
			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintf(out, "%s is empty.\n", viewTitle(snap, sel))
				return nil
			}
			fmt.Fprintln(out, renderTasks(snap, tasks, time.Now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&viewFlag, "view", "", "view to list (defaults to display.default_view)")
	return cmd
}

func newDoneCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a to-do as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			t, ok := findTask(s.state.Snapshot(), id)
			if !ok {
				return fmt.Errorf("task %s: %w", id, state.ErrNotFound)
			}
			if t.Status == model.TaskStatusCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is already done\n", t.Title)
				return nil
			}
			if err := s.state.ToggleComplete(cmd.Context(), id); err != nil {
				if errors.Is(err, state.ErrInvalid) {
					return fmt.Errorf("task %s cannot be completed: %w", id, err)
				}
				return fmt.Errorf("completing task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %q\n", t.Title)
			return nil
		},
	}
}

func findTask(snap model.Snapshot, id string) (model.Task, bool) {
	for _, t := range snap.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func viewTitle(snap model.Snapshot, v model.ViewSelector) string {
	if v.Kind == model.ViewKindProject {
		for _, p := range snap.Projects {
			if p.ID == v.ProjectID {
				return p.Name
			}
		}
	}
	return v.Title()
}

// renderTasks lays tasks out as a borderless table.
func renderTasks(snap model.Snapshot, tasks []model.Task, now time.Time) string {
	projects := make(map[string]string, len(snap.Projects))
	for _, p := range snap.Projects {
		projects[p.ID] = p.Name
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		check := "[ ]"
		switch t.Status {
		case model.TaskStatusCompleted:
			check = "[x]"
		case model.TaskStatusCancelled:
			check = "[-]"
		}
		title := t.Title
		if t.Emoji != "" {
			title = t.Emoji + " " + title
		}
		where := t.Schedule.Label()
		if t.ProjectID != nil {
			where = projects[*t.ProjectID]
		}
		due := ""
		if t.Deadline != nil {
			due = humanize.Time(*t.Deadline)
			if t.IsOverdue(now) {
				due += " (overdue)"
			}
		}
		rows = append(rows, []string{t.ID, check, title, where, due})
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers("ID", "", "TITLE", "WHERE", "DUE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(1)
			}
			return lipgloss.NewStyle().PaddingRight(1)
		}).
		Rows(rows...).
		Render()
}
