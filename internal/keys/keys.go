package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down  key.Binding
	Up    key.Binding
	Open  key.Binding
	Focus key.Binding

	// Views
	Inbox        key.Binding
	Today        key.Binding
	ThisWeek     key.Binding
	NextWeek     key.Binding
	Anytime      key.Binding
	Someday      key.Binding
	Logbook      key.Binding
	FirstProject key.Binding

	// Create
	NewTask    key.Binding
	NewProject key.Binding
	NewArea    key.Binding
	NewHeading key.Binding

	// Overlays
	Search key.Binding
	Help   key.Binding
	Tags   key.Binding
	Back   key.Binding
	Quit   key.Binding

	// Task actions
	Complete      key.Binding
	Cancel        key.Binding
	Delete        key.Binding
	Edit          key.Binding
	Emoji         key.Binding
	CycleSort     key.Binding
	Grab          key.Binding
	Drop          key.Binding
	GrabDown      key.Binding
	GrabUp        key.Binding
	MoveTo        key.Binding
	Promote       key.Binding
	ToggleClosed  key.Binding
	EditProject   key.Binding
	DeleteProject key.Binding

	// Schedule
	ScheduleToday    key.Binding
	ScheduleThisWeek key.Binding
	ScheduleNextWeek key.Binding
	ScheduleAnytime  key.Binding
	ScheduleSomeday  key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sidebar/list"),
		),
		Inbox: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "inbox"),
		),
		Today: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "today"),
		),
		ThisWeek: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "this week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "next week"),
		),
		Anytime: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "anytime"),
		),
		Someday: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "someday"),
		),
		Logbook: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "logbook"),
		),
		FirstProject: key.NewBinding(
			key.WithKeys("8"),
			key.WithHelp("8", "first project"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		NewProject: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new project"),
		),
		NewArea: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "new area"),
		),
		NewHeading: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "new heading"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+k", "/"),
			key.WithHelp("ctrl+k", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Tags: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "tags"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "complete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "cancel task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Emoji: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "emoji"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "grab"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "drop"),
		),
		GrabDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move down"),
		),
		GrabUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move up"),
		),
		MoveTo: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to"),
		),
		Promote: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "to project"),
		),
		ToggleClosed: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "show completed"),
		),
		EditProject: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "edit project"),
		),
		DeleteProject: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete project/area"),
		),
		ScheduleToday: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		ScheduleThisWeek: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "this week"),
		),
		ScheduleNextWeek: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "next week"),
		),
		ScheduleAnytime: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "anytime"),
		),
		ScheduleSomeday: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "someday"),
		),
	}
}

// Views returns the view-switching bindings in key order.
func (k *KeyMap) Views() []key.Binding {
	return []key.Binding{
		k.Inbox, k.Today, k.ThisWeek, k.NextWeek,
		k.Anytime, k.Someday, k.Logbook, k.FirstProject,
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.NewTask, k.Complete, k.Edit, k.Grab,
		k.Search, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Focus, k.Back, k.Quit},
		k.Views(),
		{k.NewTask, k.NewProject, k.NewArea, k.NewHeading, k.Search, k.Tags, k.Help},
		{k.Complete, k.Cancel, k.Delete, k.Edit, k.Emoji, k.MoveTo, k.Promote},
		{k.Grab, k.GrabUp, k.GrabDown, k.Drop, k.CycleSort, k.ToggleClosed},
		{k.ScheduleToday, k.ScheduleThisWeek, k.ScheduleNextWeek, k.ScheduleAnytime, k.ScheduleSomeday},
		{k.EditProject, k.DeleteProject},
	}
}
