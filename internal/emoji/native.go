package emoji

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnavailable means no native picker could deliver an emoji. Callers
// fall back to the catalog overlay.
var ErrUnavailable = errors.New("native emoji picker unavailable")

// NativePicker asks the desktop for an emoji. Open blocks until the user
// picks one or dismisses the picker.
type NativePicker interface {
	Open(ctx context.Context) (string, error)
}

// CommandPicker runs an external picker program (rofi, wofi, a macOS
// helper) and reads the chosen emoji from its standard output.
type CommandPicker struct {
	// Command is a shell command line, so quoting and pipes work as typed.
	Command string
}

// NewCommandPicker wraps a configured command line. It returns nil when the
// command line is blank.
func NewCommandPicker(cmdline string) *CommandPicker {
	cmdline = strings.TrimSpace(cmdline)
	if cmdline == "" {
		return nil
	}
	return &CommandPicker{Command: cmdline}
}

// Open runs the command through sh. A failed run, or one that prints
// nothing, yields ErrUnavailable.
func (p *CommandPicker) Open(ctx context.Context) (string, error) {
	if p == nil || p.Command == "" {
		return "", ErrUnavailable
	}
	out, err := exec.CommandContext(ctx, "sh", "-c", p.Command).Output()
	if err != nil {
		return "", fmt.Errorf("running %q: %w: %w", p.Command, ErrUnavailable, err)
	}
	line, _, _ := strings.Cut(string(out), "\n")
	if line = strings.TrimSpace(line); line == "" {
		return "", ErrUnavailable
	}
	return line, nil
}
