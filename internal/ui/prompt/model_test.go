package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputResultTrimsValue(t *testing.T) {
	m := New(80, 20)
	m.StartInput(Purpose{Action: "rename-area", ID: "a-1"}, "Area name", "Work", "Work")
	m.fb.value = "  Home  "

	msg := m.result()()
	require.IsType(t, SubmittedMsg{}, msg)
	out := msg.(SubmittedMsg)
	assert.Equal(t, Purpose{Action: "rename-area", ID: "a-1"}, out.Purpose)
	assert.Equal(t, "Home", out.Value)
}

func TestConfirmDeclinedCancels(t *testing.T) {
	m := New(80, 20)
	m.StartConfirm(Purpose{Action: "delete-project", ID: "p-1"}, "Delete?", "")

	assert.Equal(t, CancelMsg{}, m.result()())

	m.fb.confirm = true
	out, ok := m.result()().(SubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "p-1", out.Purpose.ID)
}

func TestStartResetsValues(t *testing.T) {
	m := New(80, 20)
	m.StartConfirm(Purpose{Action: "a"}, "Delete?", "")
	m.fb.confirm = true

	m.StartInput(Purpose{Action: "b"}, "Name", "", "")
	assert.False(t, m.fb.confirm)
	assert.Equal(t, "b", m.Purpose().Action)
	assert.NotEmpty(t, m.View())
}
