package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nhle/gtd/internal/model"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := model.DefaultAppConfig()
	cfg.Storage.Path = filepath.Join(dir, "gtd.db")
	cfg.Log.Path = filepath.Join(dir, "gtd.log")
	cfg.Log.Level = "error"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, model.SaveConfig(path, cfg))
	return path
}

func run(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-10-01"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, writeConfig(t), "version")
	require.NoError(t, err)
	assert.Equal(t, "gtd 1.2.3 (commit abc123, built 2026-10-01)\n", out)
}

func TestAddThenList(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "add", "Buy", "milk", "--view", "today")
	require.NoError(t, err)
	assert.Contains(t, out, `"Buy milk" to Today`)

	out, err = run(t, cfg, "list", "--view", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Pick up dry cleaning", "seed data is installed on first run")
	assert.Contains(t, out, "[ ]")
}

func TestAddRejectsUnknownView(t *testing.T) {
	_, err := run(t, writeConfig(t), "add", "Buy milk", "--view", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown view "tomorrow"`)
}

func TestAddIntoProject(t *testing.T) {
	cfg := writeConfig(t)
	snap := exportJSON(t, cfg)
	var website model.Project
	for _, p := range snap.Projects {
		if p.Name == "Launch website" {
			website = p
		}
	}
	require.NotEmpty(t, website.ID)

	out, err := run(t, cfg, "add", "Write FAQ", "--project", website.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "to Launch website")

	out, err = run(t, cfg, "list", "--view", "project:"+website.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Write FAQ")
}

func TestDoneMovesTaskToLogbook(t *testing.T) {
	cfg := writeConfig(t)
	out, err := run(t, cfg, "add", "Buy milk", "--view", "today")
	require.NoError(t, err)
	id := strings.Fields(out)[1]

	out, err = run(t, cfg, "done", id)
	require.NoError(t, err)
	assert.Equal(t, "Completed \"Buy milk\"\n", out)

	out, err = run(t, cfg, "done", id)
	require.NoError(t, err)
	assert.Contains(t, out, "already done")

	out, err = run(t, cfg, "list", "--view", "logbook")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Buy milk")
}

func TestDoneUnknownTask(t *testing.T) {
	_, err := run(t, writeConfig(t), "done", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func exportJSON(t *testing.T, cfg string) model.Snapshot {
	t.Helper()
	out, err := run(t, cfg, "export")
	require.NoError(t, err)
	var snap model.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	return snap
}

func TestExportFormats(t *testing.T) {
	cfg := writeConfig(t)

	snap := exportJSON(t, cfg)
	assert.Len(t, snap.Areas, 2)
	assert.Len(t, snap.Projects, 3)
	assert.Len(t, snap.Tasks, 16)

	out, err := run(t, cfg, "export", "--format", "yaml")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "tasks")
	assert.Contains(t, doc, "preferences")

	_, err = run(t, cfg, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestListBuckets(t *testing.T) {
	cfg := writeConfig(t)
	out, err := run(t, cfg, "list", "--view", "next_week")
	require.NoError(t, err)
	assert.Contains(t, out, "Renew passport")

	out, err = run(t, cfg, "list", "--view", "someday")
	require.NoError(t, err)
	assert.Contains(t, out, "Learn to juggle")
	assert.NotContains(t, out, "Renew passport")
}
