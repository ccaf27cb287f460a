package root

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T) func(args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(cfgPath, []byte("# test\nset log_level error\n"), 0o644))
	data := filepath.Join(dir, "data")

	return func(args ...string) (string, error) {
		var buf bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs(append([]string{"--backend", "file", "--data", data, "--config", cfgPath}, args...))
		err := cmd.Execute()
		return buf.String(), err
	}
}

func TestTaskLifecycle(t *testing.T) {
	run := newTestCLI(t)

	out, err := run("task", "add", "Read", "a", "chapter")
	require.NoError(t, err)
	assert.Contains(t, out, "Read a chapter")

	// A fresh week starts with one untitled row, so the new task is second.
	out, err = run("task", "mark", "2", "mon", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Task 2 Mon")
	assert.Contains(t, out, "10 XP")

	out, err = run("week", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "2. Read a chapter")

	_, err = run("task", "rm", "1")
	require.NoError(t, err)
	out, err = run("week", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Read a chapter")

	_, err = run("task", "rm", "5")
	assert.Error(t, err)

	_, err = run("task", "mark", "0", "mon")
	assert.Error(t, err)
}

func TestTrackAndStatus(t *testing.T) {
	run := newTestCLI(t)

	_, err := run("track", "water", "tue")
	require.NoError(t, err)
	_, err = run("track", "mood", "good")
	require.NoError(t, err)
	_, err = run("track", "sleep", "wed", "--bed", "11:00", "--bed-meridiem", "PM", "--wake", "7:00", "--wake-meridiem", "AM")
	require.NoError(t, err)

	_, err = run("track", "fitness", "--type", "run", "--duration", "30")
	require.NoError(t, err)

	_, err = run("track", "mood", "ecstatic")
	assert.Error(t, err)

	out, err := run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "XP:")
	assert.Contains(t, out, "20")

	out, err = run("week", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "good")
	assert.Contains(t, out, "run 30")
}

func TestWeekNavigation(t *testing.T) {
	run := newTestCLI(t)

	out, err := run("week", "goto", "2024-06-12")
	require.NoError(t, err)
	assert.Contains(t, out, "Jun 10 – Jun 16")
	assert.Contains(t, out, "10  11  12  13  14  15  16")

	out, err = run("week", "next")
	require.NoError(t, err)
	assert.Contains(t, out, "Jun 17 – Jun 23")

	out, err = run("week", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-10")
	assert.Contains(t, out, "2024-06-17")

	_, err = run("week", "goto", "June")
	assert.Error(t, err)
}

func TestTemplateList(t *testing.T) {
	run := newTestCLI(t)

	out, err := run("task", "template")
	require.NoError(t, err)
	assert.Contains(t, out, "Morning Routine")

	out, err = run("task", "template", "study", "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "Read 30 min")
}

func TestDBCommand(t *testing.T) {
	run := newTestCLI(t)

	out, err := run("db")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend: file")
	assert.Contains(t, out, string(filepath.Separator)+"data")
}

func TestFocusRecordsSession(t *testing.T) {
	run := newTestCLI(t)

	out, err := run("focus", "--work", "30ms", "--break", "1m", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Session 1 done")
	assert.Contains(t, out, "Sessions: 1")

	out, err = run("week", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Focus: 1")
}
