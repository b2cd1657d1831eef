package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(string) string
	}{
		{
			name:  "home directory expansion",
			input: "~/test/path",
			expected: func(home string) string {
				return filepath.Join(home, "test/path")
			},
		},
		{
			name:  "absolute path unchanged",
			input: "/absolute/path",
			expected: func(home string) string {
				return "/absolute/path"
			},
		},
		{
			name:  "relative path converted to absolute",
			input: "relative/path",
			expected: func(home string) string {
				abs, _ := filepath.Abs("relative/path")
				return abs
			},
		},
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected(home), expandPath(tt.input))
		})
	}
}

func TestParseAt(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	got, err := parseAt("", now)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseAt("-15m", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-15*time.Minute), *got)

	got, err = parseAt("08:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), *got)

	_, err = parseAt("half past nine", now)
	assert.Error(t, err)
}

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		flagName string
		expected string
	}{
		{"config", ""},
		{"store", "~/.go-marks/marks.json"},
		{"timezone", "Local"},
		{"color", "auto"},
		{"debug", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.flagName)
			require.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			assert.Equal(t, tt.expected, flag.DefValue)
		})
	}

	for _, name := range []string{"init", "add", "stop", "continue", "resume", "amend", "delete", "list", "sum", "merge", "status", "config"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	start, _, err := cmd.Find([]string{"start"})
	require.NoError(t, err)
	assert.Equal(t, "add", start.Name())
}

func TestCommandsNeedInitializedStore(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marks init")
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("init", "Client", "work")
	assert.Contains(t, out, `Initialized timeline "Client work"`)
	assert.FileExists(t, env.store)

	_, err := env.run("init", "Again")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out = env.mustRun("init", "Again", "--force")
	assert.Contains(t, out, `"Again"`)

	_, err = env.run("init", " ", "--force")
	assert.Error(t, err)
}

func TestDebugFlagLogsToFile(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("init", "Work")
	env.mustRun("--debug", "status")

	data, err := os.ReadFile(filepath.Join(env.home, ".go-marks", "logs", "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "configuration loaded")
}
