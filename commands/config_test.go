package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitAndShow(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("config", "init")
	path := filepath.Join(env.home, "xdg", "go-marks", "config.toml")
	assert.Equal(t, "Wrote "+path+"\n", out)
	assert.FileExists(t, path)

	_, err := env.run("config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	env.mustRun("config", "init", "--force")

	out = env.mustRun("config", "show")
	assert.Contains(t, out, "store = '"+env.store+"'")
	assert.Contains(t, out, "output = 'table'")
	assert.Contains(t, out, "week_start = 'monday'")
}

func TestConfigInitExplicitPath(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "custom.toml")

	out := env.mustRun("--config="+path, "config", "init")
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	out = env.mustRun("--config="+path, "--timezone=UTC", "config", "show")
	assert.Contains(t, out, "timezone = 'UTC'")
}
