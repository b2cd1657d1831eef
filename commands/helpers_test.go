package commands

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/presentation/layout"
	"github.com/penwyp/go-marks/internal/util"
)

var day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func clockAt(hh, mm int) util.Clock {
	return util.FixedClock{T: day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)}
}

// testEnv runs marks commands against a store in a temporary home.
type testEnv struct {
	t     *testing.T
	app   *app
	home  string
	store string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))

	n := 0
	a := newApp()
	a.engine = timeline.NewEngineWithIDs(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	a.sizer = layout.NewSizer(120)
	a.clock = clockAt(9, 0)

	return &testEnv{t: t, app: a, home: home, store: filepath.Join(home, "marks.json")}
}

func (e *testEnv) at(hh, mm int) *testEnv {
	e.app.clock = clockAt(hh, mm)
	return e
}

// run executes one marks invocation with the test store.
func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	cmd := newRootCmd(e.app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--store=" + e.store, "--color=never"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	if err != nil {
		e.t.Fatalf("marks %v: %v\n%s", args, err, out)
	}
	return out
}
