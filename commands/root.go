package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-marks/internal/config"
	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/data/store"
	"github.com/penwyp/go-marks/internal/presentation/layout"
	"github.com/penwyp/go-marks/internal/util"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// Logging related
	debug bool

	// Global overrides, bound onto the config keys of the same name
	configFile string
	storePath  string
	timezone   string
	color      string

	cfg    *config.Config
	clock  util.Clock
	engine *timeline.Engine
	sizer  *layout.Sizer
	logger *util.Logger
}

func newApp() *app {
	return &app{engine: timeline.NewEngine()}
}

// NewRootCmd builds the marks command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marks",
		Short: "Personal time tracking from the command line",
		Long: `marks records a timeline of what you worked on and when.

Each "mark" starts a task; the next mark (or a stop) ends it.

Examples:
  marks init "Client work"                 # Create the timeline document
  marks start Write report --tag docs      # Start a task
  marks stop                               # Stop the active task
  marks continue                           # Pick the stopped task up again
  marks list --today                       # Today's tasks with durations
  marks sum --this-week --tag client       # Weekly totals for a tag
  marks merge laptop.json desk.json --into all.json`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "",
		"Config file (default ~/.config/go-marks/config.toml)")
	flags.StringVarP(&a.storePath, "store", "s", config.DefaultStorePath,
		"Timeline document (.json or .yaml)")
	flags.StringVar(&a.timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	flags.StringVar(&a.color, "color", util.ColorAuto,
		"Colored output (auto, always, never)")
	flags.BoolVar(&a.debug, "debug", false,
		"Enable debug mode")

	rootCmd.AddCommand(
		newInitCmd(a),
		newAddCmd(a),
		newStopCmd(a),
		newContinueCmd(a),
		newResumeCmd(a),
		newAmendCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
		newSumCmd(a),
		newMergeCmd(a),
		newStatusCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// Execute runs the marks CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup resolves configuration and initializes logging and the clock.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// A failed earlier run skips teardown.
	if err := a.teardown(cmd, args); err != nil {
		return err
	}

	loader := config.NewLoader()
	if a.configFile != "" && cmd.Annotations[skipConfigFile] == "" {
		loader.SetConfigFile(expandPath(a.configFile))
	}
	for _, key := range []string{"store", "timezone", "color", "output"} {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	cfg.Store = expandPath(cfg.Store)
	a.cfg = cfg

	// Determine log level based on debug flag
	logLevel := cfg.LogLevel
	if a.debug {
		logLevel = "debug"
	}
	util.SetColorMode(cfg.Color)

	logger, err := util.NewLogger(logLevel, cfg.LogFile, a.debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	a.logger = logger
	util.SetLogger(logger)

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return err
	}
	if a.clock == nil {
		a.clock = util.GetTimeProvider()
	}
	if a.sizer == nil {
		a.sizer = layout.NewSizer(0)
	}

	util.LogDebug("configuration loaded",
		util.F("config", loader.ConfigFileUsed()),
		util.F("store", cfg.Store),
		util.F("timezone", cfg.Timezone))
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.logger == nil {
		return nil
	}
	util.SetLogger(nil)
	err := a.logger.Close()
	a.logger = nil
	return err
}

func (a *app) now() time.Time {
	return a.clock.Now()
}

func (a *app) store() *store.Store {
	return store.New(a.cfg.Store, a.clock.Location())
}

// load reads the configured timeline, pointing at `marks init` when the
// document does not exist yet.
func (a *app) load() (*store.Store, *model.Timeline, error) {
	st := a.store()
	tl, err := st.Load()
	if err != nil {
		if store.IsNotExist(err) {
			return nil, nil, fmt.Errorf("no timeline at %s, run `marks init NAME` first", st.Path)
		}
		return nil, nil, err
	}
	return st, tl, nil
}

// mutate applies one lifecycle command and saves the timeline unless the
// command turned out to be a no-op.
func (a *app) mutate(out io.Writer, command timeline.Command) (timeline.Result, error) {
	st, tl, err := a.load()
	if err != nil {
		return timeline.Result{}, err
	}

	result, err := a.engine.Apply(tl, command, a.now())
	if err != nil {
		return timeline.Result{}, err
	}

	if !result.Noop {
		if err := st.Save(tl); err != nil {
			return result, err
		}
		util.LogInfo("timeline updated", util.F("command", string(command.Kind)), util.F("marks", tl.Len()))
	}

	printResult(out, result)
	return result, nil
}

func printResult(out io.Writer, r timeline.Result) {
	msg := capitalize(r.Message)
	if r.Noop || len(r.Marks) == 0 || r.Kind == timeline.CommandDelete {
		fmt.Fprintln(out, msg)
		return
	}
	m := r.Marks[0]
	fmt.Fprintf(out, "%s [%s %s]\n", msg, util.Colorize(m.ShortID(), util.ColorCyan), m.Time.Format("2006-01-02 15:04:05"))
}

// parseAt parses an optional time flag against now.
func parseAt(value string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := util.ParseTimeArg(value, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Helper functions

func expandPath(path string) string {
	path = config.ExpandTilde(path)
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
