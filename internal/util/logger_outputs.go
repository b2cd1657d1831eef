package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// outputSet holds the destinations a Logger writes to
type outputSet struct {
	console io.Writer
	file    *os.File
}

// openOutputs opens the log file (creating its directory) and, in debug
// mode, a human readable console writer on stderr.
func openOutputs(logFile string, debugToConsole bool) (*outputSet, error) {
	set := &outputSet{}

	if debugToConsole {
		set.console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
			NoColor:    !ColorEnabled(),
		}
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		set.file = file
	}

	return set, nil
}

// writer combines the configured outputs; with none configured logs are discarded
func (s *outputSet) writer() io.Writer {
	var writers []io.Writer
	if s.console != nil {
		writers = append(writers, s.console)
	}
	if s.file != nil {
		writers = append(writers, s.file)
	}

	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	default:
		return zerolog.MultiLevelWriter(writers...)
	}
}

// Close closes the file output
func (s *outputSet) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}
