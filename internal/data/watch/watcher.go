// Package watch reports changes to a timeline document on disk.
package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-marks/internal/util"
)

// Event is a content change of the watched file.
type Event struct {
	Path        string
	Operation   string
	Fingerprint string
}

// FileWatcher watches a single file. It watches the parent directory so the
// write-to-temp-then-rename pattern used by the store is seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan Event
	last    string
	info    *util.FileInfo
	done    chan struct{}
}

// NewFileWatcher starts watching path.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		path:    abs,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	// A missing file is fine, the first write is then reported.
	fw.last, _ = util.CalculateFileFingerprint(abs)
	fw.info, _ = util.GetFileInfo(abs)

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			info, err := util.GetFileInfo(fw.path)
			if err != nil || !fw.info.Changed(info) {
				continue
			}
			fw.info = info

			fingerprint, err := util.CalculateFileFingerprint(fw.path)
			if err != nil || fingerprint == fw.last {
				continue
			}
			fw.last = fingerprint

			select {
			case fw.events <- Event{Path: fw.path, Operation: event.Op.String(), Fingerprint: fingerprint}:
			case <-fw.done:
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("File monitoring error: " + err.Error())

		case <-fw.done:
			return
		}
	}
}

// Events delivers one event per content change. It is closed after Close.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	select {
	case <-fw.done:
	default:
		close(fw.done)
	}
	return fw.watcher.Close()
}

// Run calls onChange for every change until ctx is done or onChange fails.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(Event) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.events:
			if !ok {
				return nil
			}
			if err := onChange(ev); err != nil {
				return err
			}
		}
	}
}
