// Package store loads and saves a Timeline as a whole document on disk.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/util"
)

// Store is a timeline document at Path. Times are read and written in
// Location.
type Store struct {
	Path     string
	Format   string
	Location *time.Location
}

// New creates a store for path, picking the format from its extension.
func New(path string, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{Path: path, Format: FormatForPath(path), Location: loc}
}

// Exists reports whether the document file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads and parses the document. The returned marks are sorted by time.
func (s *Store) Load() (*model.Timeline, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &model.IOError{Op: "read", Path: s.Path, Err: err}
	}

	tl, err := Decode(data, s.Format, s.Path, s.Location)
	if err != nil {
		return nil, err
	}
	util.LogDebug("timeline loaded", util.F("path", s.Path), util.F("marks", tl.Len()))
	return tl, nil
}

// Save replaces the document with tl. The file is written next to the
// target and renamed over it, so readers never see a partial document.
func (s *Store) Save(tl *model.Timeline) error {
	data, err := Encode(tl, s.Format, s.Location)
	if err != nil {
		return &model.IOError{Op: "encode", Path: s.Path, Err: err}
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &model.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return &model.IOError{Op: "write", Path: s.Path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &model.IOError{Op: "write", Path: s.Path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &model.IOError{Op: "write", Path: s.Path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return &model.IOError{Op: "chmod", Path: s.Path, Err: err}
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return &model.IOError{Op: "rename", Path: s.Path, Err: err}
	}

	util.LogDebug("timeline saved", util.F("path", s.Path), util.F("marks", tl.Len()))
	return nil
}

// IsNotExist reports whether err is a load failure caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// LoadFile loads the document at path in the local timezone.
func LoadFile(path string) (*model.Timeline, error) {
	return New(path, time.Local).Load()
}

// SaveFile saves tl to path in the local timezone.
func SaveFile(tl *model.Timeline, path string) error {
	return New(path, time.Local).Save(tl)
}
