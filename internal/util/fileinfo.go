package util

import (
	"os"

	"golang.org/x/sys/unix"
)

// FileInfo contains extended file information, including modification time, size, and inode number.
type FileInfo struct {
	ModTime int64  // Last modification time of the file (unix nanoseconds)
	Size    int64  // File size in bytes
	Inode   uint64 // Inode number, changes when the store is replaced by rename
}

// GetFileInfo retrieves detailed file information, including inode number.
// Supported on Linux and macOS.
func GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, err
	}

	return &FileInfo{
		ModTime: stat.ModTime().UnixNano(),
		Size:    stat.Size(),
		Inode:   uint64(st.Ino),
	}, nil
}

// Changed reports whether other describes a different version of the file.
func (fi *FileInfo) Changed(other *FileInfo) bool {
	if fi == nil || other == nil {
		return fi != other
	}
	return fi.Inode != other.Inode || fi.Size != other.Size || fi.ModTime != other.ModTime
}
