package util

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// CalculateFileFingerprint calculates the CRC32 fingerprint of a file's content
func CalculateFileFingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x", h.Sum32()), nil
}
