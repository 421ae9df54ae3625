// Package output manages the directory images are written to.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrWrite wraps every failure to archive, create or write output.
var ErrWrite = errors.New("output write failure")

// DateFormat is the suffix appended to archived directories.
const DateFormat = "2006-01-02"

// Archive renames an existing directory dir to "<dir>-<date>", adding "-2", "-3", ...
// when that name is taken. It returns the new path, or "" if dir did not exist.
func Archive(dir string, now time.Time) (string, error) {
	dir = strings.TrimRight(dir, `/\`)
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: stat %s: %w", ErrWrite, dir, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s exists and is not a directory", ErrWrite, dir)
	}

	base := dir + "-" + now.Format(DateFormat)
	target := base
	for i := 2; exists(target); i++ {
		target = base + "-" + strconv.Itoa(i)
	}
	if err := os.Rename(dir, target); err != nil {
		return "", fmt.Errorf("%w: archive %s: %w", ErrWrite, dir, err)
	}
	return target, nil
}

// Prepare archives dir if it exists and creates it empty.
func Prepare(dir string, now time.Time) (string, error) {
	archived, err := Archive(dir, now)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return archived, fmt.Errorf("%w: create %s: %w", ErrWrite, dir, err)
	}
	return archived, nil
}

// Write stores PNG data as <dir>/<name>.png and returns the path.
func Write(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
