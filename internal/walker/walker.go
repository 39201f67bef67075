// Package walker enumerates a directory tree one directory at a time.
package walker

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/taigrr/scriptindex/internal/types"
)

// AccessError reports a directory that could not be listed.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot list directory %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Walk returns a depth-first, pre-order sequence of the directories under
// root, root included. Each entry carries the regular files the directory
// directly contains, in os.ReadDir order. Symbolic links are neither
// followed nor reported.
//
// A directory that cannot be listed is yielded once with an *AccessError
// and ends the sequence.
func Walk(root string) iter.Seq2[types.DirectoryEntry, error] {
	return func(yield func(types.DirectoryEntry, error) bool) {
		walk(root, yield)
	}
}

func walk(dir string, yield func(types.DirectoryEntry, error) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		yield(types.DirectoryEntry{Path: dir}, &AccessError{Path: dir, Err: err})
		return false
	}

	var files, subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
		} else if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}

	if !yield(types.DirectoryEntry{Path: dir, Files: files}, nil) {
		return false
	}

	for _, name := range subdirs {
		if !walk(filepath.Join(dir, name), yield) {
			return false
		}
	}

	return true
}

// Collect drains Walk into a slice, stopping at the first error.
func Collect(root string) ([]types.DirectoryEntry, error) {
	var dirs []types.DirectoryEntry
	for entry, err := range Walk(root) {
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, entry)
	}
	return dirs, nil
}
