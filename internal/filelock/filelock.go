// Package filelock replaces files atomically under an advisory lock.
package filelock

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock is an exclusive advisory lock backed by a lock file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock backed by the file at path. The file is created on
// first use and left in place afterwards.
func New(path string) *Lock {
	return &Lock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Lock blocks until the lock is held.
func (l *Lock) Lock() error {
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	return nil
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *Lock) TryLock() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (l *Lock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// AtomicWrite replaces path with data by writing a temp file in the same
// directory and renaming it over the target. On failure the previous
// content of path is left untouched.
func AtomicWrite(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}

// LockAndWrite holds the lock at lockPath while it performs an AtomicWrite
// of path.
func LockAndWrite(lockPath, path string, data []byte, perm fs.FileMode) error {
	lock := New(lockPath)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicWrite(path, data, perm)
}
