package filelock

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock := New(lockPath)
	if lock == nil {
		t.Fatal("New should not return nil")
	}
	if lock.Path() != lockPath {
		t.Errorf("Path() = %s, want %s", lock.Path(), lockPath)
	}
}

func TestLockUnlock(t *testing.T) {
	lock := New(filepath.Join(t.TempDir(), "test.lock"))

	if err := lock.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
}

func TestTryLockHeld(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	first := New(lockPath)
	if err := first.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	defer first.Unlock()

	second := New(lockPath)
	acquired, err := second.TryLock()
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if acquired {
		second.Unlock()
		t.Error("TryLock acquired a lock that is already held")
	}
}

func TestAtomicWrite(t *testing.T) {
	t.Run("creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "README.md")

		if err := AtomicWrite(path, []byte("hello"), 0o644); err != nil {
			t.Fatalf("AtomicWrite: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("content = %q, want %q", got, "hello")
		}
	})

	t.Run("overwrites longer file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "README.md")
		os.WriteFile(path, []byte("a much longer previous content"), 0o644)

		if err := AtomicWrite(path, []byte("short"), 0o644); err != nil {
			t.Fatalf("AtomicWrite: %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "short" {
			t.Errorf("content = %q, want %q", got, "short")
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "README.md")

		if err := AtomicWrite(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("AtomicWrite: %v", err)
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("directory holds %d entries, want 1", len(entries))
		}
	})

	t.Run("target is a directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "README.md")
		os.Mkdir(path, 0o755)

		if err := AtomicWrite(path, []byte("x"), 0o644); err == nil {
			t.Error("AtomicWrite onto a directory succeeded, want error")
		}
	})

	t.Run("missing parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "README.md")

		if err := AtomicWrite(path, []byte("x"), 0o644); err == nil {
			t.Error("AtomicWrite into a missing directory succeeded, want error")
		}
	})
}

func TestLockAndWriteConcurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	lockPath := filepath.Join(dir, "index.lock")

	const writers = 8

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- LockAndWrite(lockPath, path, []byte("writer "+strconv.Itoa(i)), 0o644)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("LockAndWrite: %v", err)
		}
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) < len("writer 0") {
		t.Errorf("content = %q, want a complete write", got)
	}
}
