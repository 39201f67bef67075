// Package render builds the index document and writes it to disk.
package render

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/scriptindex/internal/filelock"
	"github.com/taigrr/scriptindex/internal/types"
)

// Placeholder marks where the listing goes in the template.
const Placeholder = "__SCRIPTS_LIST__"

// DefaultTemplate is the index document with a single Placeholder.
//
//go:embed template.md
var DefaultTemplate string

// ErrPlaceholder is returned for templates that do not contain exactly one
// Placeholder.
var ErrPlaceholder = errors.New("template must contain the placeholder " + Placeholder + " exactly once")

// WriteError reports an output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Line renders a single listing line.
func Line(m types.MatchedFile) string {
	return "- [" + m.Path + "](" + m.Folder + ")"
}

// Lines renders files in order.
func Lines(files []types.MatchedFile) []string {
	lines := make([]string, 0, len(files))
	for _, m := range files {
		lines = append(lines, Line(m))
	}
	return lines
}

// Render substitutes the newline-joined listing of files into tmpl.
func Render(tmpl string, files []types.MatchedFile) (string, error) {
	if strings.Count(tmpl, Placeholder) != 1 {
		return "", ErrPlaceholder
	}
	return strings.Replace(tmpl, Placeholder, strings.Join(Lines(files), "\n"), 1), nil
}

// Write replaces the file at path with doc. Concurrent writers of the same
// path are serialized; a failed write leaves the previous file in place.
func Write(path, doc string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := filelock.LockAndWrite(lockPath(absPath), absPath, []byte(doc), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// lockPath keeps lock files out of the indexed tree.
func lockPath(absPath string) string {
	sum := sha256.Sum256([]byte(absPath))
	return filepath.Join(os.TempDir(), "scriptindex-"+hex.EncodeToString(sum[:8])+".lock")
}

// ListingLines returns the lines of doc that look like listing lines.
func ListingLines(doc string) []string {
	var lines []string
	for line := range strings.SplitSeq(doc, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "- [") {
			lines = append(lines, line)
		}
	}
	return lines
}
