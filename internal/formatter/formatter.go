// Package formatter turns walked directories into index entries.
package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/scriptindex/internal/pathfilter"
	"github.com/taigrr/scriptindex/internal/types"
)

// Formatter derives root-relative, "/"-separated entries for matching files.
type Formatter struct {
	root       string
	pathFilter *pathfilter.PathFilter
}

// New creates a Formatter for the tree rooted at root.
func New(root string, pf *pathfilter.PathFilter) *Formatter {
	absPath, _ := filepath.Abs(root)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Formatter{
		root:       absPath,
		pathFilter: pf,
	}
}

// Root returns the absolute traversal root.
func (f *Formatter) Root() string {
	return f.root
}

// Folder returns dir relative to the root with "/" separators.
// The root itself is ".".
func (f *Formatter) Folder(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(f.root, absDir)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("directory outside root: %s", dir)
	}

	return pathfilter.Normalize(filepath.ToSlash(relPath)), nil
}

// Format returns one MatchedFile per listed file of entry, in entry order.
// Files without the target extension are skipped silently.
func (f *Formatter) Format(entry types.DirectoryEntry) ([]types.MatchedFile, error) {
	folder, err := f.Folder(entry.Path)
	if err != nil {
		return nil, err
	}

	if f.pathFilter.IsIgnored(folder, true) {
		return nil, nil
	}

	var matches []types.MatchedFile
	for _, name := range entry.Files {
		if !f.pathFilter.MatchesName(name) {
			continue
		}

		filePath := pathfilter.Normalize(name)
		if folder != "." {
			filePath = folder + "/" + filePath
		}

		if f.pathFilter.IsIgnored(filePath, false) {
			continue
		}

		matches = append(matches, types.MatchedFile{
			Path:   filePath,
			Folder: folder,
		})
	}

	return matches, nil
}
