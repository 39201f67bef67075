// Package index runs the scan, format and render pipeline over a tree.
package index

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taigrr/scriptindex/internal/formatter"
	"github.com/taigrr/scriptindex/internal/logger"
	"github.com/taigrr/scriptindex/internal/pathfilter"
	"github.com/taigrr/scriptindex/internal/render"
	"github.com/taigrr/scriptindex/internal/types"
	"github.com/taigrr/scriptindex/internal/walker"
)

// Options configures a Service.
type Options struct {
	// Root is the traversal root.
	Root string
	// Extension is the file suffix to list, matched case-sensitively.
	Extension string
	// Output is the index document path. Relative paths are taken from Root.
	Output string
	// Exclude holds globs of root-relative paths to leave out.
	Exclude []string
	// Template must contain render.Placeholder exactly once.
	Template string
}

// DefaultOptions lists .cs files under the working directory into README.md.
func DefaultOptions() Options {
	return Options{
		Root:      ".",
		Extension: pathfilter.DefaultExtension,
		Output:    "README.md",
		Template:  render.DefaultTemplate,
	}
}

// Service generates and checks the index document for one tree.
type Service struct {
	root      string
	output    string
	template  string
	formatter *formatter.Formatter
	log       *logger.Logger
}

// New creates a Service. Zero-valued options fall back to DefaultOptions.
func New(opts Options, log *logger.Logger) *Service {
	defaults := DefaultOptions()
	if opts.Root == "" {
		opts.Root = defaults.Root
	}
	if opts.Extension == "" {
		opts.Extension = defaults.Extension
	}
	if opts.Output == "" {
		opts.Output = defaults.Output
	}
	if opts.Template == "" {
		opts.Template = defaults.Template
	}
	if log == nil {
		log = logger.Discard()
	}

	pf := pathfilter.New(&types.PathFilterConfig{
		IgnoredPatterns: opts.Exclude,
		Extension:       opts.Extension,
	})
	f := formatter.New(opts.Root, pf)

	output := opts.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(f.Root(), output)
	}

	return &Service{
		root:      f.Root(),
		output:    output,
		template:  opts.Template,
		formatter: f,
		log:       log,
	}
}

// Root returns the absolute traversal root.
func (s *Service) Root() string {
	return s.root
}

// OutputPath returns the absolute path of the index document.
func (s *Service) OutputPath() string {
	return s.output
}

// Scan walks the tree and returns the matching files in traversal order.
func (s *Service) Scan() ([]types.MatchedFile, error) {
	var files []types.MatchedFile

	for entry, err := range walker.Walk(s.root) {
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.root, err)
		}
		s.log.Debugf("%s", entry.Path)

		matches, err := s.formatter.Format(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to format %s: %w", entry.Path, err)
		}
		files = append(files, matches...)
	}

	return files, nil
}

// Render scans the tree and returns the rendered document.
func (s *Service) Render() (string, []types.MatchedFile, error) {
	files, err := s.Scan()
	if err != nil {
		return "", nil, err
	}

	doc, err := render.Render(s.template, files)
	if err != nil {
		return "", nil, err
	}
	return doc, files, nil
}

// Generate renders the document and overwrites the output file with it.
func (s *Service) Generate() (types.GenerateResult, error) {
	doc, files, err := s.Render()
	if err != nil {
		return types.GenerateResult{}, err
	}

	for _, m := range render.Unlinked(files) {
		s.log.Warnf("%s will not render as a link to %q", m.Path, m.Folder)
	}

	if err := render.Write(s.output, doc); err != nil {
		return types.GenerateResult{}, err
	}

	s.log.Infof("wrote %d entries to %s", len(files), s.output)

	return types.GenerateResult{
		OutputPath: s.output,
		Files:      files,
		Bytes:      len(doc),
	}, nil
}

// Check compares the output file with a fresh rendering without writing.
func (s *Service) Check() (types.IndexDrift, error) {
	doc, _, err := s.Render()
	if err != nil {
		return types.IndexDrift{}, err
	}

	drift := types.IndexDrift{OutputPath: s.output}

	existing, err := os.ReadFile(s.output)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		drift.Missing = render.ListingLines(doc)
		return drift, nil
	case err != nil:
		return types.IndexDrift{}, fmt.Errorf("failed to read %s: %w", s.output, err)
	}

	drift.Exists = true
	drift.UpToDate = string(existing) == doc

	fresh := render.ListingLines(doc)
	onDisk := render.ListingLines(string(existing))
	drift.Missing = difference(fresh, onDisk)
	drift.Stale = difference(onDisk, fresh)

	if !drift.UpToDate {
		s.log.Infof("%s is out of date: %d missing, %d stale", s.output, len(drift.Missing), len(drift.Stale))
	}

	return drift, nil
}

// difference returns the elements of a not present in b, in a's order.
func difference(a, b []string) []string {
	seen := make(map[string]struct{}, len(b))
	for _, v := range b {
		seen[v] = struct{}{}
	}

	var out []string
	for _, v := range a {
		if _, ok := seen[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
