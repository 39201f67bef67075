// Package pathfilter decides which scanned files belong in the index.
package pathfilter

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taigrr/scriptindex/internal/types"
)

// DefaultExtension is the suffix listed when no other extension is configured.
const DefaultExtension = ".cs"

// PathFilter matches file names against the target extension and
// root-relative paths against ignore globs.
type PathFilter struct {
	ignoredPatterns []*regexp.Regexp
	extension       string
}

// New creates a new PathFilter with the given configuration.
// Nothing is ignored unless the configuration says so.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{extension: DefaultExtension}

	if config != nil {
		if config.Extension != "" {
			pf.extension = config.Extension
		}
		for _, pattern := range config.IgnoredPatterns {
			if re := compileGlob(pattern); re != nil {
				pf.ignoredPatterns = append(pf.ignoredPatterns, re)
			}
		}
	}

	return pf
}

// compileGlob converts a glob pattern to an anchored regex.
func compileGlob(pattern string) *regexp.Regexp {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.TrimPrefix(Normalize(pattern), "./")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalizedPattern)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	re, err := regexp.Compile("^" + regexPattern + "$")
	if err != nil {
		return nil
	}
	return re
}

// Normalize rewrites every path separator to "/".
func Normalize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Extension returns the target extension.
func (pf *PathFilter) Extension() string {
	return pf.extension
}

// MatchesName reports whether a bare file name should be listed.
// The suffix comparison is exact and case-sensitive. Hidden names, names
// that are nothing but the extension and names that are not valid UTF-8
// never match.
func (pf *PathFilter) MatchesName(name string) bool {
	if !strings.HasSuffix(name, pf.extension) {
		return false
	}
	if len(name) == len(pf.extension) {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	return utf8.ValidString(name)
}

// IsIgnored checks a root-relative path against the ignore globs.
// Directories are tested with a trailing "/" so that "dir/**" excludes
// the directory itself as well as its contents.
func (pf *PathFilter) IsIgnored(path string, isDir bool) bool {
	if len(pf.ignoredPatterns) == 0 {
		return false
	}

	normalizedPath := Normalize(path)
	if isDir {
		if normalizedPath == "." || normalizedPath == "" {
			return false
		}
		normalizedPath = strings.TrimSuffix(normalizedPath, "/") + "/"
	}

	for _, re := range pf.ignoredPatterns {
		if re.MatchString(normalizedPath) {
			return true
		}
	}
	return false
}
