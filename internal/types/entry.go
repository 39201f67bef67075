// Package types defines the data structures shared by the index pipeline.
package types

type (
	// DirectoryEntry is a directory visited during traversal together with the
	// regular files it directly contains, in listing order.
	DirectoryEntry struct {
		Path  string   `json:"path"`
		Files []string `json:"files"`
	}

	// MatchedFile is a file whose name carries the target extension.
	// Both fields are relative to the traversal root and use "/" separators.
	MatchedFile struct {
		Path   string `json:"path" yaml:"path"`
		Folder string `json:"folder" yaml:"folder"`
	}
)
