package types

type (
	// GenerateResult describes a completed index generation.
	GenerateResult struct {
		OutputPath string        `json:"outputPath"`
		Files      []MatchedFile `json:"files"`
		Bytes      int           `json:"bytes"`
	}

	// IndexDrift compares the index document on disk with a fresh rendering.
	IndexDrift struct {
		OutputPath string   `json:"outputPath"`
		UpToDate   bool     `json:"upToDate"`
		Exists     bool     `json:"exists"`
		Missing    []string `json:"missing,omitempty"` // listed by a fresh scan, absent on disk
		Stale      []string `json:"stale,omitempty"`   // on disk, no longer found by a scan
	}
)
