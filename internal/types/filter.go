package types

type (
	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns"`
		Extension       string   `json:"extension"`
	}
)
