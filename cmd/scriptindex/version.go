package main

import "runtime/debug"

// buildVersion may be set with -ldflags "-X main.buildVersion=v1.2.3".
var buildVersion string

var version = resolveVersion(buildVersion, debug.ReadBuildInfo)

// resolveVersion prefers an explicit build version, then a tagged module
// version, then the short VCS revision.
func resolveVersion(explicit string, readInfo func() (*debug.BuildInfo, bool)) string {
	if explicit != "" {
		return explicit
	}

	info, ok := readInfo()
	if !ok || info == nil {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
}
