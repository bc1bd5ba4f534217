// Package version exposes the build version of the hub and the CLI.
//
// The commit comes from -ldflags when set, otherwise from the VCS stamp in
// debug.BuildInfo, otherwise "dev".
package version

import "runtime/debug"

// AppName prefixes version strings and User-Agent headers.
const AppName = "chatstream"

// gitCommitOverride is set via -ldflags at build time for container builds
// where .git is unavailable.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars), or "dev".
var GitCommit = resolveCommit(gitCommitOverride, debug.ReadBuildInfo)

func resolveCommit(override string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if override != "" {
		return short(override)
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return short(s.Value)
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "chatstream/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}

// UserAgent returns the User-Agent of an outbound client, e.g.
// "chatstream-chatwatch/<commit>".
func UserAgent(component string) string {
	return AppName + "-" + component + "/" + GitCommit
}
