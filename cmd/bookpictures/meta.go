package main

import (
	"runtime/debug"
)

// Set at link time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = ""
	commit  = ""
)

// versionString reports the build as "version (commit)", filling what the
// linker left unset from the module build info.
func versionString(info *debug.BuildInfo) string {
	v, rev, dirty := version, commit, false
	if info != nil {
		if v == "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if rev == "" {
					rev = s.Value[:min(7, len(s.Value))]
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}
	if v == "" {
		v = "dev"
	}
	if rev == "" {
		return v
	}
	if dirty {
		rev += "-dirty"
	}
	return v + " (" + rev + ")"
}
