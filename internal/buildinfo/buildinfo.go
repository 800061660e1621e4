// Package buildinfo reports the version banner of the mia tools.
package buildinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"
)

// Version is shared by every mia tool.
const Version = "0.3.0"

// Timestamp returns when the running binary was built: the VCS commit time
// if the toolchain recorded one, else the executable's modification time,
// else now. The result is RFC 3339 in UTC.
func Timestamp() string {
	if ts, ok := vcsTime(debug.ReadBuildInfo()); ok {
		return ts
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func vcsTime(info *debug.BuildInfo, ok bool) (string, bool) {
	if !ok || info == nil {
		return "", false
	}
	for _, setting := range info.Settings {
		if setting.Key != "vcs.time" {
			continue
		}
		t, err := time.Parse(time.RFC3339, setting.Value)
		if err != nil {
			return "", false
		}
		return t.UTC().Format(time.RFC3339), true
	}
	return "", false
}

// Write prints the "<tool> <version>" and build time lines.
func Write(w io.Writer, tool string) {
	fmt.Fprintf(w, "%s %s\n", tool, Version)
	fmt.Fprintf(w, "Built: %s\n", Timestamp())
}
