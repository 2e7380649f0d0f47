package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aallbrig/verse/menu"
)

// Build-time variables injected via -ldflags:
//
//	-X github.com/aallbrig/verse/cmd.Version=v1.2.3
//	-X github.com/aallbrig/verse/cmd.Commit=abc1234
//	-X github.com/aallbrig/verse/cmd.BuildDate=2025-01-01
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// buildInfo describes the running binary.
type buildInfo struct {
	version   string
	commit    string
	modified  bool
	date      string
	goVersion string
	platform  string
}

// currentBuild merges the ldflags variables with what the Go toolchain
// embedded. Explicit ldflags values take precedence.
func currentBuild() buildInfo {
	b := buildInfo{
		version:   Version,
		commit:    Commit,
		date:      BuildDate,
		goVersion: runtime.Version(),
		platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if info.GoVersion != "" {
		b.goVersion = info.GoVersion
	}
	if b.version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.commit == "" && len(s.Value) >= 7 {
				b.commit = s.Value[:7]
			}
		case "vcs.modified":
			b.modified = s.Value == "true"
		case "vcs.time":
			if b.date == "" {
				b.date = s.Value
			}
		}
	}
	return b
}

// String renders e.g. "verse v1.2.3 (abc1234-dirty) built 2025-01-01, go1.25.8 linux/amd64".
func (b buildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("verse " + b.version)
	if b.commit != "" {
		sb.WriteString(" (" + b.commit)
		if b.modified {
			sb.WriteString("-dirty")
		}
		sb.WriteString(")")
	}
	if b.date != "" {
		sb.WriteString(" built " + b.date)
	}
	fmt.Fprintf(&sb, ", %s %s", b.goVersion, b.platform)
	return sb.String()
}

func (a *app) runVersion(cmd *cobra.Command, _ *menu.Invocation) error {
	fmt.Fprintln(cmd.OutOrStdout(), currentBuild())
	return nil
}
