package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

type info struct {
	version  string
	tags     string
	revision string
	modified bool
}

func read() info {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return info{}
	}
	res := info{version: bi.Main.Version}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "-tags":
			res.tags = setting.Value
		case "vcs.revision":
			res.revision = setting.Value
		case "vcs.modified":
			res.modified = setting.Value == "true"
		}
	}
	return res
}

// Version returns the module version or "dev" when unset.
func Version() string {
	return read().normalizedVersion()
}

func (i info) normalizedVersion() string {
	if i.version == "" || i.version == "(devel)" {
		return "dev"
	}
	return i.version
}

// String renders the version with the build tags and VCS revision Go stamped
// into the binary, when present: "dev (rev 09fff36+dirty, tags: nativegit)".
func String() string {
	return read().String()
}

func (i info) String() string {
	var extra []string
	if i.revision != "" {
		rev := i.revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if i.modified {
			rev += "+dirty"
		}
		extra = append(extra, "rev "+rev)
	}
	if i.tags != "" {
		extra = append(extra, "tags: "+i.tags)
	}
	if len(extra) == 0 {
		return i.normalizedVersion()
	}
	return fmt.Sprintf("%s (%s)", i.normalizedVersion(), strings.Join(extra, ", "))
}
