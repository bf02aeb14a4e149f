package backend

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Minimum supported git version for the CLI backend. 2.2.0 introduced the
// strict ISO-8601 placeholder (%cI) used by logFormat.
var minGitVersion = gitVersion{major: 2, minor: 2, patch: 0}

type gitVersion struct {
	major int
	minor int
	patch int
}

func MinGitVersion() string {
	return minGitVersion.String()
}

func (v gitVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v gitVersion) less(other gitVersion) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

// versionRe matches the leading release number, ignoring vendor suffixes such
// as "(Apple Git-146)" or ".windows.1".
var versionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

func parseGitVersionOutput(out string) (gitVersion, bool) {
	s := strings.TrimSpace(out)
	if idx := strings.Index(s, "git version"); idx >= 0 {
		s = s[idx+len("git version"):]
	}
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return gitVersion{}, false
	}
	var v gitVersion
	var err error
	if v.major, err = strconv.Atoi(m[1]); err != nil {
		return gitVersion{}, false
	}
	if v.minor, err = strconv.Atoi(m[2]); err != nil {
		return gitVersion{}, false
	}
	if m[3] != "" {
		if v.patch, err = strconv.Atoi(m[3]); err != nil {
			return gitVersion{}, false
		}
	}
	return v, true
}

func checkGitVersion(v gitVersion) error {
	if v.less(minGitVersion) {
		return fmt.Errorf("git %s is too old; commit-info requires git >= %s", v, minGitVersion)
	}
	return nil
}

type gitVersionInfo struct {
	out    string
	parsed gitVersion
	err    error
}

var (
	gitVersionOnce      sync.Once
	gitVersionInfoCache gitVersionInfo
)

func gitVersionInfoCached() gitVersionInfo {
	gitVersionOnce.Do(func() {
		outBytes, err := exec.Command("git", "--version").CombinedOutput()
		out := strings.TrimSpace(string(outBytes))
		gitVersionInfoCache.out = out
		if err != nil {
			if out != "" {
				gitVersionInfoCache.err = fmt.Errorf("git --version: %v: %s", err, out)
				return
			}
			gitVersionInfoCache.err = fmt.Errorf("git --version: %w", err)
			return
		}
		parsed, ok := parseGitVersionOutput(out)
		if !ok {
			gitVersionInfoCache.err = fmt.Errorf("unable to parse git version output: %q", out)
			return
		}
		gitVersionInfoCache.parsed = parsed
	})
	return gitVersionInfoCache
}

// GitVersion returns the raw "git --version" output.
func GitVersion() (string, error) {
	info := gitVersionInfoCached()
	return info.out, info.err
}

func ensureMinGitVersion() error {
	info := gitVersionInfoCached()
	if info.err != nil {
		return info.err
	}
	return checkGitVersion(info.parsed)
}
