package backend

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// logFormat renders the HEAD commit as a JSON object literal.
const logFormat = `{%n  "hash": "%H",%n  "date": "%cI"%n}`

type gitCLI struct{}

func OpenCLI() Backend {
	return gitCLI{}
}

func (gitCLI) IsRepository(path string) bool {
	if _, err := runGitCommand(path, []string{"status"}, "git status"); err != nil {
		slog.Debug("repository check failed", slog.String("path", path), slog.Any("error", err))
		return false
	}
	return true
}

func (gitCLI) LatestCommit(path string) (CommitInfo, error) {
	if err := ensureMinGitVersion(); err != nil {
		return CommitInfo{}, err
	}
	out, err := runGitCommand(path, []string{"log", "-1", "--pretty=format:" + logFormat}, "git log")
	if err != nil {
		return CommitInfo{}, err
	}
	info, err := DecodeCommitInfo(strings.NewReader(out))
	if err != nil {
		return CommitInfo{}, fmt.Errorf("parse git log: %w", err)
	}
	return info, nil
}

func runGitCommand(dir string, args []string, context string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("repository path not set")
	}
	cmdArgs := append([]string{"-C", dir}, args...)
	slog.Debug("run git", slog.Any("args", cmdArgs))
	cmd := exec.Command("git", cmdArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%s: %v: %s", context, err, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("%s: %w", context, err)
	}
	return stdout.String(), nil
}
