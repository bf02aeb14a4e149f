// Package gittest builds throwaway repositories for tests.
package gittest

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RequireGit skips the test when the git executable is not on PATH.
func RequireGit(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git not available")
	}
}

// Init creates an empty repository in a fresh temporary directory.
func Init(tb testing.TB) (string, *gitlib.Repository) {
	tb.Helper()
	dir := tb.TempDir()
	repo, err := gitlib.PlainInit(dir, false)
	if err != nil {
		tb.Fatalf("init repository: %v", err)
	}
	return dir, repo
}

// Commit appends a line to a tracked file and commits it with author and committer
// both set to when. It returns the new commit hash.
func Commit(tb testing.TB, repo *gitlib.Repository, dir string, when time.Time) string {
	tb.Helper()
	wt, err := repo.Worktree()
	if err != nil {
		tb.Fatalf("worktree: %v", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "REVISION"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		tb.Fatalf("open file: %v", err)
	}
	_, err = fmt.Fprintf(f, "revision at %s\n", when.Format(time.RFC3339Nano))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		tb.Fatalf("write file: %v", err)
	}
	if _, err := wt.Add("REVISION"); err != nil {
		tb.Fatalf("add file: %v", err)
	}
	hash, err := wt.Commit("update revision", &gitlib.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: when},
	})
	if err != nil {
		tb.Fatalf("commit: %v", err)
	}
	return hash.String()
}

// NewRepo creates a repository with one commit per timestamp and returns its
// directory and the hash of the last commit.
func NewRepo(tb testing.TB, when ...time.Time) (string, string) {
	tb.Helper()
	if len(when) == 0 {
		tb.Fatal("NewRepo needs at least one commit")
	}
	dir, repo := Init(tb)
	var head string
	for _, ts := range when {
		head = Commit(tb, repo, dir, ts)
	}
	return dir, head
}
