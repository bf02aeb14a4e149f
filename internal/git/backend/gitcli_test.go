package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/thiagokokada/commit-info/internal/git/gittest"
)

func TestCLILatestCommit(t *testing.T) {
	t.Parallel()
	gittest.RequireGit(t)

	dir, head := gittest.NewRepo(t,
		time.Date(2023, 5, 4, 10, 0, 0, 0, jst()),
		time.Date(2023, 5, 5, 21, 57, 16, 0, jst()),
	)

	b := OpenCLI()
	if !b.IsRepository(dir) {
		t.Fatalf("IsRepository(%q) = false", dir)
	}
	got, err := b.LatestCommit(dir)
	if err != nil {
		t.Fatalf("LatestCommit: %v", err)
	}
	want := CommitInfo{Hash: head, Date: "2023-05-05T21:57:16+09:00"}
	if got != want {
		t.Fatalf("LatestCommit() = %+v, want %+v", got, want)
	}
	if !hashRe.MatchString(got.Hash) || !isoDateRe.MatchString(got.Date) {
		t.Fatalf("unexpected format: %+v", got)
	}
}

func TestCLILatestCommit_Idempotent(t *testing.T) {
	t.Parallel()
	gittest.RequireGit(t)

	dir, _ := gittest.NewRepo(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	b := OpenCLI()
	first, err := b.LatestCommit(dir)
	if err != nil {
		t.Fatalf("LatestCommit: %v", err)
	}
	second, err := b.LatestCommit(dir)
	if err != nil {
		t.Fatalf("LatestCommit: %v", err)
	}
	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if first.Date != "2024-01-02T03:04:05+00:00" {
		t.Fatalf("date = %q", first.Date)
	}
}

func TestCLIAgreesWithNative(t *testing.T) {
	t.Parallel()
	gittest.RequireGit(t)

	dir, _ := gittest.NewRepo(t,
		time.Date(2022, 12, 31, 23, 59, 59, 0, time.FixedZone("", -5*60*60)),
		time.Date(2023, 1, 1, 4, 59, 59, 0, time.FixedZone("", -3*60*60-30*60)),
	)
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cli, err := OpenCLI().LatestCommit(sub)
	if err != nil {
		t.Fatalf("cli LatestCommit: %v", err)
	}
	native, err := OpenNative().LatestCommit(sub)
	if err != nil {
		t.Fatalf("native LatestCommit: %v", err)
	}
	if cli != native {
		t.Fatalf("backends disagree: cli=%+v native=%+v", cli, native)
	}
	if cli.Date != "2023-01-01T04:59:59-03:30" {
		t.Fatalf("date = %q", cli.Date)
	}
}

func TestCLILatestCommit_NoCommits(t *testing.T) {
	t.Parallel()
	gittest.RequireGit(t)

	dir, _ := gittest.Init(t)

	b := OpenCLI()
	if !b.IsRepository(dir) {
		t.Fatalf("IsRepository(%q) = false for empty repository", dir)
	}
	got, err := b.LatestCommit(dir)
	if err == nil {
		t.Fatalf("expected error, got %+v", got)
	}
}

func TestCLIIsRepository_NotARepository(t *testing.T) {
	t.Parallel()
	gittest.RequireGit(t)

	b := OpenCLI()
	dir := t.TempDir()
	if b.IsRepository(dir) {
		t.Fatalf("IsRepository(%q) = true for empty directory", dir)
	}
	if b.IsRepository(filepath.Join(dir, "missing")) {
		t.Fatal("IsRepository() = true for missing directory")
	}
	if b.IsRepository("") {
		t.Fatal("IsRepository(\"\") = true")
	}
}

func TestRunGitCommand_ReportsStderr(t *testing.T) {
	t.Parallel()
	gittest.RequireGit(t)

	_, err := runGitCommand(t.TempDir(), []string{"log", "-1"}, "git log")
	if err == nil {
		t.Fatal("expected error outside a repository")
	}
	if msg := err.Error(); !strings.HasPrefix(msg, "git log: ") {
		t.Fatalf("error lacks context prefix: %q", msg)
	}
}
