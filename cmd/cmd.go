package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/thiagokokada/commit-info/internal/buildinfo"
	"github.com/thiagokokada/commit-info/internal/git"
)

// ErrNotRepository is returned after the not-a-repository message has been
// written to standard error.
var ErrNotRepository = errors.New("not inside a git repository")

const notRepositoryMessage = "The current directory is not inside a Git repository."

func Run() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("commit-info", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if *showVersion {
		fmt.Fprintln(stdout, buildinfo.String())
		return nil
	}
	if *verbose {
		setupLogging(stderr, slog.LevelDebug)
		if git.BackendName() == "gitcli" {
			out, err := git.GitVersion()
			slog.Debug("git version", slog.String("output", out), slog.String("min", git.MinGitVersion()), slog.Any("error", err))
		}
	}
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	return report(git.New(), dir, stdout, stderr)
}

// report prints the latest commit of dir, or the not-a-repository message.
func report(svc *git.Service, dir string, stdout, stderr io.Writer) error {
	if !svc.IsRepository(dir) {
		fmt.Fprintln(stderr, notRepositoryMessage)
		return ErrNotRepository
	}
	return svc.WriteCommitInfo(stdout, dir)
}

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
