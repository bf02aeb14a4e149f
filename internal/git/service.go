package git

import (
	"fmt"
	"io"
	"log/slog"

	gitbackend "github.com/thiagokokada/commit-info/internal/git/backend"
)

// Service answers repository questions for explicit paths through a Backend.
type Service struct {
	backend Backend
}

// New returns a Service using the backend selected at build time.
func New() *Service {
	slog.Debug("using backend", slog.String("backend", gitbackend.Name))
	return NewWithBackend(gitbackend.Default())
}

func NewWithBackend(backend Backend) *Service {
	return &Service{backend: backend}
}

// IsRepository reports whether path is inside a repository with an
// accessible history.
func (s *Service) IsRepository(path string) bool {
	if s.backend == nil {
		return false
	}
	ok := s.backend.IsRepository(path)
	slog.Debug("IsRepository", slog.String("path", path), slog.Bool("ok", ok))
	return ok
}

// CommitInfo returns the hash and committer date of the most recent commit.
// path is not re-checked with IsRepository.
func (s *Service) CommitInfo(path string) (CommitInfo, error) {
	if s.backend == nil {
		return CommitInfo{}, fmt.Errorf("backend not initialized")
	}
	info, err := s.backend.LatestCommit(path)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("read latest commit: %w", err)
	}
	slog.Debug("CommitInfo", slog.String("hash", info.Hash), slog.String("date", info.Date))
	return info, nil
}

// WriteCommitInfo writes the latest commit of path to w as a single JSON line.
// Nothing is written when the query fails.
func (s *Service) WriteCommitInfo(w io.Writer, path string) error {
	info, err := s.CommitInfo(path)
	if err != nil {
		return err
	}
	return info.WriteLine(w)
}
