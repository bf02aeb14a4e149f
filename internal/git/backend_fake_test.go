package git

import (
	"errors"

	gitbackend "github.com/thiagokokada/commit-info/internal/git/backend"
)

type fakeBackend struct {
	isRepositoryFunc func(path string) bool
	latestCommitFunc func(path string) (gitbackend.CommitInfo, error)

	lastIsRepositoryPath string
	lastLatestCommitPath string
}

func (f *fakeBackend) IsRepository(path string) bool {
	f.lastIsRepositoryPath = path
	if f.isRepositoryFunc != nil {
		return f.isRepositoryFunc(path)
	}
	return false
}

func (f *fakeBackend) LatestCommit(path string) (gitbackend.CommitInfo, error) {
	f.lastLatestCommitPath = path
	if f.latestCommitFunc != nil {
		return f.latestCommitFunc(path)
	}
	return gitbackend.CommitInfo{}, errors.New("unexpected LatestCommit call")
}
