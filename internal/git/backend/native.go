package backend

import (
	"fmt"
	"path/filepath"

	gitlib "github.com/go-git/go-git/v5"
)

type goGit struct{}

// OpenNative returns a Backend that reads the repository with go-git instead
// of running the git executable.
func OpenNative() Backend {
	return goGit{}
}

func (goGit) IsRepository(path string) bool {
	_, err := openRepository(path)
	return err == nil
}

func (goGit) LatestCommit(path string) (CommitInfo, error) {
	repo, err := openRepository(path)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("open repository: %w", err)
	}
	ref, err := repo.Head()
	if err != nil {
		return CommitInfo{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return CommitInfo{}, fmt.Errorf("read commit %s: %w", ref.Hash(), err)
	}
	info := CommitInfo{
		Hash: commit.Hash.String(),
		Date: commit.Committer.When.Format(isoStrictLayout),
	}
	if err := info.validate(); err != nil {
		return CommitInfo{}, err
	}
	return info, nil
}

func openRepository(path string) (*gitlib.Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("repository path not set")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}
