package git

import gitbackend "github.com/thiagokokada/commit-info/internal/git/backend"

func GitVersion() (string, error) {
	return gitbackend.GitVersion()
}

func MinGitVersion() string {
	return gitbackend.MinGitVersion()
}

// BackendName identifies the backend New uses.
func BackendName() string {
	return gitbackend.Name
}
