package git

import gitbackend "github.com/thiagokokada/commit-info/internal/git/backend"

type CommitInfo = gitbackend.CommitInfo

// Backend abstracts access to repository metadata; see gitbackend.Backend.
type Backend = gitbackend.Backend

var ErrMalformedOutput = gitbackend.ErrMalformedOutput
