package backend

// HistoryQuery reads the most recent commit of the repository containing path.
type HistoryQuery interface {
	LatestCommit(path string) (CommitInfo, error)
}

// Backend abstracts access to repository metadata.
//
// The default implementation shells out to the git executable, but the interface
// allows alternative implementations (e.g. pure-Go) without changing callers.
type Backend interface {
	// IsRepository reports whether path is inside a repository whose history
	// can be queried. Failures of any kind report false.
	IsRepository(path string) bool
	HistoryQuery
}
