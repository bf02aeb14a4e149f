//go:build !nativegit

package backend

// Name identifies the backend returned by Default.
const Name = "gitcli"

// Default returns the backend selected at build time.
func Default() Backend {
	return OpenCLI()
}
