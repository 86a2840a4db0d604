package interfaces

import "context"

type GitClient interface {
	// EnsureRemote points the named remote at url, adding it when absent.
	// It reports whether an existing remote was rewritten.
	EnsureRemote(ctx context.Context, name, url string) (bool, error)
}
