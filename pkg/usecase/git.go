package usecase

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/c04ch1337/repoinit/pkg/domain"
	"github.com/c04ch1337/repoinit/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type GitClient struct {
	dir string
}

func NewGitClient(dir string) interfaces.GitClient {
	return &GitClient{dir: dir}
}

// EnsureRemote points the named remote at url. An existing remote is
// rewritten with set-url, a missing one is added.
func (c *GitClient) EnsureRemote(ctx context.Context, name, url string) (bool, error) {
	logger := ctxlog.From(ctx)

	getCmd := exec.CommandContext(ctx, "git", "remote", "get-url", name)
	getCmd.Dir = c.dir
	current, err := getCmd.Output()
	if err == nil {
		logger.Debug("rewriting existing remote",
			slog.String("remote", name),
			slog.String("current", strings.TrimSpace(string(current))),
			slog.String("url", url),
		)
		setCmd := exec.CommandContext(ctx, "git", "remote", "set-url", name, url)
		setCmd.Dir = c.dir
		if out, err := setCmd.CombinedOutput(); err != nil {
			return false, domain.ErrRemoteSetup.Wrap(goerr.Wrap(err, strings.TrimSpace(string(out))))
		}
		return true, nil
	}

	addCmd := exec.CommandContext(ctx, "git", "remote", "add", name, url)
	addCmd.Dir = c.dir
	if out, err := addCmd.CombinedOutput(); err != nil {
		return false, domain.ErrRemoteSetup.Wrap(goerr.Wrap(err, strings.TrimSpace(string(out))))
	}
	return false, nil
}
