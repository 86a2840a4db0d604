package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/c04ch1337/repoinit/pkg/domain"
	"github.com/c04ch1337/repoinit/pkg/domain/interfaces"
	"github.com/c04ch1337/repoinit/pkg/domain/model"
	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"golang.org/x/oauth2"
)

type CheckService struct {
	client *github.Client
}

type CheckServiceOption func(*CheckService)

// WithGitHubClient replaces the token-derived client, mainly for tests.
func WithGitHubClient(client *github.Client) CheckServiceOption {
	return func(s *CheckService) {
		s.client = client
	}
}

func NewCheckService(opts ...CheckServiceOption) interfaces.StatusService {
	s := &CheckService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check reports who the token authenticates as and whether the target
// repository already exists. It is read-only: the create flow never
// consults it.
func (s *CheckService) Check(ctx context.Context, token string, repo model.Repository) (*model.CheckStatus, error) {
	logger := ctxlog.From(ctx)

	client := s.client
	if client == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	status := &model.CheckStatus{Login: user.GetLogin()}

	_, resp, err := client.Repositories.Get(ctx, repo.Owner, repo.Name)
	switch {
	case err == nil:
		status.Exists = true
	case resp != nil && resp.StatusCode == http.StatusNotFound:
		status.Exists = false
	default:
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	logger.Debug("checked repository",
		slog.String("repo", repo.FullName()),
		slog.String("login", status.Login),
		slog.Bool("exists", status.Exists),
	)

	return status, nil
}
