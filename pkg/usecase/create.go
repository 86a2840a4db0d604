package usecase

import (
	"context"

	"github.com/c04ch1337/repoinit/pkg/domain"
	"github.com/c04ch1337/repoinit/pkg/domain/interfaces"
	"github.com/c04ch1337/repoinit/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type CreateUseCase struct {
	github   interfaces.RepositoryService
	git      interfaces.GitClient
	reporter interfaces.Reporter
}

type CreateUseCaseOptions struct {
	GitHub   interfaces.RepositoryService
	Git      interfaces.GitClient
	Reporter interfaces.Reporter
}

func NewCreateUseCase(opts CreateUseCaseOptions) *CreateUseCase {
	return &CreateUseCase{
		github:   opts.GitHub,
		git:      opts.Git,
		reporter: opts.Reporter,
	}
}

// Execute creates the repository and points the local remote 'origin' at it.
// A remote setup failure after a successful creation is demoted to a
// warning: the repository already exists remotely and is not rolled back.
func (u *CreateUseCase) Execute(ctx context.Context, token string, req model.CreateRequest, fallback model.Repository) (model.Repository, error) {
	result, err := u.github.CreateRepository(ctx, token, req)
	if err != nil {
		return model.Repository{}, err
	}

	if !result.Created {
		u.reporter.Errorf("Error creating repository:")
		u.reporter.Diagnostic(result.Body)

		msg := result.Message()
		if msg == "" {
			msg = "repository creation rejected"
		}
		return model.Repository{}, domain.ErrAPIRequest.Wrap(goerr.New(msg))
	}

	repo := result.Repository(fallback)

	u.reporter.Successf("Repository created successfully!")
	u.reporter.Printf("")
	u.reporter.Printf("Repository URL: %s", repo.HTMLURL())
	u.reporter.Printf("SSH URL: %s", repo.SSHURL())
	u.reporter.Printf("")

	updated, err := u.git.EnsureRemote(ctx, "origin", repo.SSHURL())
	switch {
	case err != nil:
		u.reporter.Warnf("Could not set up git remote: %v", err)
	case updated:
		u.reporter.Successf("Updated remote 'origin' to %s", repo.SSHURL())
	default:
		u.reporter.Successf("Added remote 'origin': %s", repo.SSHURL())
	}

	return repo, nil
}
