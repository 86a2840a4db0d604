package interfaces

import (
	"context"

	"github.com/c04ch1337/repoinit/pkg/domain/model"
)

type RepositoryService interface {
	CreateRepository(ctx context.Context, token string, req model.CreateRequest) (*model.CreateResult, error)
}

type StatusService interface {
	Check(ctx context.Context, token string, repo model.Repository) (*model.CheckStatus, error)
}
