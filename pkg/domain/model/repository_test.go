package model_test

import (
	"testing"

	"github.com/c04ch1337/repoinit/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestRepository(t *testing.T) {
	repo := model.Repository{
		Owner: "c04ch1337",
		Name:  "Phoenix.Marie",
	}

	t.Run("FullName", func(t *testing.T) {
		gt.Equal(t, repo.FullName(), "c04ch1337/Phoenix.Marie")
	})

	t.Run("SSHURL", func(t *testing.T) {
		gt.Equal(t, repo.SSHURL(), "git@github.com:c04ch1337/Phoenix.Marie.git")
	})

	t.Run("HTMLURL", func(t *testing.T) {
		gt.Equal(t, repo.HTMLURL(), "https://github.com/c04ch1337/Phoenix.Marie")
	})
}

func TestCreateResult(t *testing.T) {
	t.Run("Message from body", func(t *testing.T) {
		result := model.CreateResult{
			Body: map[string]any{"message": "name already exists"},
		}
		gt.Equal(t, result.Message(), "name already exists")
	})

	t.Run("Message missing", func(t *testing.T) {
		result := model.CreateResult{Body: map[string]any{}}
		gt.Equal(t, result.Message(), "")
	})

	t.Run("Repository from response body", func(t *testing.T) {
		result := model.CreateResult{
			Created: true,
			Body: map[string]any{
				"name":  "Phoenix.Marie",
				"owner": map[string]any{"login": "c04ch1337"},
			},
		}

		repo := result.Repository(model.Repository{Owner: "fallback", Name: "fallback"})
		gt.Equal(t, repo.FullName(), "c04ch1337/Phoenix.Marie")
	})

	t.Run("Repository falls back for missing fields", func(t *testing.T) {
		result := model.CreateResult{
			Created: true,
			Body:    map[string]any{"name": "Phoenix.Marie"},
		}

		repo := result.Repository(model.Repository{Owner: "c04ch1337", Name: "other"})
		gt.Equal(t, repo.Owner, "c04ch1337")
		gt.Equal(t, repo.Name, "Phoenix.Marie")
	})
}
