package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/c04ch1337/repoinit/pkg/domain/model"
	"github.com/c04ch1337/repoinit/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newCreateRequest() model.CreateRequest {
	return model.CreateRequest{
		Name:        "Phoenix.Marie",
		Description: "test repository",
		HasIssues:   true,
		HasProjects: true,
		HasWiki:     true,
	}
}

func TestCreateRepository(t *testing.T) {
	t.Run("Created repository", func(t *testing.T) {
		var gotAuth, gotAccept, gotContentType string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Method, http.MethodPost)
			gt.Equal(t, r.URL.Path, "/user/repos")
			gotAuth = r.Header.Get("Authorization")
			gotAccept = r.Header.Get("Accept")
			gotContentType = r.Header.Get("Content-Type")
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"name": "Phoenix.Marie", "owner": {"login": "c04ch1337"}}`))
		}))
		defer server.Close()

		service := usecase.NewRepositoryService(usecase.WithBaseURL(server.URL))
		result, err := service.CreateRepository(context.Background(), "test-token", newCreateRequest())
		gt.NoError(t, err)
		gt.Equal(t, result.Created, true)

		gt.Equal(t, gotAuth, "token test-token")
		gt.Equal(t, gotAccept, "application/vnd.github.v3+json")
		gt.Equal(t, gotContentType, "application/json")
		gt.Equal(t, gotBody["name"], "Phoenix.Marie")
		gt.Equal(t, gotBody["auto_init"], false)

		repo := result.Repository(model.Repository{Owner: "fallback", Name: "fallback"})
		gt.Equal(t, repo.FullName(), "c04ch1337/Phoenix.Marie")
	})

	t.Run("Provider rejection with JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message": "name already exists"}`))
		}))
		defer server.Close()

		service := usecase.NewRepositoryService(usecase.WithBaseURL(server.URL))
		result, err := service.CreateRepository(context.Background(), "test-token", newCreateRequest())
		gt.NoError(t, err)
		gt.Equal(t, result.Created, false)
		gt.Equal(t, result.Message(), "name already exists")
	})

	t.Run("Provider rejection with non-JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("Internal Server Error"))
		}))
		defer server.Close()

		service := usecase.NewRepositoryService(usecase.WithBaseURL(server.URL))
		result, err := service.CreateRepository(context.Background(), "test-token", newCreateRequest())
		gt.NoError(t, err)
		gt.Equal(t, result.Created, false)
		gt.Equal(t, result.Message(), "Internal Server Error")
	})

	t.Run("Transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		service := usecase.NewRepositoryService(usecase.WithBaseURL(server.URL))
		_, err := service.CreateRepository(context.Background(), "test-token", newCreateRequest())
		gt.Error(t, err)
	})
}
