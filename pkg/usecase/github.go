package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/c04ch1337/repoinit/pkg/domain"
	"github.com/c04ch1337/repoinit/pkg/domain/interfaces"
	"github.com/c04ch1337/repoinit/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

const defaultBaseURL = "https://api.github.com"

type RepositoryService struct {
	baseURL    string
	httpClient *http.Client
}

type RepositoryServiceOption func(*RepositoryService)

func WithBaseURL(baseURL string) RepositoryServiceOption {
	return func(s *RepositoryService) {
		s.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) RepositoryServiceOption {
	return func(s *RepositoryService) {
		s.httpClient = client
	}
}

func NewRepositoryService(opts ...RepositoryServiceOption) interfaces.RepositoryService {
	s := &RepositoryService{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRepository posts the descriptor to the authenticated-user repository
// endpoint. Any 2xx body is the created repository; an error status is
// returned as a CreateResult with Created=false, parsing the body as JSON
// and wrapping it as {"message": <raw text>} when it is not. Only transport
// faults surface as an error.
func (s *RepositoryService) CreateRepository(ctx context.Context, token string, req model.CreateRequest) (*model.CreateResult, error) {
	logger := ctxlog.From(ctx)

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/user/repos", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	httpReq.Header.Set("Authorization", "token "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	logger.Debug("create repository response",
		slog.String("name", req.Name),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var parsed map[string]any
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, domain.ErrAPIRequest.Wrap(err)
		}
		return &model.CreateResult{Created: true, Body: parsed}, nil
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = map[string]any{"message": string(body)}
	}
	return &model.CreateResult{Created: false, Body: parsed}, nil
}
