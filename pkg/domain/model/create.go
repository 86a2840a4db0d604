package model

// CreateRequest is the JSON payload for the repository creation endpoint.
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	HasIssues   bool   `json:"has_issues"`
	HasProjects bool   `json:"has_projects"`
	HasWiki     bool   `json:"has_wiki"`
	AutoInit    bool   `json:"auto_init"`
}

// CreateResult is the outcome of one creation attempt. Created reports
// whether the provider answered with a 2xx status; Body holds the parsed
// response either way. A non-JSON error body is wrapped as
// {"message": <raw text>} before it reaches here.
type CreateResult struct {
	Created bool
	Body    map[string]any
}

func (r *CreateResult) Message() string {
	if msg, ok := r.Body["message"].(string); ok {
		return msg
	}
	return ""
}

// Repository extracts the created repository's identity from the response
// body, falling back to the given one for fields the provider omitted.
func (r *CreateResult) Repository(fallback Repository) Repository {
	repo := fallback
	if name, ok := r.Body["name"].(string); ok && name != "" {
		repo.Name = name
	}
	if owner, ok := r.Body["owner"].(map[string]any); ok {
		if login, ok := owner["login"].(string); ok && login != "" {
			repo.Owner = login
		}
	}
	return repo
}
