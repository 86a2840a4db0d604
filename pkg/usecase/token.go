package usecase

import (
	"os"

	"github.com/c04ch1337/repoinit/pkg/domain"
	"github.com/joho/godotenv"
)

const tokenEnvVar = "GITHUB_TOKEN"

// TokenUsage is printed when no credential could be resolved.
const TokenUsage = `GitHub personal access token required.
Get one at: https://github.com/settings/tokens
Token needs 'repo' scope

Usage:
  repoinit <GITHUB_TOKEN>
  or
  GITHUB_TOKEN=<token> repoinit`

// ResolveToken reads the access token from the GITHUB_TOKEN environment
// variable (a .env file is loaded first when present), falling back to the
// first positional argument. The token is returned as-is: format and scope
// are validated by the provider at request time, not here.
func ResolveToken(arg string) (string, error) {
	_ = godotenv.Load(".env")

	if token := os.Getenv(tokenEnvVar); token != "" {
		return token, nil
	}
	if arg != "" {
		return arg, nil
	}
	return "", domain.ErrCredential
}
