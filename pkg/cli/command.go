package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:      "repoinit",
		Usage:     "Create a GitHub repository and wire up the local git remote",
		Version:   "0.1.0",
		ArgsUsage: "[TOKEN]",
		Description: `repoinit creates a repository through the GitHub API and points the
local remote 'origin' at its SSH URL.

The access token is read from the GITHUB_TOKEN environment variable (a
.env file is honored), or from the first argument when the variable is
not set. The token needs 'repo' scope.`,
		Flags:  flags,
		Action: RunCreate,
		Commands: []*cli.Command{
			NewCheckCommand(),
		},
	}
}
