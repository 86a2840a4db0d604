package cli

import (
	"context"
	"fmt"

	"github.com/c04ch1337/repoinit/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// NewCheckCommand creates the check subcommand, a read-only preflight for
// the create flow.
func NewCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Verify the token and report whether the repository already exists",
		ArgsUsage: "[TOKEN]",
		Flags:     DefineFlags(),
		Action:    runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	ctx = withLogger(ctx, cmd)

	config := ConfigFromCommand(cmd)
	repo := config.Repository()

	token, err := usecase.ResolveToken(cmd.Args().First())
	if err != nil {
		fmt.Println(usecase.TokenUsage)
		return err
	}

	status, err := usecase.NewCheckService().Check(ctx, token, repo)
	if err != nil {
		return err
	}

	fmt.Printf("Authenticated as: %s\n", status.Login)
	if status.Exists {
		fmt.Printf("Repository %s already exists\n", repo.FullName())
	} else {
		fmt.Printf("Repository %s does not exist yet\n", repo.FullName())
	}
	return nil
}
