package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/c04ch1337/repoinit/pkg/domain/model"
	"github.com/c04ch1337/repoinit/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func RunCreate(ctx context.Context, cmd *cli.Command) error {
	ctx = withLogger(ctx, cmd)

	config := ConfigFromCommand(cmd)
	reporter := NewReporter(os.Stdout)

	fmt.Printf("Creating repository: %s\n\n", config.Repository().FullName())

	token, err := usecase.ResolveToken(cmd.Args().First())
	if err != nil {
		fmt.Println(usecase.TokenUsage)
		return err
	}

	create := usecase.NewCreateUseCase(usecase.CreateUseCaseOptions{
		GitHub:   usecase.NewRepositoryService(),
		Git:      usecase.NewGitClient(config.Dir),
		Reporter: reporter,
	})

	repo, err := create.Execute(ctx, token, config.ToCreateRequest(), config.Repository())
	if err != nil {
		return err
	}

	printNextSteps(repo)
	return nil
}

func withLogger(ctx context.Context, cmd *cli.Command) context.Context {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	return ctxlog.With(ctx, logger)
}

func printNextSteps(repo model.Repository) {
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  git add .")
	fmt.Printf("  git commit -m 'Initial commit: %s v1.0'\n", repo.Name)
	fmt.Println("  git branch -M main")
	fmt.Println("  git push -u origin main")
}
