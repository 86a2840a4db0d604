package cli

import (
	"github.com/c04ch1337/repoinit/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

const (
	defaultOwner       = "c04ch1337"
	defaultName        = "Phoenix.Marie"
	defaultDescription = "Phoenix.Marie — 16 forever, Queen of the Hive. Eternal memory, protected by ORCH-DNA."
)

type Config struct {
	Owner       string
	Name        string
	Description string
	Private     bool
	HasIssues   bool
	HasProjects bool
	HasWiki     bool
	AutoInit    bool
	Dir         string
}

func NewConfig() *Config {
	return &Config{
		Owner:       defaultOwner,
		Name:        defaultName,
		Description: defaultDescription,
		HasIssues:   true,
		HasProjects: true,
		HasWiki:     true,
		Dir:         ".",
	}
}

func ConfigFromCommand(cmd *cli.Command) *Config {
	return &Config{
		Owner:       cmd.String("owner"),
		Name:        cmd.String("name"),
		Description: cmd.String("description"),
		Private:     cmd.Bool("private"),
		HasIssues:   cmd.Bool("issues"),
		HasProjects: cmd.Bool("projects"),
		HasWiki:     cmd.Bool("wiki"),
		AutoInit:    cmd.Bool("auto-init"),
		Dir:         cmd.String("dir"),
	}
}

func (c *Config) Repository() model.Repository {
	return model.Repository{
		Owner: c.Owner,
		Name:  c.Name,
	}
}

func (c *Config) ToCreateRequest() model.CreateRequest {
	return model.CreateRequest{
		Name:        c.Name,
		Description: c.Description,
		Private:     c.Private,
		HasIssues:   c.HasIssues,
		HasProjects: c.HasProjects,
		HasWiki:     c.HasWiki,
		AutoInit:    c.AutoInit,
	}
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "owner",
			Usage: "Account the repository belongs to, used for URLs",
			Value: defaultOwner,
		},
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Repository name",
			Value:   defaultName,
		},
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "Repository description",
			Value:   defaultDescription,
		},
		&cli.BoolFlag{
			Name:  "private",
			Usage: "Create a private repository",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "issues",
			Usage: "Enable issues",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "projects",
			Usage: "Enable projects",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "wiki",
			Usage: "Enable wiki",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "auto-init",
			Usage: "Let the provider create the initial commit",
			Value: false,
		},
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Local git repository directory",
			Value: ".",
		},
	}
}
