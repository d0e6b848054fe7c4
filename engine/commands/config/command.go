package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/netprofile/engine/commands/flags"
	"github.com/smartcontractkit/netprofile/engine/commands/networks"
	"github.com/smartcontractkit/netprofile/engine/commands/output"
	"github.com/smartcontractkit/netprofile/engine/commands/text"
	cfgtoolchain "github.com/smartcontractkit/netprofile/engine/config/toolchain"
	"github.com/smartcontractkit/netprofile/pkg/logger"
)

// DefaultProjectFile is the project file read when --project is not given.
const DefaultProjectFile = "toolchain.toml"

// Deps holds the injectable dependencies of the config command.
type Deps struct {
	// Networks holds the dependencies used to resolve the networks.
	Networks networks.Deps
	// ProjectLoader loads the project file. Defaults to toolchain.LoadProject.
	ProjectLoader func(path string) (cfgtoolchain.Project, error)
}

func (d *Deps) applyDefaults() {
	if d.ProjectLoader == nil {
		d.ProjectLoader = cfgtoolchain.LoadProject
	}
}

// Config holds the configuration of the config command.
type Config struct {
	// Logger is the logger to use for diagnostics. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	Deps Deps
}

var (
	configShort = "Render the build tool configuration"

	configLong = text.LongDesc(`
		Renders the complete configuration document of the contract build tool.

		The document combines the project file (compiler and paths), the resolved network
		profiles and the environment settings of the gas reporter and block explorer.
		Without a project file the default project settings are used.
	`)

	configExample = text.Examples(`
		# Render the configuration using ./toolchain.toml and ./.env
		netprofile config

		# Render JSON from a custom project file
		netprofile config --project contracts/toolchain.toml --format json
	`)
)

// NewCommand creates the config command.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}

	cfg.Deps.applyDefaults()

	cmd := &cobra.Command{
		Use:     "config",
		Short:   configShort,
		Long:    configLong,
		Example: configExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, cfg)
		},
	}

	cmd.Flags().StringP("project", "p", DefaultProjectFile, "Project file with compiler and path settings")
	flags.EnvFile(cmd)
	flags.Config(cmd)
	flags.Format(cmd)
	flags.Output(cmd, "")
	flags.Print(cmd)

	return cmd, nil
}

func runConfig(cmd *cobra.Command, cfg Config) error {
	format, err := output.ParseFormat(flags.MustString(cmd.Flags().GetString("format")))
	if err != nil {
		return err
	}

	project, err := loadProject(cmd, cfg)
	if err != nil {
		return err
	}

	envCfg, set, err := networks.Resolve(cmd, networks.Config{
		Logger: cfg.Logger,
		Deps:   cfg.Deps.Networks,
	})
	if err != nil {
		return err
	}

	doc, err := cfgtoolchain.Build(project, envCfg, set)
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}

	data, err := output.Encode(doc, format)
	if err != nil {
		return err
	}

	return output.Emit(cmd, data,
		flags.MustString(cmd.Flags().GetString("out")),
		flags.MustBool(cmd.Flags().GetBool("print")),
	)
}

// loadProject loads the project file. A missing default project file falls back to the default
// project, while a missing explicitly named file is an error.
func loadProject(cmd *cobra.Command, cfg Config) (cfgtoolchain.Project, error) {
	path := flags.MustString(cmd.Flags().GetString("project"))

	if !cmd.Flags().Changed("project") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			cfg.Logger.Infow("Project file not found, using default project settings", "path", path)

			return cfgtoolchain.DefaultProject(), nil
		}
	}

	project, err := cfg.Deps.ProjectLoader(path)
	if err != nil {
		return cfgtoolchain.Project{}, fmt.Errorf("failed to load project: %w", err)
	}

	return project, nil
}
