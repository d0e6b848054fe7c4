package networks

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/netprofile/engine/commands/flags"
	"github.com/smartcontractkit/netprofile/engine/commands/output"
	"github.com/smartcontractkit/netprofile/engine/commands/text"
	"github.com/smartcontractkit/netprofile/engine/config/env"
	"github.com/smartcontractkit/netprofile/engine/config/network"
	"github.com/smartcontractkit/netprofile/pkg/logger"
)

// ConfigLoaderFunc loads the environment config from an optional config file and dotenv files.
type ConfigLoaderFunc func(filePath string, dotenvPaths ...string) (*env.Config, error)

// Deps holds the injectable dependencies of the networks command.
type Deps struct {
	// ConfigLoader loads the environment config. Defaults to env.LoadProcess.
	ConfigLoader ConfigLoaderFunc
	// Chains overrides the built-in chain table when set.
	Chains []network.Chain
}

func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = env.LoadProcess
	}
}

// Config holds the configuration of the networks command.
type Config struct {
	// Logger is the logger to use for diagnostics. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	Deps Deps
}

func (c Config) validate() error {
	if c.Logger == nil {
		return errors.New("logger is required")
	}

	return nil
}

var (
	networksShort = "Resolve the network profiles"

	networksLong = text.LongDesc(`
		Resolves the network profiles handed to the contract build tool.

		The local development network is always present. Remote networks are only resolved
		when both the RPC access key (RPC_ACCESS_KEY) and the signer key (SIGNER_PRIVATE_KEY)
		are set, either in the environment or in a dotenv file.
	`)

	networksExample = text.Examples(`
		# Print the resolved networks as YAML
		netprofile networks

		# Read credentials from a specific dotenv file and write JSON to a file
		netprofile networks --env-file deploy.env --format json -o networks.json --print=false
	`)
)

// NewCommand creates the networks command.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Deps.applyDefaults()

	cmd := &cobra.Command{
		Use:     "networks",
		Short:   networksShort,
		Long:    networksLong,
		Example: networksExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNetworks(cmd, cfg)
		},
	}

	flags.EnvFile(cmd)
	flags.Config(cmd)
	flags.Format(cmd)
	flags.Output(cmd, "")
	flags.Print(cmd)

	return cmd, nil
}

func runNetworks(cmd *cobra.Command, cfg Config) error {
	format, err := output.ParseFormat(flags.MustString(cmd.Flags().GetString("format")))
	if err != nil {
		return err
	}

	_, set, err := Resolve(cmd, cfg)
	if err != nil {
		return err
	}

	data, err := output.Encode(set, format)
	if err != nil {
		return err
	}

	return output.Emit(cmd, data,
		flags.MustString(cmd.Flags().GetString("out")),
		flags.MustBool(cmd.Flags().GetBool("print")),
	)
}

// Resolve loads the environment config named by the --config and --env-file flags of cmd and
// resolves the network profile set from it. The command must register both flags.
func Resolve(cmd *cobra.Command, cfg Config) (*env.Config, network.ProfileSet, error) {
	cfg.Deps.applyDefaults()

	envCfg, err := cfg.Deps.ConfigLoader(
		flags.MustString(cmd.Flags().GetString("config")),
		flags.MustStringArray(cmd.Flags().GetStringArray("env-file"))...,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load env config: %w", err)
	}

	opts := []network.ResolverOption{network.WithLogger(cfg.Logger)}
	if cfg.Deps.Chains != nil {
		opts = append(opts, network.WithChains(cfg.Deps.Chains...))
	}

	set, err := network.NewResolver(opts...).ResolveSet(envCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve networks: %w", err)
	}

	cfg.Logger.Infow("Resolved network profiles", "networks", set.Names())

	return envCfg, set, nil
}
