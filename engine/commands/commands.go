// Package commands provides the CLI command packages of netprofile.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory:
//
//	cmds := commands.New(lggr)
//	networksCmd, err := cmds.Networks(commands.NetworksConfig{})
//	configCmd, err := cmds.Config(commands.ConfigConfig{})
//
// 2. Via direct package imports, which allows injecting dependencies for testing:
//
//	import "github.com/smartcontractkit/netprofile/engine/commands/networks"
//
//	cmd, err := networks.NewCommand(networks.Config{
//	    Logger: lggr,
//	    Deps:   networks.Deps{ConfigLoader: myLoader},
//	})
package commands

import (
	"github.com/spf13/cobra"

	cfgcmd "github.com/smartcontractkit/netprofile/engine/commands/config"
	"github.com/smartcontractkit/netprofile/engine/commands/networks"
	"github.com/smartcontractkit/netprofile/engine/config/network"
	"github.com/smartcontractkit/netprofile/pkg/logger"
)

// Commands is a factory for CLI commands sharing one logger.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// NetworksConfig holds configuration for the networks command.
type NetworksConfig struct {
	// Chains overrides the built-in chain table when set.
	Chains []network.Chain
}

// Networks creates the networks command.
func (c *Commands) Networks(cfg NetworksConfig) (*cobra.Command, error) {
	return networks.NewCommand(networks.Config{
		Logger: c.lggr,
		Deps:   networks.Deps{Chains: cfg.Chains},
	})
}

// ConfigConfig holds configuration for the config command.
type ConfigConfig struct {
	// Chains overrides the built-in chain table when set.
	Chains []network.Chain
}

// Config creates the config command.
func (c *Commands) Config(cfg ConfigConfig) (*cobra.Command, error) {
	return cfgcmd.NewCommand(cfgcmd.Config{
		Logger: c.lggr,
		Deps: cfgcmd.Deps{
			Networks: networks.Deps{Chains: cfg.Chains},
		},
	})
}

// All creates every command of the CLI.
func (c *Commands) All() ([]*cobra.Command, error) {
	networksCmd, err := c.Networks(NetworksConfig{})
	if err != nil {
		return nil, err
	}

	configCmd, err := c.Config(ConfigConfig{})
	if err != nil {
		return nil, err
	}

	return []*cobra.Command{networksCmd, configCmd}, nil
}
