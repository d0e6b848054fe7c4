package toolchain

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/netprofile/engine/config/env"
	"github.com/smartcontractkit/netprofile/engine/config/network"
)

const (
	gasReporterCurrency = "USD"
	typechainTarget     = "ethers-v5"
)

// externalArtifacts are the glob patterns of prebuilt artifacts the typings generator includes.
var externalArtifacts = []string{"externalArtifacts/*.json"}

// Document is the complete configuration handed to the build tool. Field names follow the
// tool's configuration schema.
type Document struct {
	Solidity    SoliditySettings   `json:"solidity" yaml:"solidity"`
	Paths       DocumentPaths      `json:"paths" yaml:"paths"`
	Networks    network.ProfileSet `json:"networks" yaml:"networks"`
	GasReporter GasReporter        `json:"gasReporter" yaml:"gasReporter"`
	Etherscan   Etherscan          `json:"etherscan" yaml:"etherscan"`
	Typechain   Typechain          `json:"typechain" yaml:"typechain"`
	Mocha       Mocha              `json:"mocha" yaml:"mocha"`
}

// SoliditySettings is the compiler section of the document.
type SoliditySettings struct {
	Version  string           `json:"version" yaml:"version"`
	Settings CompilerSettings `json:"settings" yaml:"settings"`
}

// CompilerSettings holds the settings passed to the compiler.
type CompilerSettings struct {
	Optimizer OptimizerSettings `json:"optimizer" yaml:"optimizer"`
}

// OptimizerSettings configures the compiler optimizer.
type OptimizerSettings struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// DocumentPaths is the directory layout section of the document.
type DocumentPaths struct {
	Sources   string `json:"sources" yaml:"sources"`
	Tests     string `json:"tests" yaml:"tests"`
	Cache     string `json:"cache" yaml:"cache"`
	Artifacts string `json:"artifacts" yaml:"artifacts"`
}

// GasReporter configures the gas usage report.
type GasReporter struct {
	Currency      string `json:"currency" yaml:"currency"`
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	CoinMarketCap string `json:"coinmarketcap,omitempty" yaml:"coinmarketcap,omitempty"`
}

// Etherscan configures contract verification.
type Etherscan struct {
	APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
}

// Typechain configures the typings generator.
type Typechain struct {
	OutDir                  string   `json:"outDir" yaml:"outDir"`
	Target                  string   `json:"target" yaml:"target"`
	AlwaysGenerateOverloads bool     `json:"alwaysGenerateOverloads" yaml:"alwaysGenerateOverloads"`
	ExternalArtifacts       []string `json:"externalArtifacts" yaml:"externalArtifacts"`
}

// Mocha configures the test runner.
type Mocha struct {
	Parallel bool `json:"parallel" yaml:"parallel"`
}

// Build assembles the document from the project settings, the environment config and the
// resolved networks. The networks must contain the local network profile.
func Build(project Project, cfg *env.Config, networks network.ProfileSet) (*Document, error) {
	if cfg == nil {
		return nil, errors.New("env config is required")
	}

	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}

	if err := networks.Validate(); err != nil {
		return nil, fmt.Errorf("invalid networks: %w", err)
	}

	return &Document{
		Solidity: SoliditySettings{
			Version: project.Solidity.Version,
			Settings: CompilerSettings{
				Optimizer: OptimizerSettings{
					Enabled: project.Solidity.Optimizer.Enabled,
					Runs:    project.Solidity.Optimizer.Runs,
				},
			},
		},
		Paths: DocumentPaths{
			Sources:   project.Paths.Contracts,
			Tests:     project.Paths.Tests,
			Cache:     project.Paths.Cache,
			Artifacts: project.Paths.Artifacts,
		},
		Networks: networks,
		GasReporter: GasReporter{
			Currency:      gasReporterCurrency,
			Enabled:       cfg.GasReporter.Enabled,
			CoinMarketCap: cfg.GasReporter.CoinMarketCapKey,
		},
		Etherscan: Etherscan{
			APIKey: cfg.Etherscan.APIKey,
		},
		Typechain: Typechain{
			OutDir:                  project.Paths.Typechain,
			Target:                  typechainTarget,
			AlwaysGenerateOverloads: false,
			ExternalArtifacts:       append([]string(nil), externalArtifacts...),
		},
		Mocha: Mocha{
			Parallel: true,
		},
	}, nil
}
