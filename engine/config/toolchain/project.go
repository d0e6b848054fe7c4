// Package toolchain assembles the configuration document handed to the contract build tool. It
// combines the static project settings with the environment config and the resolved networks.
package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Optimizer holds the compiler optimizer settings.
type Optimizer struct {
	Enabled bool `toml:"enabled"`
	Runs    int  `toml:"runs"`
}

// Solidity holds the compiler settings.
type Solidity struct {
	Version   string    `toml:"version"`
	Optimizer Optimizer `toml:"optimizer"`
}

// Paths holds the project directory layout, relative to the project root.
type Paths struct {
	Contracts string `toml:"contracts"`
	Tests     string `toml:"tests"`
	Cache     string `toml:"cache"`
	Artifacts string `toml:"artifacts"`
	Typechain string `toml:"typechain"`
}

// Project is the static project configuration read from the project TOML file.
type Project struct {
	Solidity Solidity `toml:"solidity"`
	Paths    Paths    `toml:"paths"`
}

// DefaultProject returns the project configuration used for any key missing from the file.
func DefaultProject() Project {
	return Project{
		Solidity: Solidity{
			Version: "0.8.17",
			Optimizer: Optimizer{
				Enabled: true,
				Runs:    200,
			},
		},
		Paths: Paths{
			Contracts: "contracts",
			Tests:     "test",
			Cache:     "cache",
			Artifacts: "build/contracts",
			Typechain: "build/typechain",
		},
	}
}

// LoadProject reads the project file at path over the defaults. Unknown keys are rejected.
func LoadProject(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	project := DefaultProject()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&project); err != nil {
		return Project{}, fmt.Errorf("failed to decode project file %s: %w", path, err)
	}

	if err := project.Validate(); err != nil {
		return Project{}, fmt.Errorf("invalid project file %s: %w", path, err)
	}

	return project, nil
}

// Validate checks that the compiler version and every path are set.
func (p Project) Validate() error {
	if p.Solidity.Version == "" {
		return errors.New("solidity version is required")
	}

	if p.Solidity.Optimizer.Runs < 0 {
		return errors.New("optimizer runs must not be negative")
	}

	paths := []struct{ name, value string }{
		{"contracts", p.Paths.Contracts},
		{"tests", p.Paths.Tests},
		{"cache", p.Paths.Cache},
		{"artifacts", p.Paths.Artifacts},
		{"typechain", p.Paths.Typechain},
	}
	for _, path := range paths {
		if path.value == "" {
			return fmt.Errorf("%s path is required", path.name)
		}
	}

	return nil
}
