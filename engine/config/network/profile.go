package network

import (
	"errors"
	"fmt"
)

const (
	// LocalNetworkName is the reserved name of the local development network.
	LocalNetworkName = "hardhat"
	// LocalChainID is the reserved chain id of the local development network.
	LocalChainID uint64 = 1337
)

// Profile holds the connection parameters of one network in the form consumed by the build tool.
type Profile struct {
	// Name is the key of the profile in its ProfileSet. It is not encoded.
	Name string `json:"-" yaml:"-"`

	Type          NetworkType `json:"type" yaml:"type"`
	URL           string      `json:"url,omitempty" yaml:"url,omitempty"`
	ChainID       uint64      `json:"chainId" yaml:"chainId"`
	ChainSelector uint64      `json:"chainSelector,omitempty" yaml:"chainSelector,omitempty"`
	// Accounts holds the 0x prefixed signer keys. It is shared between the remote profiles of a
	// resolution and must not be modified.
	Accounts []string `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	// ZkSync marks a profile that targets the zkSync VM backend. Nil when the flag is absent.
	ZkSync                     *bool `json:"zksync,omitempty" yaml:"zksync,omitempty"`
	AllowUnlimitedContractSize bool  `json:"allowUnlimitedContractSize,omitempty" yaml:"allowUnlimitedContractSize,omitempty"`
}

// LocalProfile returns the profile of the in-process development network. It is always part of
// a resolved ProfileSet.
func LocalProfile() Profile {
	return Profile{
		Name:                       LocalNetworkName,
		Type:                       NetworkTypeLocal,
		ChainID:                    LocalChainID,
		AllowUnlimitedContractSize: true,
	}
}

// IsLocal returns true if the profile is the local development network.
func (p Profile) IsLocal() bool {
	return p.Name == LocalNetworkName
}

// Validate checks that the profile has the fields required by the build tool.
func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}

	if p.ChainID == 0 {
		return errors.New("chain id is required")
	}

	if p.IsLocal() {
		if p.ChainID != LocalChainID {
			return fmt.Errorf("local network must use chain id %d", LocalChainID)
		}

		return nil
	}

	if p.ChainID == LocalChainID {
		return fmt.Errorf("chain id %d is reserved for the local network", LocalChainID)
	}

	if p.URL == "" {
		return errors.New("url is required")
	}

	if len(p.Accounts) != 1 {
		return fmt.Errorf("exactly one account is required, got %d", len(p.Accounts))
	}

	return nil
}
