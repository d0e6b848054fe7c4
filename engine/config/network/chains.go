package network

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// NetworkType classifies a network profile.
type NetworkType string

const (
	NetworkTypeMainnet NetworkType = "mainnet"
	NetworkTypeTestnet NetworkType = "testnet"
	NetworkTypeLocal   NetworkType = "local"
)

// AccessKeyPlaceholder is replaced by the RPC access key in a chain's URL template.
const AccessKeyPlaceholder = "{accessKey}"

// Chain is a supported remote chain. Adding or removing a supported chain is a change to the
// chain table only.
type Chain struct {
	Name        string
	ChainID     uint64
	URLTemplate string
	Type        NetworkType
	// ZkSync is the default alternate backend flag for profiles built from this chain. A nil value
	// means the flag is absent from the profile. None of the built-in chains set it.
	ZkSync *bool
}

// URL returns the RPC endpoint for the chain with the access key substituted into the template.
func (c Chain) URL(accessKey string) string {
	return strings.Replace(c.URLTemplate, AccessKeyPlaceholder, accessKey, 1)
}

// Validate checks that the chain can produce a profile.
func (c Chain) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}

	if c.Name == LocalNetworkName {
		return fmt.Errorf("name %q is reserved for the local network", LocalNetworkName)
	}

	if c.ChainID == 0 {
		return errors.New("chain id is required")
	}

	if c.ChainID == LocalChainID {
		return fmt.Errorf("chain id %d is reserved for the local network", LocalChainID)
	}

	if n := strings.Count(c.URLTemplate, AccessKeyPlaceholder); n != 1 {
		return fmt.Errorf("url template must contain %s exactly once, found %d", AccessKeyPlaceholder, n)
	}

	if c.Type != NetworkTypeMainnet && c.Type != NetworkTypeTestnet {
		return fmt.Errorf("invalid network type %q", c.Type)
	}

	return nil
}

// ValidateChains validates every chain and checks that names and chain ids are unique.
func ValidateChains(chains []Chain) error {
	names := make(map[string]struct{}, len(chains))
	ids := make(map[uint64]string, len(chains))

	for _, c := range chains {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("chain %s: %w", c.Name, err)
		}

		if _, ok := names[c.Name]; ok {
			return fmt.Errorf("chain %s: duplicate name", c.Name)
		}
		names[c.Name] = struct{}{}

		if other, ok := ids[c.ChainID]; ok {
			return fmt.Errorf("chain %s: chain id %d already used by %s", c.Name, c.ChainID, other)
		}
		ids[c.ChainID] = c.Name
	}

	return nil
}

// defaultChains is the table of supported remote chains, in resolution order.
var defaultChains = []Chain{
	{
		Name:        "goerli",
		ChainID:     5,
		URLTemplate: "https://goerli.infura.io/v3/" + AccessKeyPlaceholder,
		Type:        NetworkTypeTestnet,
	},
	{
		Name:        "optimism_goerli",
		ChainID:     420,
		URLTemplate: "https://optimism-goerli.infura.io/v3/" + AccessKeyPlaceholder,
		Type:        NetworkTypeTestnet,
	},
	{
		Name:        "arbitrum_goerli",
		ChainID:     421613,
		URLTemplate: "https://arbitrum-goerli.infura.io/v3/" + AccessKeyPlaceholder,
		Type:        NetworkTypeTestnet,
	},
	{
		Name:        "arbitrum",
		ChainID:     42161,
		URLTemplate: "https://arbitrum-mainnet.infura.io/v3/" + AccessKeyPlaceholder,
		Type:        NetworkTypeMainnet,
	},
	{
		Name:        "optimism",
		ChainID:     10,
		URLTemplate: "https://optimism-mainnet.infura.io/v3/" + AccessKeyPlaceholder,
		Type:        NetworkTypeMainnet,
	},
	{
		Name:        "mainnet",
		ChainID:     1,
		URLTemplate: "https://mainnet.infura.io/v3/" + AccessKeyPlaceholder,
		Type:        NetworkTypeMainnet,
	},
}

// DefaultChains returns a copy of the built-in chain table.
func DefaultChains() []Chain {
	chains := slices.Clone(defaultChains)
	for i, c := range chains {
		chains[i].ZkSync = copyBool(c.ZkSync)
	}

	return chains
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}

	v := *b

	return &v
}
