package network

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultChains(t *testing.T) {
	t.Parallel()

	chains := DefaultChains()
	require.NoError(t, ValidateChains(chains))

	names := make([]string, 0, len(chains))
	for _, c := range chains {
		names = append(names, c.Name)

		assert.Equal(t, 1, strings.Count(c.URLTemplate, AccessKeyPlaceholder), c.Name)
		assert.True(t, strings.HasSuffix(c.URLTemplate, "/v3/"+AccessKeyPlaceholder), c.Name)
	}

	assert.Equal(t, []string{
		"goerli", "optimism_goerli", "arbitrum_goerli", "arbitrum", "optimism", "mainnet",
	}, names)
}

func Test_DefaultChains_ReturnsCopy(t *testing.T) {
	t.Parallel()

	chains := DefaultChains()
	chains[0].Name = "mutated"
	chains[1].ZkSync = boolPtr(true)

	fresh := DefaultChains()
	assert.Equal(t, "goerli", fresh[0].Name)
	for _, c := range fresh {
		assert.Nil(t, c.ZkSync, c.Name)
	}
}

func Test_Chain_URL(t *testing.T) {
	t.Parallel()

	c := Chain{URLTemplate: "https://mainnet.infura.io/v3/" + AccessKeyPlaceholder}

	assert.Equal(t, "https://mainnet.infura.io/v3/abc123", c.URL("abc123"))
	assert.Equal(t, "https://mainnet.infura.io/v3/", c.URL(""))
}

func Test_Chain_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		giveFunc func(*Chain)
		wantErr  string
	}{
		{
			name:     "valid chain",
			giveFunc: func(c *Chain) {},
		},
		{
			name:     "missing name",
			giveFunc: func(c *Chain) { c.Name = "" },
			wantErr:  "name is required",
		},
		{
			name:     "reserved name",
			giveFunc: func(c *Chain) { c.Name = LocalNetworkName },
			wantErr:  `name "hardhat" is reserved for the local network`,
		},
		{
			name:     "missing chain id",
			giveFunc: func(c *Chain) { c.ChainID = 0 },
			wantErr:  "chain id is required",
		},
		{
			name:     "reserved chain id",
			giveFunc: func(c *Chain) { c.ChainID = LocalChainID },
			wantErr:  "chain id 1337 is reserved for the local network",
		},
		{
			name:     "missing placeholder",
			giveFunc: func(c *Chain) { c.URLTemplate = "https://mainnet.infura.io/v3/" },
			wantErr:  "url template must contain {accessKey} exactly once, found 0",
		},
		{
			name: "duplicated placeholder",
			giveFunc: func(c *Chain) {
				c.URLTemplate = "https://" + AccessKeyPlaceholder + ".infura.io/v3/" + AccessKeyPlaceholder
			},
			wantErr: "url template must contain {accessKey} exactly once, found 2",
		},
		{
			name:     "local type",
			giveFunc: func(c *Chain) { c.Type = NetworkTypeLocal },
			wantErr:  `invalid network type "local"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := Chain{
				Name:        "mainnet",
				ChainID:     1,
				URLTemplate: "https://mainnet.infura.io/v3/" + AccessKeyPlaceholder,
				Type:        NetworkTypeMainnet,
			}
			tt.giveFunc(&c)

			err := c.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_ValidateChains_Duplicates(t *testing.T) {
	t.Parallel()

	mainnet := DefaultChains()[5]

	dupName := mainnet
	dupName.ChainID = 2
	require.EqualError(t, ValidateChains([]Chain{mainnet, dupName}), "chain mainnet: duplicate name")

	dupID := mainnet
	dupID.Name = "ethereum"
	require.EqualError(t,
		ValidateChains([]Chain{mainnet, dupID}),
		"chain ethereum: chain id 1 already used by mainnet",
	)
}

func Test_DefaultChains_KnownSelectors(t *testing.T) {
	t.Parallel()

	for _, c := range DefaultChains() {
		sel, ok := chainSelector(c.ChainID)
		assert.True(t, ok, "chain %s (%d) has no chain selector", c.Name, c.ChainID)
		assert.NotZero(t, sel, c.Name)
	}

	_, ok := chainSelector(LocalChainID)
	assert.False(t, ok)
}
