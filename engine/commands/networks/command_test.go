package networks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/netprofile/engine/config/env"
	"github.com/smartcontractkit/netprofile/engine/config/network"
	"github.com/smartcontractkit/netprofile/pkg/logger"
)

// staticLoader returns a ConfigLoaderFunc that decodes vars and records the arguments it was
// called with.
func staticLoader(vars map[string]string, gotPath *string, gotDotenv *[]string) ConfigLoaderFunc {
	return func(filePath string, dotenvPaths ...string) (*env.Config, error) {
		if gotPath != nil {
			*gotPath = filePath
		}
		if gotDotenv != nil {
			*gotDotenv = dotenvPaths
		}

		return env.LoadSnapshot(env.NewSnapshot(vars))
	}
}

var credentialVars = map[string]string{
	"RPC_ACCESS_KEY":     "abc123",
	"SIGNER_PRIVATE_KEY": "deadbeef",
}

func TestNewCommand_Structure(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{Logger: logger.Nop()})
	require.NoError(t, err)

	assert.Equal(t, "networks", cmd.Use)
	assert.Equal(t, networksShort, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)

	for _, name := range []string{"env-file", "config", "format", "out", "print"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestNewCommand_MissingLogger(t *testing.T) {
	t.Parallel()

	_, err := NewCommand(Config{})
	require.EqualError(t, err, "logger is required")
}

func TestNetworks_LocalOnly(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{
		Logger: logger.Test(t),
		Deps:   Deps{ConfigLoader: staticLoader(map[string]string{"RPC_ACCESS_KEY": "abc123"}, nil, nil)},
	})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var got network.ProfileSet
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, network.ProfileSet{network.LocalNetworkName: network.LocalProfile()}, got)
	assert.NotContains(t, out.String(), "abc123")
}

func TestNetworks_WithCredentials(t *testing.T) {
	t.Parallel()

	var (
		gotPath   string
		gotDotenv []string
	)

	cmd, err := NewCommand(Config{
		Logger: logger.Test(t),
		Deps:   Deps{ConfigLoader: staticLoader(credentialVars, &gotPath, &gotDotenv)},
	})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"-f", "json", "-c", "netprofile.yml", "--env-file", "a.env", "--env-file", "b.env"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "netprofile.yml", gotPath)
	assert.Equal(t, []string{"a.env", "b.env"}, gotDotenv)

	var got network.ProfileSet
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got)) // JSON is valid YAML

	assert.Len(t, got, len(network.DefaultChains())+1)
	assert.Equal(t, []string{"0xdeadbeef"}, got["goerli"].Accounts)
	assert.Contains(t, got["goerli"].URL, "abc123")
}

func TestNetworks_MalformedOptionalSettings(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"RPC_ACCESS_KEY":      "abc123",
		"SIGNER_PRIVATE_KEY":  "deadbeef",
		"REPORT_GAS":          "garbage",
		"ALT_BACKEND_ENABLED": "maybe",
	}

	cmd, err := NewCommand(Config{
		Logger: logger.Test(t),
		Deps:   Deps{ConfigLoader: staticLoader(vars, nil, nil)},
	})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var got network.ProfileSet
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))

	assert.Len(t, got, len(network.DefaultChains())+1)
	for name, p := range got {
		assert.Nil(t, p.ZkSync, name)
	}
}

func TestNetworks_WriteFile(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{
		Logger: logger.Nop(),
		Deps:   Deps{ConfigLoader: staticLoader(credentialVars, nil, nil)},
	})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)

	path := filepath.Join(t.TempDir(), "networks.yaml")
	cmd.SetArgs([]string{"-o", path, "--print=false"})
	require.NoError(t, cmd.Execute())

	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got network.ProfileSet
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.NoError(t, got.Validate())
	assert.Len(t, got, len(network.DefaultChains())+1)
}

func TestNetworks_CustomChains(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{
		Logger: logger.Nop(),
		Deps: Deps{
			ConfigLoader: staticLoader(credentialVars, nil, nil),
			Chains: []network.Chain{{
				Name:        "sepolia",
				ChainID:     11155111,
				URLTemplate: "https://sepolia.infura.io/v3/" + network.AccessKeyPlaceholder,
				Type:        network.NetworkTypeTestnet,
			}},
		},
	})
	require.NoError(t, err)

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var got network.ProfileSet
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []string{network.LocalNetworkName, "sepolia"}, got.Names())
}

func TestNetworks_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveLoader ConfigLoaderFunc
		giveArgs   []string
		wantErr    string
	}{
		{
			name:       "invalid format",
			giveLoader: staticLoader(credentialVars, nil, nil),
			giveArgs:   []string{"--format", "toml"},
			wantErr:    `unsupported output format "toml"`,
		},
		{
			name: "loader error",
			giveLoader: func(string, ...string) (*env.Config, error) {
				return nil, errors.New("boom")
			},
			wantErr: "failed to load env config: boom",
		},
		{
			name:       "unexpected argument",
			giveLoader: staticLoader(credentialVars, nil, nil),
			giveArgs:   []string{"mainnet"},
			wantErr:    `unknown command "mainnet"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := NewCommand(Config{
				Logger: logger.Nop(),
				Deps:   Deps{ConfigLoader: tt.giveLoader},
			})
			require.NoError(t, err)

			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(append([]string{}, tt.giveArgs...))

			require.ErrorContains(t, cmd.Execute(), tt.wantErr)
		})
	}
}
