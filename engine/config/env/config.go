package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Credentials holds the two secrets required to reach and transact on remote networks.
//
// WARNING: This data type contains sensitive fields. Its String and GoString methods redact the
// values, but the fields themselves must never be logged.
type Credentials struct {
	RPCAccessKey string // Secret: RPC provider access key, interpolated into endpoint URLs.
	SignerKey    string // Secret: Raw hex private key used to sign transactions.
}

// String implements fmt.Stringer and redacts the credential values.
func (c Credentials) String() string {
	return "Credentials{RPCAccessKey:<redacted>, SignerKey:<redacted>}"
}

// GoString implements fmt.GoStringer so that %#v also redacts the credential values.
func (c Credentials) GoString() string {
	return c.String()
}

// NetworkConfig is the configuration consumed by the network resolver.
//
// WARNING: This data type contains sensitive fields and should not be logged or set in file
// configuration.
type NetworkConfig struct {
	RPCAccessKey      string `mapstructure:"rpc_access_key" yaml:"rpc_access_key"`                         // Secret: RPC provider access key
	SignerKey         string `mapstructure:"signer_key" yaml:"signer_key"`                                 // Secret: The private key of the signer account
	AltBackendEnabled string `mapstructure:"alt_backend_enabled" yaml:"alt_backend_enabled,omitempty"` // Overrides the per network alternate backend flag when set
}

// GasReporterConfig configures the gas usage reporter of the build tool.
type GasReporterConfig struct {
	Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
	CoinMarketCapKey string `mapstructure:"coinmarketcap_key" yaml:"coinmarketcap_key"` // Secret: price feed API key
}

// EtherscanConfig configures contract verification on the block explorer.
type EtherscanConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"` // Secret: block explorer API key
}

// Config wraps the environment derived configuration of the toolchain.
type Config struct {
	Network     NetworkConfig     `mapstructure:"network" yaml:"network"`
	GasReporter GasReporterConfig `mapstructure:"gas_reporter" yaml:"gas_reporter"`
	Etherscan   EtherscanConfig   `mapstructure:"etherscan" yaml:"etherscan"`
}

// Credentials returns the remote network credentials. The second return value is false unless
// both the RPC access key and the signer key are non empty. The values are not interpreted.
func (c *Config) Credentials() (Credentials, bool) {
	creds := Credentials{
		RPCAccessKey: c.Network.RPCAccessKey,
		SignerKey:    c.Network.SignerKey,
	}

	if creds.RPCAccessKey == "" || creds.SignerKey == "" {
		return Credentials{}, false
	}

	return creds, true
}

// MissingCredentials returns the config keys of the credentials that are not set.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.Network.RPCAccessKey == "" {
		missing = append(missing, "network.rpc_access_key")
	}
	if c.Network.SignerKey == "" {
		missing = append(missing, "network.signer_key")
	}

	return missing
}

// ZkSyncOverride returns the alternate backend override, or nil when it is not set. When set, the
// override replaces the chain default of every remote profile, not only the zkSync chains.
//
// A value that is not boolean-like returns an error. Callers treat it as unset.
func (c *Config) ZkSyncOverride() (*bool, error) {
	if c.Network.AltBackendEnabled == "" {
		return nil, nil
	}

	b, err := ParseBool(c.Network.AltBackendEnabled)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", altBackendEnv, err)
	}

	return &b, nil
}

// Load loads the config from the file path and overrides it with any values present in the
// snapshot. If the file path is empty or the file does not exist, only the snapshot is used.
func Load(snap Snapshot, filePath string) (*Config, error) {
	v := viper.New()

	if filePath != "" {
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(filePath)

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	bindSnapshot(v, snap)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// LoadSnapshot loads the config from the snapshot only.
func LoadSnapshot(snap Snapshot) (*Config, error) {
	return Load(snap, "")
}

// LoadProcess captures the process environment seeded with the dotenv files and loads the config
// from it and the optional config file.
func LoadProcess(filePath string, dotenvPaths ...string) (*Config, error) {
	snap, err := CaptureSnapshot(dotenvPaths...)
	if err != nil {
		return nil, err
	}

	return Load(snap, filePath)
}

var (
	// envBindings maps config keys to the environment variables that can provide their value.
	//
	// The first name is the preferred one and the second (if present) is the legacy name used by
	// older project setups. The first variable set to a non empty value wins.
	envBindings = map[string][]string{
		"network.rpc_access_key":         {"RPC_ACCESS_KEY", "INFURA_API_KEY"},
		"network.signer_key":             {"SIGNER_PRIVATE_KEY", "BACKEND_PRIVATE_KEY"},
		"network.alt_backend_enabled":    {altBackendEnv},
		gasReporterEnabledKey:            {"REPORT_GAS"},
		"gas_reporter.coinmarketcap_key": {"COINMARKETCAP_API_KEY"},
		"etherscan.api_key":              {"ETHERSCAN_API_KEY"},
	}
)

const (
	altBackendEnv = "ALT_BACKEND_ENABLED"

	// gasReporterEnabledKey is only enabled by the exact value "true". Any other value disables it.
	gasReporterEnabledKey = "gas_reporter.enabled"
)

// bindSnapshot sets every bound config key that has a value in the snapshot. Values set this way
// take precedence over values read from a config file.
func bindSnapshot(v *viper.Viper, snap Snapshot) {
	for key, names := range envBindings {
		value, ok := snap.lookupFirst(names...)
		if !ok {
			continue
		}

		if key == gasReporterEnabledKey {
			v.Set(key, value == "true")

			continue
		}

		v.Set(key, value)
	}
}

// ParseBool parses a boolean-like env value. It accepts true/false, 1/0, yes/no and on/off in any
// case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}
