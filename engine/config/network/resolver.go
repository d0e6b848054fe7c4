package network

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/netprofile/engine/config/env"
	"github.com/smartcontractkit/netprofile/pkg/logger"
)

// ErrReservedName is returned when a remote profile uses the name of the local network.
var ErrReservedName = errors.New("network name is reserved for the local network")

// CredentialView is the read-only input of the resolver. It is implemented by *env.Config.
type CredentialView interface {
	// Credentials returns the remote network credentials and whether both of them are present.
	Credentials() (env.Credentials, bool)
	// ZkSyncOverride returns the alternate backend override, or nil to keep the chain defaults.
	// A non nil override applies to every remote profile. An error is logged and the override is
	// ignored.
	ZkSyncOverride() (*bool, error)
}

// Resolver builds network profiles from a chain table.
type Resolver struct {
	chains []Chain
	lggr   logger.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithChains replaces the built-in chain table.
func WithChains(chains ...Chain) ResolverOption {
	return func(r *Resolver) {
		r.chains = chains
	}
}

// WithLogger sets the logger of the resolver. Defaults to a no-op logger.
func WithLogger(lggr logger.Logger) ResolverOption {
	return func(r *Resolver) {
		r.lggr = lggr
	}
}

// NewResolver creates a Resolver using the built-in chain table unless overridden.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		chains: DefaultChains(),
		lggr:   logger.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.lggr = r.lggr.Named("resolver")

	return r
}

// Chains returns a copy of the chain table of the resolver.
func (r *Resolver) Chains() []Chain {
	chains := make([]Chain, len(r.chains))
	copy(chains, r.chains)

	return chains
}

// Resolve builds one remote profile per chain when both credentials are present. When either
// credential is missing it returns nil and false, which is not an error: the caller falls back to
// the local network only.
//
// All returned profiles share the same Accounts slice holding the 0x prefixed signer key. The
// alternate backend override of the view, when set, replaces the zksync flag of every profile.
func (r *Resolver) Resolve(view CredentialView) (map[string]Profile, bool) {
	creds, ok := view.Credentials()
	if !ok {
		r.lggr.Info("Remote network credentials are not set, using the local network only")

		return nil, false
	}

	signer := formatSigner(creds.SignerKey)
	accounts := []string{signer}
	override, err := view.ZkSyncOverride()
	if err != nil {
		r.lggr.Warnw("Ignoring invalid alternate backend override, using the chain defaults", "error", err)
		override = nil
	}

	profiles := make(map[string]Profile, len(r.chains))
	for _, c := range r.chains {
		p := Profile{
			Name:     c.Name,
			Type:     c.Type,
			URL:      c.URL(creds.RPCAccessKey),
			ChainID:  c.ChainID,
			Accounts: accounts,
			ZkSync:   copyBool(c.ZkSync),
		}

		if override != nil {
			p.ZkSync = copyBool(override)
		}

		if sel, found := chainSelector(c.ChainID); found {
			p.ChainSelector = sel
		} else {
			r.lggr.Debugw("Chain id not found in chain selectors", "network", c.Name, "chainID", c.ChainID)
		}

		profiles[c.Name] = p
	}

	if addr, err := signerAddress(signer); err == nil {
		r.lggr.Infow("Resolved remote networks", "count", len(profiles), "signer", addr.Hex())
	} else {
		r.lggr.Infow("Resolved remote networks", "count", len(profiles))
		r.lggr.Debug("Signer key is not a secp256k1 private key, passing it through uninterpreted")
	}

	return profiles, true
}

// ResolveSet validates the chain table, resolves the remote profiles, merges them with the local
// network profile and validates the result.
func (r *Resolver) ResolveSet(view CredentialView) (ProfileSet, error) {
	if err := ValidateChains(r.chains); err != nil {
		return nil, fmt.Errorf("invalid chain table: %w", err)
	}

	remote, _ := r.Resolve(view)

	set, err := Merge(LocalProfile(), remote)
	if err != nil {
		return nil, err
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid network profiles: %w", err)
	}

	return set, nil
}

// Resolve resolves the remote profiles of the built-in chain table.
func Resolve(view CredentialView) (map[string]Profile, bool) {
	return NewResolver().Resolve(view)
}

// ResolveSet resolves the complete profile set of the built-in chain table.
func ResolveSet(view CredentialView) (ProfileSet, error) {
	return NewResolver().ResolveSet(view)
}

// Merge combines the local profile with the remote profiles into a single set keyed by name. A
// nil remote map yields a set holding only the local profile. A remote profile named like the
// local profile is rejected with ErrReservedName.
func Merge(local Profile, remote map[string]Profile) (ProfileSet, error) {
	set := make(ProfileSet, len(remote)+1)

	for name, p := range remote {
		if name == local.Name || p.Name == local.Name {
			return nil, fmt.Errorf("network %s: %w", name, ErrReservedName)
		}
		set[name] = p
	}

	set[local.Name] = local

	return set, nil
}
