package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrMissingLocalProfile is returned when a ProfileSet does not contain the local network.
var ErrMissingLocalProfile = errors.New("local network profile is missing")

// ProfileSet maps network names to their profiles. A resolved set always contains the local
// network. It is built once per invocation and must be treated as read-only.
//
// Both yaml.v3 and encoding/json encode map keys in sorted order, so encodings of equal sets are
// byte-identical.
type ProfileSet map[string]Profile

// Names returns the network names in sorted order.
func (s ProfileSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Local returns the local network profile.
func (s ProfileSet) Local() (Profile, bool) {
	p, ok := s[LocalNetworkName]

	return p, ok
}

// Remote returns the remote network profiles sorted by name.
func (s ProfileSet) Remote() []Profile {
	profiles := make([]Profile, 0, len(s))
	for _, name := range s.Names() {
		if p := s[name]; !p.IsLocal() {
			profiles = append(profiles, p)
		}
	}

	return profiles
}

// Validate ensures the local network is present and every profile is valid and stored under
// its own name.
func (s ProfileSet) Validate() error {
	if _, ok := s.Local(); !ok {
		return ErrMissingLocalProfile
	}

	for _, name := range s.Names() {
		p := s[name]
		if p.Name != name {
			return fmt.Errorf("network %s: stored under mismatched name %q", p.Name, name)
		}

		if err := p.Validate(); err != nil {
			return fmt.Errorf("network %s: %w", name, err)
		}
	}

	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface and restores profile names from the
// mapping keys.
func (s *ProfileSet) UnmarshalYAML(value *yaml.Node) error {
	raw := map[string]Profile{}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*s = withNames(raw)

	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface and restores profile names from the
// object keys.
func (s *ProfileSet) UnmarshalJSON(data []byte) error {
	raw := map[string]Profile{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = withNames(raw)

	return nil
}

func withNames(raw map[string]Profile) ProfileSet {
	set := make(ProfileSet, len(raw))
	for name, p := range raw {
		p.Name = name
		set[name] = p
	}

	return set
}
