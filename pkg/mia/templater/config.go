package templater

import (
	"fmt"
	"sort"
)

// DefaultLogo is the logo set used when none is named.
const DefaultLogo = "debug"

// Config is the validated input of one materialization run.
type Config struct {
	identity Identity
	logo     string
	enabled  map[string]bool
}

// NewConfig validates identity and the feature names and returns the run
// configuration. An empty logo selects DefaultLogo.
func NewConfig(identity Identity, logo string, features ...string) (Config, error) {
	if err := identity.Validate(); err != nil {
		return Config{}, err
	}
	if logo == "" {
		logo = DefaultLogo
	}

	enabled := make(map[string]bool, len(features))
	for _, name := range features {
		if _, ok := LookupFeature(name); !ok {
			return Config{}, fmt.Errorf("unknown feature %q", name)
		}
		enabled[name] = true
	}

	return Config{identity: identity, logo: logo, enabled: enabled}, nil
}

// Identity returns the package identity.
func (c Config) Identity() Identity { return c.identity }

// Logo returns the logo set name.
func (c Config) Logo() string { return c.logo }

// Enabled reports whether the named feature is switched on.
func (c Config) Enabled(name string) bool { return c.enabled[name] }

// EnabledFeatures returns the enabled feature names, sorted.
func (c Config) EnabledFeatures() []string {
	names := make([]string, 0, len(c.enabled))
	for name := range c.enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mapping returns the identity tokens followed by the sentinel rules of
// every feature's active variant.
func (c Config) Mapping() Mapping {
	id := c.identity
	m := NewMapping(
		Rule{TokenPackageUnderscored, id.Underscored()},
		Rule{TokenPackageDotted, id.Dotted()},
		Rule{TokenPackageSlashed, id.Slashed()},
		Rule{TokenAppName, id.AppName},
	)
	for _, f := range Features {
		f.strip(&m, c.Enabled(f.Name))
	}
	return m
}
