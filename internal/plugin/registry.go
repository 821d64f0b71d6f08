package plugin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Factory builds a plugin from its dependencies.
type Factory func(Deps) Plugin

// Registry maps plugin names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Builtin returns a registry holding every plugin shipped with the binary.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(PalworldName, func(d Deps) Plugin { return NewPalworld(d) })
	return r
}

// Register adds or replaces a factory. Names are case-insensitive.
func (r *Registry) Register(name string, f Factory) {
	r.factories[strings.ToLower(name)] = f
}

// Names returns the registered plugin names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named plugin and checks it against hostVersion.
func (r *Registry) Lookup(name, hostVersion string, deps Deps) (Plugin, error) {
	f, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownPlugin, name, strings.Join(r.Names(), ", "))
	}

	deps = deps.withDefaults()
	p := f(deps)
	info := p.Info()
	if err := CheckHostVersion(info.RequiresHost, hostVersion); err != nil {
		return nil, fmt.Errorf("plugin %s %s: %w", info.Name, info.Version, err)
	}
	deps.Log.WithField("plugin", info.Name).Debugf("loaded %s %s", info.DisplayName, info.Version)
	return p, nil
}

// CheckHostVersion reports whether host satisfies constraint. An empty
// constraint accepts every host, and development builds ("dev", "") accept
// every constraint.
func CheckHostVersion(constraint, host string) error {
	if constraint == "" || host == "" || host == "dev" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing host constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(host, "v"))
	if err != nil {
		return fmt.Errorf("parsing host version %q: %w", host, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: host %s does not satisfy %s", ErrIncompatible, host, constraint)
	}
	return nil
}
