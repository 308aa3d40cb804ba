// SPDX-License-Identifier: MIT

package policy

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the default environment prefix read by LoadEnv.
const EnvPrefix = "COMPOSES_"

// Load builds a Policy from the defaults overlaid with overrides.
// Unknown keys are ignored; values are decoded weakly, so "1e-10" works as well as 1e-10.
func Load(overrides map[string]interface{}) (Policy, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Policy{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Policy{}, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	return decode(k)
}

// LoadEnv builds a Policy from the defaults overlaid with environment
// variables carrying prefix (EnvPrefix when empty).
// Transform: COMPOSES_RANK_TOLERANCE -> rank_tolerance.
func LoadEnv(prefix string) (Policy, error) {
	if prefix == "" {
		prefix = EnvPrefix
	}
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Policy{}, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}), nil); err != nil {
		return Policy{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	return decode(k)
}

// LoadFile builds a Policy from the defaults overlaid with a YAML file, e.g.
//
//	rank_tolerance: 1e-10
//	pinv_rcond: 1e-12
//
// Keys missing from the file keep their defaults.
func LoadFile(path string) (Policy, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Policy{}, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Policy{}, fmt.Errorf("failed to load policy file %s: %w", path, err)
	}

	return decode(k)
}

// decode unmarshals k into a Policy and validates it.
func decode(k *koanf.Koanf) (Policy, error) {
	var p Policy
	if err := k.Unmarshal("", &p); err != nil {
		return Policy{}, fmt.Errorf("unable to decode policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}
