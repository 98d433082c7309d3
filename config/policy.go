// Package config loads the optional mapper policy file.
//
// The policy is a TOML document that tunes graph construction and bind
// generation: which action maps to skip, category fallbacks, the generator's
// key and modifier pools, denied combinations, and category collision rules.
// Every field is optional; absent fields keep their built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/VeeLume/streamdeck-sc-mapper/bindings"
	"github.com/VeeLume/streamdeck-sc-mapper/input"
)

// Policy is the decoded policy document.
type Policy struct {
	Build     BuildPolicy     `toml:"build"`
	Generator GeneratorPolicy `toml:"generator"`
}

// BuildPolicy tunes graph construction.
type BuildPolicy struct {
	// SkipActionMaps replaces the built-in skip list when non-nil.
	SkipActionMaps []string `toml:"skip_action_maps"`

	// UICategories adds to or overrides the built-in fallback table.
	UICategories map[string]string `toml:"ui_categories"`
}

// GeneratorPolicy tunes bind generation. Keys and modifiers are written as
// bind tokens ("f1", "np_add", "lshift").
type GeneratorPolicy struct {
	CandidateKeys      []string            `toml:"candidate_keys"`
	CandidateModifiers []string            `toml:"candidate_modifiers"`
	DenyCombos         []string            `toml:"deny_combos"`
	CategoryGroups     map[string][]string `toml:"category_groups"`
	ForbiddenModifiers map[string][]string `toml:"forbidden_modifiers"`
}

// ParseError reports a policy file that exists but cannot be used.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("policy %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadPolicy reads the policy file at path. A missing file is not an error;
// it returns (nil, nil) and callers fall back to the defaults.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading policy %s: %w", path, err)
	}
	return ParsePolicy(path, data)
}

// ParsePolicy decodes policy TOML. The source name is used in errors only.
func ParsePolicy(source string, data []byte) (*Policy, error) {
	var p Policy
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return &p, nil
}

// BuildOptions merges the policy over the built-in build defaults. A nil
// policy returns the defaults unchanged.
func (p *Policy) BuildOptions() bindings.BuildOptions {
	opts := bindings.DefaultBuildOptions()
	if p == nil {
		return opts
	}

	if p.Build.SkipActionMaps != nil {
		skip := make(map[string]bool, len(p.Build.SkipActionMaps))
		for _, name := range p.Build.SkipActionMaps {
			skip[name] = true
		}
		opts.SkipActionMaps = skip
	}
	for name, category := range p.Build.UICategories {
		opts.UICategories[name] = category
	}
	return opts
}

// GeneratorOptions merges the policy over the built-in generator defaults.
// Token fields that fail to parse make the whole merge fail rather than
// silently shrinking a pool. A nil policy returns the defaults unchanged.
func (p *Policy) GeneratorOptions() (bindings.GeneratorOptions, error) {
	opts := bindings.DefaultGeneratorOptions()
	if p == nil {
		return opts, nil
	}

	if p.Generator.CandidateKeys != nil {
		keys, err := parseKeyTokens(p.Generator.CandidateKeys)
		if err != nil {
			return opts, fmt.Errorf("candidate_keys: %w", err)
		}
		opts.CandidateKeys = keys
	}
	if p.Generator.CandidateModifiers != nil {
		mods, err := parseKeyTokens(p.Generator.CandidateModifiers)
		if err != nil {
			return opts, fmt.Errorf("candidate_modifiers: %w", err)
		}
		opts.CandidateModifiers = mods
	}
	if p.Generator.DenyCombos != nil {
		combos := make([]bindings.Bind, 0, len(p.Generator.DenyCombos))
		for _, raw := range p.Generator.DenyCombos {
			bind, err := bindings.ParseBind(raw, bindings.NoActivation)
			if err != nil {
				return opts, fmt.Errorf("deny_combos: %w", err)
			}
			combos = append(combos, bind)
		}
		opts.DenyCombos = combos
	}
	if p.Generator.CategoryGroups != nil {
		opts.CategoryGroups = p.Generator.CategoryGroups
	}
	if p.Generator.ForbiddenModifiers != nil {
		forbidden := make(map[string][]input.Key, len(p.Generator.ForbiddenModifiers))
		for category, tokens := range p.Generator.ForbiddenModifiers {
			mods, err := parseKeyTokens(tokens)
			if err != nil {
				return opts, fmt.Errorf("forbidden_modifiers[%s]: %w", category, err)
			}
			forbidden[category] = mods
		}
		opts.ForbiddenModifiers = forbidden
	}
	return opts, nil
}

func parseKeyTokens(tokens []string) ([]input.Key, error) {
	keys := make([]input.Key, 0, len(tokens))
	for _, token := range tokens {
		key, ok := input.ParseKey(token)
		if !ok {
			return nil, fmt.Errorf("unknown key token %q", strings.TrimSpace(token))
		}
		keys = append(keys, key)
	}
	return keys, nil
}
