package bindings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/VeeLume/streamdeck-sc-mapper/internal/xmltree"
)

// ErrMissingName indicates an action or action-map element without a name
// attribute.
var ErrMissingName = errors.New("missing name attribute")

// ActionBinding is one action's binding state: its defaults from the game
// profile and, when an overlay or the generator applied, its custom binds.
type ActionBinding struct {
	// ActionID is the map-qualified id, "actionmap.action".
	ActionID string `json:"actionId"`
	// ActionName is the bare action name.
	ActionName string `json:"actionName"`

	UILabel       string `json:"uiLabel,omitempty"`
	UIDescription string `json:"uiDescription,omitempty"`
	Category      string `json:"category,omitempty"`

	DefaultBinds Binds  `json:"defaultBinds"`
	CustomBinds  *Binds `json:"customBinds,omitempty"`

	// Activation is the action-level arena index used as a fallback for
	// binds without their own mode, or NoActivation.
	Activation int `json:"activation"`
}

// EffectiveBinds returns the custom binds when present, else the defaults.
func (b *ActionBinding) EffectiveBinds() *Binds {
	if b.CustomBinds != nil {
		return b.CustomBinds
	}
	return &b.DefaultBinds
}

// BindsLabel renders a human-readable summary of the effective binds,
// or "" when the action has none.
func (b *ActionBinding) BindsLabel() string {
	return b.EffectiveBinds().Label()
}

// HasActiveBind reports whether either the defaults or the custom overlay
// carry a bind that is not an explicit unbind.
func (b *ActionBinding) HasActiveBind() bool {
	return b.DefaultBinds.HasActiveBinds() || b.CustomBinds.HasActiveBinds()
}

func nonEmptyAttr(n *xmltree.Node, key string) string {
	return strings.TrimSpace(n.AttrValue(key))
}

// actionBindingFromNode builds an ActionBinding from an <action> element.
// Bind-level parse failures are returned alongside the binding; only a
// missing name is fatal for the element.
func actionBindingFromNode(node *xmltree.Node, mapName string, arena *ActivationArena) (*ActionBinding, []error, error) {
	name, ok := node.Attr("name")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, nil, fmt.Errorf("action in %q: %w", mapName, ErrMissingName)
	}
	name = strings.TrimSpace(name)

	defaults, bindErrs := bindsFromNode(node, arena)

	return &ActionBinding{
		ActionID:      mapName + "." + name,
		ActionName:    name,
		UILabel:       nonEmptyAttr(node, "UILabel"),
		UIDescription: nonEmptyAttr(node, "UIDescription"),
		Category:      nonEmptyAttr(node, "Category"),
		DefaultBinds:  defaults,
		Activation:    resolveActivation(node, nil, arena),
	}, bindErrs, nil
}

// ActionMap is a named group of actions: one control context.
type ActionMap struct {
	Name       string `json:"name"`
	Version    int    `json:"version"`
	UILabel    string `json:"uiLabel,omitempty"`
	UICategory string `json:"uiCategory,omitempty"`

	// Actions holds the map's bindings in document order.
	Actions []*ActionBinding `json:"actions"`

	byName map[string]int
}

// Action returns the named action binding.
func (m *ActionMap) Action(name string) (*ActionBinding, bool) {
	idx, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return m.Actions[idx], true
}

// addAction appends an action binding; a repeated name replaces the earlier
// entry in place, keeping document order.
func (m *ActionMap) addAction(b *ActionBinding) {
	if m.byName == nil {
		m.byName = make(map[string]int)
	}
	if idx, ok := m.byName[b.ActionName]; ok {
		m.Actions[idx] = b
		return
	}
	m.byName[b.ActionName] = len(m.Actions)
	m.Actions = append(m.Actions, b)
}

// rebuildIndex recreates the name lookup after a snapshot load.
func (m *ActionMap) rebuildIndex() {
	m.byName = make(map[string]int, len(m.Actions))
	for idx, a := range m.Actions {
		m.byName[a.ActionName] = idx
	}
}

// actionMapFromNode builds an ActionMap and its actions from an <actionmap>
// element. The UI category falls back from the explicit attribute to the
// given per-map-name table. Per-action failures are collected, not fatal.
func actionMapFromNode(node *xmltree.Node, arena *ActivationArena, uiCategories map[string]string) (*ActionMap, []error, error) {
	name, ok := node.Attr("name")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, nil, fmt.Errorf("actionmap: %w", ErrMissingName)
	}
	name = strings.TrimSpace(name)

	version := 1
	if raw, ok := node.Attr("version"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			version = v
		}
	}

	category := nonEmptyAttr(node, "UICategory")
	if category == "" {
		category = uiCategories[name]
	}

	m := &ActionMap{
		Name:       name,
		Version:    version,
		UILabel:    nonEmptyAttr(node, "UILabel"),
		UICategory: category,
	}

	var errs []error
	for _, actionNode := range node.ChildrenByTag("action") {
		binding, bindErrs, err := actionBindingFromNode(actionNode, name, arena)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m.addAction(binding)
		for _, e := range bindErrs {
			errs = append(errs, fmt.Errorf("action %q: %w", binding.ActionName, e))
		}
	}

	return m, errs, nil
}
