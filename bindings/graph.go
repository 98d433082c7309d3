package bindings

import (
	"fmt"
	"io"
	"strings"

	"github.com/VeeLume/streamdeck-sc-mapper/internal/xmltree"
	"github.com/VeeLume/streamdeck-sc-mapper/logging"
)

// Graph is the in-memory model of a full binding profile: every action map in
// document order plus the shared activation-mode arena. Every activation index
// stored in the graph points into Activation; any operation that resets the
// arena must rebuild or re-resolve those indexes.
type Graph struct {
	Maps       []*ActionMap    `json:"actionMaps"`
	Activation ActivationArena `json:"activation"`

	byName map[string]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]int)}
}

// Map returns the named action map.
func (g *Graph) Map(name string) (*ActionMap, bool) {
	idx, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return g.Maps[idx], true
}

// BindingByID looks up an action by its map-qualified id ("actionmap.action").
func (g *Graph) BindingByID(id string) (*ActionBinding, bool) {
	mapName, actionName, ok := strings.Cut(id, ".")
	if !ok {
		return nil, false
	}
	m, ok := g.Map(mapName)
	if !ok {
		return nil, false
	}
	return m.Action(actionName)
}

// ActionCount returns the number of actions across all maps.
func (g *Graph) ActionCount() int {
	n := 0
	for _, m := range g.Maps {
		n += len(m.Actions)
	}
	return n
}

func (g *Graph) addMap(m *ActionMap) {
	if g.byName == nil {
		g.byName = make(map[string]int)
	}
	if idx, ok := g.byName[m.Name]; ok {
		g.Maps[idx] = m
		return
	}
	g.byName[m.Name] = len(g.Maps)
	g.Maps = append(g.Maps, m)
}

// rebuildIndexes recreates every derived lookup: the map index, each map's
// action index, and the arena's name and semantic indexes.
func (g *Graph) rebuildIndexes() {
	g.byName = make(map[string]int, len(g.Maps))
	for idx, m := range g.Maps {
		g.byName[m.Name] = idx
		m.rebuildIndex()
	}
	g.Activation.RebuildIndexes()
}

// BuildOptions controls graph construction from a default profile.
type BuildOptions struct {
	// SkipActionMaps names action maps to leave out of the graph.
	SkipActionMaps map[string]bool

	// UICategories maps action-map names to a UI category used when the
	// map carries no explicit UICategory attribute.
	UICategories map[string]string
}

// DefaultBuildOptions returns the built-in skip list and category table.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		SkipActionMaps: defaultSkipActionMaps(),
		UICategories:   defaultUICategories(),
	}
}

// BuildGraph parses a default binding profile into a fresh graph.
//
// Named timing definitions are collected into the arena first so later name
// references resolve, then every non-skipped actionmap element is built.
// Unparseable actions and binds are logged as warnings and skipped; only a
// structurally broken document is fatal. Arena indexes are rebuilt once after
// construction.
func BuildGraph(r io.Reader, opts BuildOptions, log logging.Logger) (*Graph, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("loading default profile: %w", err)
	}

	g := NewGraph()

	for _, node := range root.Descendants("ActivationMode") {
		g.Activation.InsertOrGet(modeFromNode(node, true))
	}

	for _, node := range root.Descendants("actionmap") {
		name := node.AttrValue("name")
		if name == "" {
			log.Warnf("skipping actionmap without name")
			continue
		}
		if opts.SkipActionMaps[name] {
			continue
		}

		m, warnings, err := actionMapFromNode(node, &g.Activation, opts.UICategories)
		if err != nil {
			log.Warnf("skipping actionmap %q: %v", name, err)
			continue
		}
		g.addMap(m)
		for _, w := range warnings {
			log.Warnf("default profile, actionmap %q: %v", name, w)
		}
	}

	g.Activation.RebuildIndexes()

	log.Infof("loaded %d actions in %d maps, %d activation modes",
		g.ActionCount(), len(g.Maps), g.Activation.Len())

	return g, nil
}

// ApplyCustomProfile overlays a user rebind document onto the graph.
//
// For every action the document names, a fresh Binds value is built from its
// rebind entries and replaces the action's custom binds wholesale. Devices
// other than keyboard and mouse instances are ignored, malformed rebinds are
// warned and skipped individually, and actions unknown to the graph are
// silently dropped.
func (g *Graph) ApplyCustomProfile(r io.Reader, log logging.Logger) error {
	root, err := xmltree.Parse(r)
	if err != nil {
		return fmt.Errorf("loading custom profile: %w", err)
	}

	for _, mapNode := range root.Descendants("actionmap") {
		mapName := mapNode.AttrValue("name")
		if mapName == "" {
			continue
		}

		for _, actionNode := range mapNode.ChildrenByTag("action") {
			actionName := actionNode.AttrValue("name")
			if actionName == "" {
				continue
			}

			binds := g.rebindsOf(actionNode, mapName, actionName, log)

			m, ok := g.Map(mapName)
			if !ok {
				continue
			}
			action, ok := m.Action(actionName)
			if !ok {
				continue
			}
			action.CustomBinds = binds
		}
	}

	return nil
}

// rebindsOf builds the replacement Binds for one <action> in a custom
// profile. The input attribute starts with a 3-character device tag ("kb1",
// "mo1") followed by the token grammar.
func (g *Graph) rebindsOf(actionNode *xmltree.Node, mapName, actionName string, log logging.Logger) *Binds {
	binds := &Binds{}

	for _, rebind := range actionNode.ChildrenByTag("rebind") {
		raw := strings.TrimSpace(rebind.AttrValue("input"))
		if len(raw) < 3 {
			log.Warnf("custom profile %s.%s: bad rebind input %q", mapName, actionName, raw)
			continue
		}
		device := raw[:3]

		mode := NoActivation
		if name, ok := rebind.Attr("activationMode"); ok {
			if idx, found := g.Activation.FindByName(name); found {
				mode = idx
			}
		}

		bind, err := ParseBind(raw, mode)
		if err != nil {
			log.Warnf("custom profile %s.%s: %v", mapName, actionName, err)
			continue
		}

		switch device {
		case "kb1":
			binds.Keyboard = append(binds.Keyboard, bind)
		case "mo1":
			binds.Mouse = append(binds.Mouse, bind)
		default:
			log.Warnf("custom profile %s.%s: ignoring device %q", mapName, actionName, device)
		}
	}

	return binds
}
