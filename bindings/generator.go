package bindings

import (
	"github.com/VeeLume/streamdeck-sc-mapper/input"
	"github.com/VeeLume/streamdeck-sc-mapper/logging"
)

// GeneratorOptions configures the pools and rules a Generator draws from.
// Slices are ordered: earlier keys and modifiers are preferred, which keeps
// generation deterministic for a given graph.
type GeneratorOptions struct {
	// CandidateKeys are main keys the generator may assign, in preference
	// order.
	CandidateKeys []input.Key

	// CandidateModifiers are modifiers the generator may combine with a
	// candidate key, in preference order.
	CandidateModifiers []input.Key

	// DenyCombos are binds that must never be produced.
	DenyCombos []Bind

	// CategoryGroups maps each UI category to the set of categories it
	// shares a collision domain with. A category absent from the map forms
	// a group of itself.
	CategoryGroups map[string][]string

	// ForbiddenModifiers bans modifiers per UI category. The effective ban
	// set for a category is the union over its group.
	ForbiddenModifiers map[string][]input.Key
}

// DefaultGeneratorOptions returns the built-in pools and category rules.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		CandidateKeys:      defaultCandidateKeys(),
		CandidateModifiers: defaultCandidateModifiers(),
		DenyCombos:         defaultDenyCombos(),
		CategoryGroups:     defaultCategoryGroups(),
		ForbiddenModifiers: defaultForbiddenModifiers(),
	}
}

// Generator assigns fresh binds to actions that have none. Collision state is
// tracked per category group so actions reachable from the same in-game
// context never share a bind, while unrelated contexts may.
type Generator struct {
	opts     GeneratorOptions
	pressIdx int
	log      logging.Logger

	banned map[string]bool
	used   map[string]map[string]bool
}

// NewGenerator builds a generator over the arena's "press" activation mode.
// Generated binds carry that mode when the arena defines it, NoActivation
// otherwise.
func NewGenerator(opts GeneratorOptions, arena *ActivationArena, log logging.Logger) *Generator {
	pressIdx := NoActivation
	if idx, ok := arena.FindByName("press"); ok {
		pressIdx = idx
	}

	banned := make(map[string]bool, len(opts.DenyCombos))
	for _, b := range opts.DenyCombos {
		banned[b.identity()] = true
	}

	return &Generator{
		opts:     opts,
		pressIdx: pressIdx,
		log:      log,
		banned:   banned,
		used:     make(map[string]map[string]bool),
	}
}

// groupsOf resolves the collision groups a category belongs to.
func (g *Generator) groupsOf(category string) []string {
	if groups, ok := g.opts.CategoryGroups[category]; ok {
		return groups
	}
	return []string{category}
}

// allowedModifiers filters the candidate modifiers against every ban that
// applies anywhere in the category's group.
func (g *Generator) allowedModifiers(category string) []input.Key {
	forbidden := make(map[input.Key]bool)
	for _, group := range g.groupsOf(category) {
		for _, mod := range g.opts.ForbiddenModifiers[group] {
			forbidden[mod] = true
		}
	}

	allowed := make([]input.Key, 0, len(g.opts.CandidateModifiers))
	for _, mod := range g.opts.CandidateModifiers {
		if !forbidden[mod] {
			allowed = append(allowed, mod)
		}
	}
	return allowed
}

func (g *Generator) isUsed(groups []string, id string) bool {
	for _, group := range groups {
		if g.used[group][id] {
			return true
		}
	}
	return false
}

func (g *Generator) reserve(groups []string, id string) {
	for _, group := range groups {
		set, ok := g.used[group]
		if !ok {
			set = make(map[string]bool)
			g.used[group] = set
		}
		set[id] = true
	}
}

// RegisterExisting seeds the collision state with every bind already present
// in the graph, default and custom alike, so generation never reuses them.
func (g *Generator) RegisterExisting(graph *Graph) {
	for _, m := range graph.Maps {
		category := m.UICategory
		if category == "" {
			category = DefaultCategory
		}
		groups := g.groupsOf(category)

		for _, action := range m.Actions {
			for _, bind := range action.DefaultBinds.All() {
				if bind.Executable() {
					g.reserve(groups, bind.identity())
				}
			}
			if action.CustomBinds != nil {
				for _, bind := range action.CustomBinds.All() {
					if bind.Executable() {
						g.reserve(groups, bind.identity())
					}
				}
			}
		}
	}
}

// NextAvailable returns the first candidate bind for the category that is
// neither denied nor used in any of the category's groups, reserving it in
// all of them. The search walks keys in preference order and, per key,
// modifier combinations of size zero, one, then two. The boolean is false
// when the pools are exhausted.
func (g *Generator) NextAvailable(category string) (Bind, bool) {
	groups := g.groupsOf(category)
	mods := g.allowedModifiers(category)

	for _, key := range g.opts.CandidateKeys {
		for _, combo := range modifierCombos(mods) {
			candidate := GeneratedBind(KeyMain(key), combo, g.pressIdx)
			id := candidate.identity()

			if g.banned[id] || g.isUsed(groups, id) {
				continue
			}

			g.reserve(groups, id)
			return candidate, true
		}
	}
	return Bind{}, false
}

// modifierCombos enumerates modifier sets in ascending size: the empty set,
// each single modifier, then each unordered pair, preserving pool order
// within a size.
func modifierCombos(mods []input.Key) [][]input.Key {
	combos := make([][]input.Key, 0, 1+len(mods)+len(mods)*(len(mods)-1)/2)
	combos = append(combos, nil)
	for i := range mods {
		combos = append(combos, []input.Key{mods[i]})
	}
	for i := range mods {
		for j := i + 1; j < len(mods); j++ {
			combos = append(combos, []input.Key{mods[i], mods[j]})
		}
	}
	return combos
}

// FillMissing walks the graph in order and assigns a generated keyboard bind
// to every action with no active default or custom bind. Existing binds are
// registered first, so calling FillMissing on an already filled graph changes
// nothing.
func (g *Generator) FillMissing(graph *Graph) {
	g.RegisterExisting(graph)

	generated, exhausted := 0, 0

	for _, m := range graph.Maps {
		category := m.UICategory
		if category == "" {
			category = DefaultCategory
		}

		for _, action := range m.Actions {
			if action.HasActiveBind() {
				continue
			}

			candidate, ok := g.NextAvailable(category)
			if !ok {
				g.log.Warnf("no available bind for %s.%s", m.Name, action.ActionName)
				exhausted++
				continue
			}

			action.CustomBinds = &Binds{Keyboard: []Bind{candidate}}
			g.log.Debugf("generated bind for %s.%s: %s", m.Name, action.ActionName, candidate)
			generated++
		}
	}

	g.log.Infof("bind generation done: %d generated, %d exhausted", generated, exhausted)
}
