package bindings

import (
	"math"
	"strconv"

	"github.com/VeeLume/streamdeck-sc-mapper/internal/xmltree"
)

// ActivationMode is a trigger-timing configuration: when a bind fires
// (press/hold/release), multi-tap behavior, and the timing thresholds in
// seconds. Optional timings are nil when the profile does not set them.
type ActivationMode struct {
	Name          string `json:"name,omitempty"`
	OnPress       bool   `json:"onPress,omitempty"`
	OnHold        bool   `json:"onHold,omitempty"`
	OnRelease     bool   `json:"onRelease,omitempty"`
	MultiTap      int    `json:"multiTap"`
	MultiTapBlock bool   `json:"multiTapBlock,omitempty"`
	Retriggerable bool   `json:"retriggerable,omitempty"`

	PressTriggerThreshold   *float64 `json:"pressTriggerThreshold,omitempty"`
	ReleaseTriggerThreshold *float64 `json:"releaseTriggerThreshold,omitempty"`
	ReleaseTriggerDelay     *float64 `json:"releaseTriggerDelay,omitempty"`
	HoldTriggerDelay        *float64 `json:"holdTriggerDelay,omitempty"`
	HoldRepeatDelay         *float64 `json:"holdRepeatDelay,omitempty"`
}

// timingAttrs are the markup attributes that define a mode's semantics.
var timingAttrs = []string{
	"onPress",
	"onHold",
	"onRelease",
	"multiTap",
	"multiTapBlock",
	"pressTriggerThreshold",
	"releaseTriggerThreshold",
	"releaseTriggerDelay",
	"retriggerable",
	"holdTriggerDelay",
	"holdRepeatDelay",
}

// hasTimingAttrs reports whether the node carries any timing attribute.
func hasTimingAttrs(n *xmltree.Node) bool {
	for _, attr := range timingAttrs {
		if n.HasAttr(attr) {
			return true
		}
	}
	return false
}

// modeFromNode reads an ActivationMode from a node's attributes. The name
// attribute is only taken when includeName is set (anonymous inline modes
// must not inherit it).
func modeFromNode(n *xmltree.Node, includeName bool) ActivationMode {
	boolAttr := func(key string) bool {
		return n.AttrValue(key) == "1"
	}
	floatAttr := func(key string) *float64 {
		raw, ok := n.Attr(key)
		if !ok {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return nil
		}
		return &v
	}

	m := ActivationMode{
		OnPress:                 boolAttr("onPress"),
		OnHold:                  boolAttr("onHold"),
		OnRelease:               boolAttr("onRelease"),
		MultiTap:                1,
		MultiTapBlock:           boolAttr("multiTapBlock"),
		Retriggerable:           boolAttr("retriggerable"),
		PressTriggerThreshold:   floatAttr("pressTriggerThreshold"),
		ReleaseTriggerThreshold: floatAttr("releaseTriggerThreshold"),
		ReleaseTriggerDelay:     floatAttr("releaseTriggerDelay"),
		HoldTriggerDelay:        floatAttr("holdTriggerDelay"),
		HoldRepeatDelay:         floatAttr("holdRepeatDelay"),
	}

	if raw, ok := n.Attr("multiTap"); ok {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			m.MultiTap = v
		}
	}
	if includeName {
		m.Name = n.AttrValue("name")
	}
	return m
}

// modeKey is the semantic dedup key: every time-valued field quantized to
// whole milliseconds. Absent timings quantize to -1.
type modeKey struct {
	onPress       bool
	onHold        bool
	onRelease     bool
	multiTap      int
	multiTapBlock bool
	retriggerable bool
	pressMS       int
	releaseThrMS  int
	releaseDelMS  int
	holdMS        int
	holdRepeatMS  int
}

// quantizeMS converts seconds to whole milliseconds, rounding half away
// from zero and clamping below at zero.
func quantizeMS(v *float64) int {
	if v == nil {
		return -1
	}
	ms := math.Round(*v * 1000)
	if ms < 0 {
		ms = 0
	}
	return int(ms)
}

func keyOfMode(m ActivationMode) modeKey {
	return modeKey{
		onPress:       m.OnPress,
		onHold:        m.OnHold,
		onRelease:     m.OnRelease,
		multiTap:      m.MultiTap,
		multiTapBlock: m.MultiTapBlock,
		retriggerable: m.Retriggerable,
		pressMS:       quantizeMS(m.PressTriggerThreshold),
		releaseThrMS:  quantizeMS(m.ReleaseTriggerThreshold),
		releaseDelMS:  quantizeMS(m.ReleaseTriggerDelay),
		holdMS:        quantizeMS(m.HoldTriggerDelay),
		holdRepeatMS:  quantizeMS(m.HoldRepeatDelay),
	}
}

// ActivationArena is an append-only, deduplicating store of activation modes,
// referenced by position. Only Modes is persisted; both indexes are derived
// and must be rebuilt after a snapshot load.
type ActivationArena struct {
	Modes []ActivationMode `json:"modes"`

	byName map[string]int
	byKey  map[modeKey]int
}

// Len returns the number of stored modes.
func (a *ActivationArena) Len() int { return len(a.Modes) }

// Mode returns the mode at the given position, or nil if out of range.
func (a *ActivationArena) Mode(idx int) *ActivationMode {
	if idx < 0 || idx >= len(a.Modes) {
		return nil
	}
	return &a.Modes[idx]
}

// FindByName returns the position of a named mode.
func (a *ActivationArena) FindByName(name string) (int, bool) {
	idx, ok := a.byName[name]
	return idx, ok
}

// InsertOrGet stores a mode and returns its position. A mode whose name is
// already known resolves to the existing position (first writer wins); a mode
// whose quantized timings match an existing entry reuses that entry, and a
// new name on it becomes resolvable to the shared position.
func (a *ActivationArena) InsertOrGet(m ActivationMode) int {
	if a.byName == nil {
		a.byName = make(map[string]int)
	}
	if a.byKey == nil {
		a.byKey = make(map[modeKey]int)
	}

	if m.Name != "" {
		if idx, ok := a.byName[m.Name]; ok {
			return idx
		}
	}

	key := keyOfMode(m)
	if idx, ok := a.byKey[key]; ok {
		if m.Name != "" {
			a.byName[m.Name] = idx
		}
		return idx
	}

	idx := len(a.Modes)
	if m.Name != "" {
		a.byName[m.Name] = idx
	}
	a.byKey[key] = idx
	a.Modes = append(a.Modes, m)
	return idx
}

// RebuildIndexes recreates the derived name and semantic indexes from the
// mode sequence. Must be called after deserializing an arena.
func (a *ActivationArena) RebuildIndexes() {
	a.byName = make(map[string]int, len(a.Modes))
	a.byKey = make(map[modeKey]int, len(a.Modes))
	for idx, m := range a.Modes {
		if m.Name != "" {
			if _, taken := a.byName[m.Name]; !taken {
				a.byName[m.Name] = idx
			}
		}
		if _, taken := a.byKey[keyOfMode(m)]; !taken {
			a.byKey[keyOfMode(m)] = idx
		}
	}
}

// resolveActivation resolves the activation mode for a node, consulting an
// optional broader-scoped fallback node, and returns an arena position or
// NoActivation.
//
// Precedence:
//  1. an activationMode name attribute: existing named mode, else a mode
//     defined from the node's own timing attributes (or the fallback's),
//     registered under that name; a name with no attributes anywhere stays
//     unresolved (no mode, not an error);
//  2. inline timing attributes on the node itself (anonymous mode);
//  3. timing attributes on the fallback node (anonymous mode);
//  4. no mode.
func resolveActivation(node, fallback *xmltree.Node, arena *ActivationArena) int {
	if name, ok := node.Attr("activationMode"); ok {
		if idx, found := arena.FindByName(name); found {
			return idx
		}

		var m ActivationMode
		switch {
		case hasTimingAttrs(node):
			m = modeFromNode(node, true)
		case fallback != nil && hasTimingAttrs(fallback):
			m = modeFromNode(fallback, true)
		default:
			return NoActivation
		}
		m.Name = name
		return arena.InsertOrGet(m)
	}

	if hasTimingAttrs(node) {
		return arena.InsertOrGet(modeFromNode(node, false))
	}
	if fallback != nil && hasTimingAttrs(fallback) {
		return arena.InsertOrGet(modeFromNode(fallback, false))
	}
	return NoActivation
}
