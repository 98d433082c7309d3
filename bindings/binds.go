package bindings

import (
	"strings"

	"github.com/VeeLume/streamdeck-sc-mapper/internal/xmltree"
)

// Binds routes an action's binds by device: keyboard-routed and mouse-routed.
// Wheel, axis, and head-tracking mains do not imply a device; they are kept on
// the keyboard side to match the game's exported profiles.
type Binds struct {
	Keyboard []Bind `json:"keyboard,omitempty"`
	Mouse    []Bind `json:"mouse,omitempty"`
}

// HasActiveBinds reports whether any entry could actually fire. Explicit
// unbinds and non-assignable mains (wheels, axes, head tracking) do not
// count: an action holding only those is a generation target.
func (b *Binds) HasActiveBinds() bool {
	if b == nil {
		return false
	}
	for _, bind := range b.Keyboard {
		if bind.Executable() {
			return true
		}
	}
	for _, bind := range b.Mouse {
		if bind.Executable() {
			return true
		}
	}
	return false
}

// All returns every bind, keyboard first then mouse.
func (b *Binds) All() []Bind {
	if b == nil {
		return nil
	}
	out := make([]Bind, 0, len(b.Keyboard)+len(b.Mouse))
	out = append(out, b.Keyboard...)
	out = append(out, b.Mouse...)
	return out
}

// add routes a bind by its parsed main: mouse buttons go to the mouse list,
// everything else (including explicit unbinds and wheel/axis inputs) to the
// keyboard list.
func (b *Binds) add(bind Bind) {
	if bind.Main.Kind == MainMouse {
		b.Mouse = append(b.Mouse, bind)
		return
	}
	b.Keyboard = append(b.Keyboard, bind)
}

// Label renders a human-readable summary of the binds, keyboard first,
// or "" when both lists are empty.
func (b *Binds) Label() string {
	if b == nil {
		return ""
	}
	var parts []string
	if s := joinBinds(b.Keyboard); s != "" {
		parts = append(parts, s)
	}
	if s := joinBinds(b.Mouse); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " | ")
}

func joinBinds(binds []Bind) string {
	labels := make([]string, 0, len(binds))
	for _, b := range binds {
		labels = append(labels, b.String())
	}
	return strings.Join(labels, ", ")
}

// bindsFromNode parses every bind under an <action> node: the flat keyboard
// and mouse attributes, nested device elements with input attributes, and
// their <inputdata> children. Each bind resolves its activation mode against
// the narrowest node that defines one, falling back outward to the action.
// Unparseable binds are collected, not fatal.
func bindsFromNode(action *xmltree.Node, arena *ActivationArena) (Binds, []error) {
	var binds Binds
	var errs []error

	for _, attr := range []string{"keyboard", "mouse"} {
		raw, ok := action.Attr(attr)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		mode := resolveActivation(action, nil, arena)
		bind, err := ParseBind(raw, mode)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		binds.add(bind)
	}

	for _, device := range action.Children {
		if device.Tag != "keyboard" && device.Tag != "mouse" {
			continue
		}

		if raw, ok := device.Attr("input"); ok && strings.TrimSpace(raw) != "" {
			mode := resolveActivation(device, action, arena)
			bind, err := ParseBind(raw, mode)
			if err != nil {
				errs = append(errs, err)
			} else {
				binds.add(bind)
			}
		}

		for _, inputNode := range device.ChildrenByTag("inputdata") {
			raw, ok := inputNode.Attr("input")
			if !ok || strings.TrimSpace(raw) == "" {
				continue
			}
			mode := resolveActivation(inputNode, device, arena)
			if mode == NoActivation {
				mode = resolveActivation(action, nil, arena)
			}
			bind, err := ParseBind(raw, mode)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			binds.add(bind)
		}
	}

	return binds, errs
}
