package bindings

import (
	"testing"

	"github.com/VeeLume/streamdeck-sc-mapper/input"
)

func TestBindsLabel(t *testing.T) {
	var nilBinds *Binds
	if got := nilBinds.Label(); got != "" {
		t.Errorf("nil Label() = %q, want empty", got)
	}

	b := &Binds{
		Keyboard: []Bind{
			NewBind(KeyMain(input.KeyF4), []input.Key{input.KeyLAlt}, NoActivation),
			NewBind(KeyMain(input.KeyU), nil, NoActivation),
		},
		Mouse: []Bind{
			NewBind(MouseMain(input.MouseLeft), nil, NoActivation),
		},
	}
	want := "lalt+f4, u | mouse1"
	if got := b.Label(); got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestActionBindingEffectiveBinds(t *testing.T) {
	action := &ActionBinding{
		ActionID:   "mapui.map_open",
		ActionName: "map_open",
		DefaultBinds: Binds{Keyboard: []Bind{
			NewBind(KeyMain(input.KeyF2), nil, NoActivation),
		}},
		Activation: NoActivation,
	}

	if got := action.BindsLabel(); got != "f2" {
		t.Errorf("BindsLabel() = %q, want f2", got)
	}

	action.CustomBinds = &Binds{Keyboard: []Bind{
		NewBind(KeyMain(input.KeyF5), nil, NoActivation),
	}}
	if got := action.BindsLabel(); got != "f5" {
		t.Errorf("BindsLabel() with customs = %q, want f5", got)
	}

	// HasActiveBind is an OR across defaults and customs: a custom unbind
	// alone does not make an action a generation target.
	action.CustomBinds = &Binds{Keyboard: []Bind{Unbound(NoActivation)}}
	if !action.HasActiveBind() {
		t.Errorf("HasActiveBind() = false, want true while defaults are active")
	}
}
