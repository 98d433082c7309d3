package bindings

import (
	"errors"
	"testing"

	"github.com/VeeLume/streamdeck-sc-mapper/input"
)

func TestParseBind(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantMain   string
		wantMods   []input.Key
		unbound    bool
		assignable bool
	}{
		{name: "empty", raw: "", unbound: true},
		{name: "whitespace", raw: "   ", unbound: true},
		{name: "plain key", raw: "f4", wantMain: "f4", assignable: true},
		{name: "modifier plus key", raw: "lalt+f4", wantMain: "f4", wantMods: []input.Key{input.KeyLAlt}, assignable: true},
		{name: "device prefix stripped", raw: "kb1_lshift+a", wantMain: "a", wantMods: []input.Key{input.KeyLShift}, assignable: true},
		{name: "numpad not mistaken for prefix", raw: "np_1", wantMain: "np_1", assignable: true},
		{name: "lone modifier promoted", raw: "lshift", wantMain: "lshift", assignable: true},
		{name: "mouse button", raw: "mouse1", wantMain: "mouse1", assignable: true},
		{name: "mouse alias", raw: "lmb", wantMain: "mouse1", assignable: true},
		{name: "mouse with modifier", raw: "lctrl+rmb", wantMain: "mouse2", wantMods: []input.Key{input.KeyLCtrl}, assignable: true},
		{name: "wheel up", raw: "mwheel_up", wantMain: "mwheel_up"},
		{name: "wheel down with prefix", raw: "mo1_mwheel_down", wantMain: "mwheel_down"},
		{name: "mouse axis", raw: "maxis_x", wantMain: "maxis_x"},
		{name: "hmd axis", raw: "hmd_pitch", wantMain: "hmd_pitch"},
		{name: "case insensitive", raw: "LAlt+F4", wantMain: "f4", wantMods: []input.Key{input.KeyLAlt}, assignable: true},
		{name: "two modifiers", raw: "lctrl+lshift+f10", wantMain: "f10", wantMods: []input.Key{input.KeyLShift, input.KeyLCtrl}, assignable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bind, err := ParseBind(tt.raw, NoActivation)
			if err != nil {
				t.Fatalf("ParseBind(%q) error: %v", tt.raw, err)
			}
			if bind.IsUnbound != tt.unbound {
				t.Errorf("ParseBind(%q).IsUnbound = %v, want %v", tt.raw, bind.IsUnbound, tt.unbound)
			}
			if tt.unbound {
				return
			}
			if got := bind.Main.Token(); got != tt.wantMain {
				t.Errorf("ParseBind(%q).Main.Token() = %q, want %q", tt.raw, got, tt.wantMain)
			}
			if len(bind.Modifiers) != len(tt.wantMods) {
				t.Fatalf("ParseBind(%q).Modifiers = %v, want %v", tt.raw, bind.Modifiers, tt.wantMods)
			}
			for i, mod := range tt.wantMods {
				if bind.Modifiers[i] != mod {
					t.Errorf("ParseBind(%q).Modifiers[%d] = %v, want %v", tt.raw, i, bind.Modifiers[i], mod)
				}
			}
			if got := bind.Main.Assignable(); got != tt.assignable {
				t.Errorf("ParseBind(%q).Main.Assignable() = %v, want %v", tt.raw, got, tt.assignable)
			}
		})
	}
}

func TestParseBindErrors(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"f1+f2", ErrAmbiguousBind},
		{"a+b", ErrAmbiguousBind},
		{"lalt+lshift", ErrAmbiguousBind},
		{"mouse1+mwheel_up", ErrAmbiguousBind},
		{"notakey", ErrUnknownToken},
		{"lalt+notakey", ErrUnknownToken},
	}

	for _, tt := range tests {
		_, err := ParseBind(tt.raw, NoActivation)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseBind(%q) error = %v, want %v", tt.raw, err, tt.want)
		}
		var parseErr *BindParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseBind(%q) error is not a *BindParseError", tt.raw)
			continue
		}
		if parseErr.Input != tt.raw {
			t.Errorf("ParseBind(%q) error Input = %q, want the raw value", tt.raw, parseErr.Input)
		}
	}
}

func TestParseBindActivationCarried(t *testing.T) {
	bind, err := ParseBind("lalt+f4", 7)
	if err != nil {
		t.Fatalf("ParseBind error: %v", err)
	}
	if bind.Activation != 7 {
		t.Errorf("Activation = %d, want 7", bind.Activation)
	}

	unbound, err := ParseBind("", 3)
	if err != nil {
		t.Fatalf("ParseBind error: %v", err)
	}
	if unbound.Activation != 3 {
		t.Errorf("unbound Activation = %d, want 3", unbound.Activation)
	}
}

func TestBindEqual(t *testing.T) {
	a := NewBind(KeyMain(input.KeyF4), []input.Key{input.KeyLAlt, input.KeyLShift}, NoActivation)
	b := NewBind(KeyMain(input.KeyF4), []input.Key{input.KeyLShift, input.KeyLAlt}, 5)
	b.Origin = OriginGenerated

	if !a.Equal(b) {
		t.Errorf("binds with same main and modifiers should be equal regardless of activation and origin")
	}

	c := NewBind(KeyMain(input.KeyF4), []input.Key{input.KeyLAlt}, NoActivation)
	if a.Equal(c) {
		t.Errorf("binds with different modifier sets should not be equal")
	}

	d := NewBind(MouseMain(input.MouseLeft), nil, NoActivation)
	e := NewBind(KeyMain(input.KeyF4), nil, NoActivation)
	if d.Equal(e) {
		t.Errorf("mouse and key mains should not be equal")
	}
}

func TestBindModifierNormalization(t *testing.T) {
	b := NewBind(KeyMain(input.KeyA), []input.Key{input.KeyLAlt, input.KeyLAlt, input.KeyLShift}, NoActivation)
	if len(b.Modifiers) != 2 {
		t.Fatalf("Modifiers = %v, want deduplicated pair", b.Modifiers)
	}
	if b.Modifiers[0] != input.KeyLShift || b.Modifiers[1] != input.KeyLAlt {
		t.Errorf("Modifiers = %v, want sorted [lshift lalt]", b.Modifiers)
	}
}

func TestBindExecutable(t *testing.T) {
	tests := []struct {
		bind Bind
		want bool
	}{
		{NewBind(KeyMain(input.KeyF1), nil, NoActivation), true},
		{NewBind(MouseMain(input.MouseRight), nil, NoActivation), true},
		{NewBind(BindMain{Kind: MainWheelUp}, nil, NoActivation), false},
		{NewBind(BindMain{Kind: MainMouseAxis, Axis: "x"}, nil, NoActivation), false},
		{Unbound(NoActivation), false},
	}
	for _, tt := range tests {
		if got := tt.bind.Executable(); got != tt.want {
			t.Errorf("Executable() of %s = %v, want %v", tt.bind, got, tt.want)
		}
	}
}

func TestBindString(t *testing.T) {
	tests := []struct {
		bind Bind
		want string
	}{
		{Unbound(NoActivation), "<unbound>"},
		{NewBind(KeyMain(input.KeyF4), nil, NoActivation), "f4"},
		{NewBind(KeyMain(input.KeyF4), []input.Key{input.KeyLAlt}, NoActivation), "lalt+f4"},
		{NewBind(MouseMain(input.MouseMiddle), nil, NoActivation), "mouse3"},
	}
	for _, tt := range tests {
		if got := tt.bind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
