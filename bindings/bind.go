package bindings

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/VeeLume/streamdeck-sc-mapper/input"
)

// NoActivation marks a bind or action without an activation-mode reference.
const NoActivation = -1

// Origin records where a bind came from.
type Origin string

const (
	// OriginUser marks binds from the default profile or user rebinds.
	OriginUser Origin = "user"
	// OriginGenerated marks binds produced by the Generator.
	OriginGenerated Origin = "generated"
)

// MainKind discriminates the main input of a bind.
type MainKind uint8

const (
	// MainNone means the bind has no main input (explicit unbind).
	MainNone MainKind = iota
	// MainKey is a keyboard key.
	MainKey
	// MainMouse is a mouse button.
	MainMouse
	// MainWheelUp is one upward mouse-wheel notch.
	MainWheelUp
	// MainWheelDown is one downward mouse-wheel notch.
	MainWheelDown
	// MainMouseAxis is a named mouse axis ("x", "y").
	MainMouseAxis
	// MainHMD is a named head-tracking axis ("pitch", "yaw").
	MainHMD
	// MainUnsupported is a recognized-but-unusable input.
	MainUnsupported
)

// BindMain is the main input of a bind. The zero value means "no main".
type BindMain struct {
	Kind   MainKind          `json:"kind"`
	Key    input.Key         `json:"key,omitempty"`
	Button input.MouseButton `json:"button,omitempty"`
	// Axis names the axis for MainMouseAxis and MainHMD.
	Axis string `json:"axis,omitempty"`
}

// KeyMain wraps a keyboard key as a bind main.
func KeyMain(k input.Key) BindMain { return BindMain{Kind: MainKey, Key: k} }

// MouseMain wraps a mouse button as a bind main.
func MouseMain(b input.MouseButton) BindMain { return BindMain{Kind: MainMouse, Button: b} }

// IsNone reports whether there is no main input.
func (m BindMain) IsNone() bool { return m.Kind == MainNone }

// Assignable reports whether the generator may hand out this kind of main
// and whether it counts toward "executable" checks. Wheel notches, axes,
// head-tracking inputs, and unsupported inputs are parsed but never assignable.
func (m BindMain) Assignable() bool {
	return m.Kind == MainKey || m.Kind == MainMouse
}

// Token returns the profile token for the main input, or "" when it has no
// token form (none/unsupported mains).
func (m BindMain) Token() string {
	switch m.Kind {
	case MainKey:
		return m.Key.Token()
	case MainMouse:
		return m.Button.Token()
	case MainWheelUp:
		return "mwheel_up"
	case MainWheelDown:
		return "mwheel_down"
	case MainMouseAxis:
		return "maxis_" + m.Axis
	case MainHMD:
		return "hmd_" + m.Axis
	}
	return ""
}

// String renders the main for logs and error messages.
func (m BindMain) String() string {
	switch m.Kind {
	case MainNone:
		return "<none>"
	case MainUnsupported:
		return "<unsupported>"
	default:
		return m.Token()
	}
}

// Bind is one input assignment: zero or more modifier keys plus one main
// input, with an optional activation-mode arena index.
//
// Identity (for ban lists and collision checks) covers only Main and
// Modifiers; Activation and Origin are carried along but never compared.
type Bind struct {
	Main      BindMain    `json:"main"`
	Modifiers []input.Key `json:"modifiers,omitempty"`

	// Activation indexes the owning graph's ActivationArena, or NoActivation.
	Activation int `json:"activation"`

	// IsUnbound is true for an explicit clear: no main and no modifiers.
	IsUnbound bool `json:"unbound,omitempty"`

	Origin Origin `json:"origin,omitempty"`
}

// NewBind builds a user-origin bind, deriving the unbound flag.
func NewBind(main BindMain, modifiers []input.Key, activation int) Bind {
	mods := normalizeModifiers(modifiers)
	return Bind{
		Main:       main,
		Modifiers:  mods,
		Activation: activation,
		IsUnbound:  main.IsNone() && len(mods) == 0,
		Origin:     OriginUser,
	}
}

// GeneratedBind builds a generator-origin bind.
func GeneratedBind(main BindMain, modifiers []input.Key, activation int) Bind {
	b := NewBind(main, modifiers, activation)
	b.Origin = OriginGenerated
	return b
}

// Unbound returns an explicit-clear bind.
func Unbound(activation int) Bind {
	return Bind{Activation: activation, IsUnbound: true, Origin: OriginUser}
}

// Executable reports whether the bind can actually fire: not unbound and
// carrying an assignable main.
func (b Bind) Executable() bool {
	return !b.IsUnbound && b.Main.Assignable()
}

// HasModifier reports whether the bind carries the given modifier.
func (b Bind) HasModifier(k input.Key) bool {
	return slices.Contains(b.Modifiers, k)
}

// Equal compares bind identity: main and modifiers only.
func (b Bind) Equal(other Bind) bool {
	return b.identity() == other.identity()
}

// identity is the canonical (main, modifiers) form used as a set key.
func (b Bind) identity() string {
	toks := make([]string, 0, len(b.Modifiers)+1)
	for _, m := range b.Modifiers {
		toks = append(toks, m.Token())
	}
	slices.Sort(toks)
	toks = append(toks, b.Main.Token())
	return strings.Join(toks, "+")
}

// String renders the bind as modifiers+main for logs.
func (b Bind) String() string {
	if b.IsUnbound {
		return "<unbound>"
	}
	mods := make([]string, 0, len(b.Modifiers))
	for _, m := range b.Modifiers {
		mods = append(mods, m.Token())
	}
	slices.Sort(mods)
	main := b.Main.String()
	if len(mods) == 0 {
		return main
	}
	return strings.Join(mods, "+") + "+" + main
}

// normalizeModifiers sorts and dedups a modifier set.
func normalizeModifiers(mods []input.Key) []input.Key {
	if len(mods) == 0 {
		return nil
	}
	out := slices.Clone(mods)
	slices.Sort(out)
	return slices.Compact(out)
}

// Parse errors.
var (
	// ErrAmbiguousBind indicates more than one main input in a single bind.
	ErrAmbiguousBind = errors.New("bind has more than one main input")

	// ErrUnknownToken indicates a segment that matches no input category.
	ErrUnknownToken = errors.New("unknown input token")
)

// BindParseError describes a bind attribute value that could not be parsed.
type BindParseError struct {
	// Input is the raw attribute value.
	Input string
	// Mains lists the extracted main candidates for ambiguous binds.
	Mains []string
	// Token is the offending segment for unknown-token errors.
	Token string
	// Err is ErrAmbiguousBind or ErrUnknownToken.
	Err error
}

// Error implements the error interface.
func (e *BindParseError) Error() string {
	if errors.Is(e.Err, ErrAmbiguousBind) {
		return fmt.Sprintf("ambiguous bind %q: main candidates %v", e.Input, e.Mains)
	}
	return fmt.Sprintf("unknown token %q in bind %q", e.Token, e.Input)
}

// Unwrap returns the underlying sentinel error.
func (e *BindParseError) Unwrap() error { return e.Err }

// devicePrefixes are the instance tags we strip before tokenizing. Only known
// prefixes are stripped so tokens like "np_1" survive intact.
var devicePrefixes = []string{
	"kb1_", "kb2_", "kb_",
	"mo1_", "mo2_", "mo_",
	"gp1_", "gp2_", "gp_",
	"js1_", "js2_", "js_",
}

func stripDevicePrefix(s string) string {
	for _, p := range devicePrefixes {
		if rest, ok := strings.CutPrefix(s, p); ok {
			return rest
		}
	}
	return s
}

// ParseBind parses one input-attribute value ("lalt+f4", "kb1_lshift+a",
// "mwheel_up") into a Bind carrying the given activation index.
//
// Resolution rules:
//   - empty or whitespace-only input parses to an explicit unbound bind;
//   - a lone modifier is promoted to be the main key;
//   - exactly one main candidate makes a valid bind;
//   - two or more main candidates, or an unrecognized segment, are errors.
func ParseBind(raw string, activation int) (Bind, error) {
	if strings.TrimSpace(raw) == "" {
		return Unbound(activation), nil
	}

	value := stripDevicePrefix(strings.TrimSpace(raw))

	// A bare device prefix ("kb1_ ") is how exported profiles spell an
	// explicit unbind.
	if strings.TrimSpace(value) == "" {
		return Unbound(activation), nil
	}

	var modifiers []input.Key
	var mains []BindMain

	for _, seg := range strings.Split(value, "+") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		s := strings.ToLower(seg)

		switch s {
		case "mwheel_up", "mwheelup", "wheel_up", "mouse_wheel_up":
			mains = append(mains, BindMain{Kind: MainWheelUp})
			continue
		case "mwheel_down", "mwheeldown", "wheel_down", "mouse_wheel_down":
			mains = append(mains, BindMain{Kind: MainWheelDown})
			continue
		}

		if axis, ok := cutAnyPrefix(s, "maxis_", "mouse_axis_"); ok {
			mains = append(mains, BindMain{Kind: MainMouseAxis, Axis: axis})
			continue
		}
		if axis, ok := strings.CutPrefix(s, "hmd_"); ok {
			mains = append(mains, BindMain{Kind: MainHMD, Axis: axis})
			continue
		}

		if btn, ok := input.ParseMouseButton(s); ok {
			mains = append(mains, MouseMain(btn))
			continue
		}

		if key, ok := input.ParseKey(s); ok {
			if key.IsModifier() {
				modifiers = append(modifiers, key)
			} else {
				mains = append(mains, KeyMain(key))
			}
			continue
		}

		return Bind{}, &BindParseError{Input: raw, Token: seg, Err: ErrUnknownToken}
	}

	switch len(mains) {
	case 0:
		// Legacy single-modifier binds: the modifier is the main key.
		if len(modifiers) == 1 {
			return NewBind(KeyMain(modifiers[0]), nil, activation), nil
		}
		mainNames := make([]string, 0, len(modifiers))
		for _, m := range modifiers {
			mainNames = append(mainNames, m.Token())
		}
		return Bind{}, &BindParseError{Input: raw, Mains: mainNames, Err: ErrAmbiguousBind}
	case 1:
		return NewBind(mains[0], modifiers, activation), nil
	default:
		mainNames := make([]string, 0, len(mains))
		for _, m := range mains {
			mainNames = append(mainNames, m.String())
		}
		return Bind{}, &BindParseError{Input: raw, Mains: mainNames, Err: ErrAmbiguousBind}
	}
}

func cutAnyPrefix(s string, prefixes ...string) (string, bool) {
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(s, p); ok {
			return rest, true
		}
	}
	return "", false
}
