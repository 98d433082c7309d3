package input

import (
	"fmt"
	"strconv"
	"strings"
)

// MouseButton identifies a mouse button by its profile number: 1 is left,
// 2 is right, 3 is middle, 4 and up are the extra buttons. Extra button N
// past the fifth keeps the N+3 numbering with no upper bound.
type MouseButton uint16

const (
	MouseNone   MouseButton = 0
	MouseLeft   MouseButton = 1
	MouseRight  MouseButton = 2
	MouseMiddle MouseButton = 3
	MouseX1     MouseButton = 4
	MouseX2     MouseButton = 5
)

// ExtraButton returns the button for the nth extra mouse button (1-based),
// so ExtraButton(1) == MouseX1 and ExtraButton(3) == mouse6.
func ExtraButton(n int) MouseButton {
	if n < 1 {
		return MouseNone
	}
	return MouseButton(n + 3)
}

// Token returns the canonical profile spelling ("mouse1", "mouse7").
func (b MouseButton) Token() string {
	if b == MouseNone {
		return "unknown"
	}
	return fmt.Sprintf("mouse%d", uint16(b))
}

// String returns the canonical token.
func (b MouseButton) String() string { return b.Token() }

// mouseAliases are the symbolic spellings that appear next to the numeric
// "mouseN" form in exported profiles.
var mouseAliases = map[string]MouseButton{
	"lmb":          MouseLeft,
	"mouse_left":   MouseLeft,
	"rmb":          MouseRight,
	"mouse_right":  MouseRight,
	"mmb":          MouseMiddle,
	"mouse_middle": MouseMiddle,
	"mb4":          MouseX1,
	"x1":           MouseX1,
	"mouse_x1":     MouseX1,
	"mb5":          MouseX2,
	"x2":           MouseX2,
	"mouse_x2":     MouseX2,
}

// ParseMouseButton resolves a token to a mouse button. Both the numeric
// ("mouse4") and symbolic ("lmb") spellings resolve; numbers have no upper
// bound. Instance-suffixed forms like "mouse4_2" take the last number.
func ParseMouseButton(token string) (MouseButton, bool) {
	tok := strings.ToLower(strings.TrimSpace(token))

	if b, ok := mouseAliases[tok]; ok {
		return b, true
	}

	rest, ok := strings.CutPrefix(tok, "mouse")
	if !ok {
		return MouseNone, false
	}

	// Take the last numeric segment so "mouse4" and "mouse4_2" both work.
	var btn MouseButton
	found := false
	for _, part := range strings.Split(rest, "_") {
		if n, err := strconv.ParseUint(part, 10, 16); err == nil && n > 0 {
			btn = MouseButton(n)
			found = true
		}
	}
	return btn, found
}
