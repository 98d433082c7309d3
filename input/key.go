package input

import "strings"

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Number row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifiers
	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
	KeyLWin
	KeyRWin

	// Symbols and misc
	KeySpace
	KeyTab
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyMinus
	KeyEquals
	KeyLBracket
	KeyRBracket
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeyGrave
	KeyCapsLock
	KeyPrint
	KeyPause

	// Navigation
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Numpad
	KeyNp0
	KeyNp1
	KeyNp2
	KeyNp3
	KeyNp4
	KeyNp5
	KeyNp6
	KeyNp7
	KeyNp8
	KeyNp9
	KeyNpAdd
	KeyNpSubtract
	KeyNpMultiply
	KeyNpDivide
	KeyNpEnter
	KeyNpDecimal
	KeyNpLock

	KeyMenu
)

// keyTokens maps each key to its canonical profile token.
var keyTokens = map[Key]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5",
	KeyF6: "f6", KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10",
	KeyF11: "f11", KeyF12: "f12",

	KeyLShift: "lshift", KeyRShift: "rshift",
	KeyLCtrl: "lctrl", KeyRCtrl: "rctrl",
	KeyLAlt: "lalt", KeyRAlt: "ralt",
	KeyLWin: "lwin", KeyRWin: "rwin",

	KeySpace: "space", KeyTab: "tab", KeyEnter: "enter", KeyEscape: "escape",
	KeyBackspace: "backspace", KeyMinus: "minus", KeyEquals: "equals",
	KeyLBracket: "lbracket", KeyRBracket: "rbracket",
	KeySemicolon: "semicolon", KeyApostrophe: "apostrophe",
	KeyComma: "comma", KeyPeriod: "period", KeySlash: "slash",
	KeyBackslash: "backslash", KeyGrave: "grave", KeyCapsLock: "capslock",
	KeyPrint: "print", KeyPause: "pause",

	KeyInsert: "insert", KeyDelete: "delete", KeyHome: "home", KeyEnd: "end",
	KeyPageUp: "pgup", KeyPageDown: "pgdn",
	KeyUp: "up", KeyDown: "down", KeyLeft: "left", KeyRight: "right",

	KeyNp0: "np_0", KeyNp1: "np_1", KeyNp2: "np_2", KeyNp3: "np_3",
	KeyNp4: "np_4", KeyNp5: "np_5", KeyNp6: "np_6", KeyNp7: "np_7",
	KeyNp8: "np_8", KeyNp9: "np_9",
	KeyNpAdd: "np_add", KeyNpSubtract: "np_subtract",
	KeyNpMultiply: "np_multiply", KeyNpDivide: "np_divide",
	KeyNpEnter: "np_enter", KeyNpDecimal: "np_period", KeyNpLock: "np_lock",

	KeyMenu: "menu",
}

// keyAliases maps alternative spellings seen in exported profiles to keys.
// Canonical tokens are added on top of these at init.
var keyAliases = map[string]Key{
	"esc":          KeyEscape,
	"return":       KeyEnter,
	"bs":           KeyBackspace,
	"caps":         KeyCapsLock,
	"ins":          KeyInsert,
	"del":          KeyDelete,
	"pageup":       KeyPageUp,
	"pagedown":     KeyPageDown,
	"equal":        KeyEquals,
	"semi":         KeySemicolon,
	"printscreen":  KeyPrint,
	"arrowup":      KeyUp,
	"arrowdown":    KeyDown,
	"arrowleft":    KeyLeft,
	"arrowright":   KeyRight,
	"np_decimal":   KeyNpDecimal,
	"np_minus":     KeyNpSubtract,
	"np_plus":      KeyNpAdd,
	"numlock":      KeyNpLock,
	"apps":         KeyMenu,
	"underscore":   KeyMinus,
	"lcontrol":     KeyLCtrl,
	"rcontrol":     KeyRCtrl,
	"leftshift":    KeyLShift,
	"rightshift":   KeyRShift,
	"leftalt":      KeyLAlt,
	"rightalt":     KeyRAlt,
	"leftctrl":     KeyLCtrl,
	"rightctrl":    KeyRCtrl,
}

var keyByToken map[string]Key

func init() {
	keyByToken = make(map[string]Key, len(keyTokens)+len(keyAliases))
	for k, tok := range keyTokens {
		keyByToken[tok] = k
	}
	for alias, k := range keyAliases {
		if _, taken := keyByToken[alias]; !taken {
			keyByToken[alias] = k
		}
	}
}

// Token returns the canonical profile spelling for the key.
// KeyNone and unknown values render as "unknown".
func (k Key) Token() string {
	if tok, ok := keyTokens[k]; ok {
		return tok
	}
	return "unknown"
}

// String returns the canonical token, making Key printable in logs.
func (k Key) String() string { return k.Token() }

// IsModifier reports whether the key belongs to the modifier set used by
// bind parsing and generation.
func (k Key) IsModifier() bool {
	switch k {
	case KeyLShift, KeyRShift, KeyLCtrl, KeyRCtrl, KeyLAlt, KeyRAlt:
		return true
	}
	return false
}

// ParseKey resolves a token to a Key. Parsing is case-insensitive and accepts
// the alias spellings found in exported profiles.
func ParseKey(token string) (Key, bool) {
	tok := strings.ToLower(strings.TrimSpace(token))
	k, ok := keyByToken[tok]
	return k, ok
}

// Modifiers returns the modifier keys in their fixed iteration order.
func Modifiers() []Key {
	return []Key{KeyLShift, KeyRShift, KeyLCtrl, KeyRCtrl, KeyLAlt, KeyRAlt}
}

// AllKeys returns every key with a canonical token, in enumeration order.
func AllKeys() []Key {
	keys := make([]Key, 0, len(keyTokens))
	for k := KeyA; k <= KeyMenu; k++ {
		if _, ok := keyTokens[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
