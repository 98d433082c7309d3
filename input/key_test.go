package input

import "testing"

func TestKeyTokenRoundTrip(t *testing.T) {
	for _, k := range AllKeys() {
		tok := k.Token()
		if tok == "unknown" {
			t.Errorf("key %d has no token", k)
			continue
		}
		got, ok := ParseKey(tok)
		if !ok {
			t.Errorf("ParseKey(%q) failed", tok)
			continue
		}
		if got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", tok, got, k)
		}
	}
}

func TestParseKeyAliases(t *testing.T) {
	tests := []struct {
		token string
		want  Key
	}{
		{"esc", KeyEscape},
		{"return", KeyEnter},
		{"pageup", KeyPageUp},
		{"equal", KeyEquals},
		{"arrowup", KeyUp},
		{"np_decimal", KeyNpDecimal},
		{"numlock", KeyNpLock},
		{"LSHIFT", KeyLShift},
		{"  lctrl  ", KeyLCtrl},
		{"F11", KeyF11},
	}

	for _, tt := range tests {
		got, ok := ParseKey(tt.token)
		if !ok {
			t.Errorf("ParseKey(%q) failed", tt.token)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, token := range []string{"", "  ", "notakey", "mouse1", "mwheel_up"} {
		if k, ok := ParseKey(token); ok {
			t.Errorf("ParseKey(%q) = %v, want failure", token, k)
		}
	}
}

func TestIsModifier(t *testing.T) {
	for _, m := range Modifiers() {
		if !m.IsModifier() {
			t.Errorf("%v.IsModifier() = false, want true", m)
		}
	}
	for _, k := range []Key{KeyA, KeyF1, KeyLWin, KeyRWin, KeySpace, KeyNp1} {
		if k.IsModifier() {
			t.Errorf("%v.IsModifier() = true, want false", k)
		}
	}
}

func TestModifiersOrderIsStable(t *testing.T) {
	want := []Key{KeyLShift, KeyRShift, KeyLCtrl, KeyRCtrl, KeyLAlt, KeyRAlt}
	got := Modifiers()
	if len(got) != len(want) {
		t.Fatalf("Modifiers() returned %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Modifiers()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
