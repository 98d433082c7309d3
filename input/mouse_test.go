package input

import "testing"

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		token string
		want  MouseButton
	}{
		{"mouse1", MouseLeft},
		{"lmb", MouseLeft},
		{"mouse_left", MouseLeft},
		{"mouse2", MouseRight},
		{"rmb", MouseRight},
		{"mouse3", MouseMiddle},
		{"mmb", MouseMiddle},
		{"mouse4", MouseX1},
		{"mb4", MouseX1},
		{"x1", MouseX1},
		{"mouse5", MouseX2},
		{"x2", MouseX2},
		{"mouse9", MouseButton(9)},
		{"MOUSE2", MouseRight},
		{"mouse4_2", MouseButton(2)},
	}

	for _, tt := range tests {
		got, ok := ParseMouseButton(tt.token)
		if !ok {
			t.Errorf("ParseMouseButton(%q) failed", tt.token)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMouseButton(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParseMouseButtonRejects(t *testing.T) {
	for _, token := range []string{"", "mouse", "mouse_", "keyboard1", "f1", "mwheel_up"} {
		if b, ok := ParseMouseButton(token); ok {
			t.Errorf("ParseMouseButton(%q) = %v, want failure", token, b)
		}
	}
}

func TestMouseButtonTokenRoundTrip(t *testing.T) {
	for _, b := range []MouseButton{MouseLeft, MouseRight, MouseMiddle, MouseX1, MouseX2, MouseButton(8), MouseButton(12)} {
		got, ok := ParseMouseButton(b.Token())
		if !ok || got != b {
			t.Errorf("ParseMouseButton(%q) = %v, %v, want %v", b.Token(), got, ok, b)
		}
	}
}

func TestExtraButtonNumbering(t *testing.T) {
	tests := []struct {
		n    int
		want MouseButton
	}{
		{1, MouseX1},
		{2, MouseX2},
		{3, MouseButton(6)},
		{10, MouseButton(13)},
		{0, MouseNone},
	}

	for _, tt := range tests {
		if got := ExtraButton(tt.n); got != tt.want {
			t.Errorf("ExtraButton(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
