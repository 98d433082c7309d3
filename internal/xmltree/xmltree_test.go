package xmltree

import "testing"

const sampleDoc = `<?xml version="1.0" encoding="utf-8"?>
<profile version="1">
  <!-- comment is dropped -->
  <actionmap name="flight" UILabel="@ui_Flight">
    <action name="fire">
      <keyboard input="lalt+f"/>
      <mouse input="mouse1"/>
    </action>
    <action name="eject"/>
  </actionmap>
  <actionmap name="ground"/>
</profile>`

func TestParseTree(t *testing.T) {
	root, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if root.Tag != "profile" {
		t.Errorf("root tag = %q, want %q", root.Tag, "profile")
	}
	if got := root.AttrValue("version"); got != "1" {
		t.Errorf("version attr = %q, want %q", got, "1")
	}

	maps := root.ChildrenByTag("actionmap")
	if len(maps) != 2 {
		t.Fatalf("got %d actionmap children, want 2", len(maps))
	}
	if got := maps[0].AttrValue("name"); got != "flight" {
		t.Errorf("first actionmap name = %q, want %q", got, "flight")
	}
	if !maps[0].HasAttr("UILabel") {
		t.Error("UILabel attribute missing")
	}
	if maps[0].HasAttr("UICategory") {
		t.Error("HasAttr reported an absent attribute")
	}
}

func TestDescendants(t *testing.T) {
	root, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	actions := root.Descendants("action")
	if len(actions) != 2 {
		t.Fatalf("got %d action descendants, want 2", len(actions))
	}
	if got := actions[1].AttrValue("name"); got != "eject" {
		t.Errorf("second action name = %q, want %q", got, "eject")
	}

	if kb := actions[0].ChildrenByTag("keyboard"); len(kb) != 1 || kb[0].AttrValue("input") != "lalt+f" {
		t.Errorf("keyboard child lookup failed: %+v", kb)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "<a><b></a>"},
		{"empty", ""},
		{"junk", "not markup at all <"},
	}

	for _, tt := range tests {
		if _, err := ParseString(tt.doc); err == nil {
			t.Errorf("%s: ParseString() expected error, got nil", tt.name)
		}
	}
}
