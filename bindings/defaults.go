package bindings

import "github.com/VeeLume/streamdeck-sc-mapper/input"

// DefaultCategory is assumed for any action map without a UI category.
const DefaultCategory = "@ui_CGUIGeneral"

func defaultSkipActionMaps() map[string]bool {
	names := []string{
		"IFCS_controls",
		"debug",
		"zero_gravity_traversal",
		"hacking",
		"RemoteRigidEntityController",
		"character_customizer",
		"flycam",
		"stopwatch",
		"spaceship_auto_weapons",
		"server_renderer",
		"vehicle_mobiglas",
	}
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	return skip
}

func defaultUICategories() map[string]string {
	return map[string]string{
		"mining":       "@ui_CCFPS",
		"vehicle_mfd":  "@ui_CG_MFDs",
		"mapui":        "@ui_Map",
		"stopwatch":    "@ui_CGStopWatch",
		"ui_textfield": "@uiCGUIGeneral",
	}
}

// defaultCandidateKeys lists keys the generator may hand out, in preference
// order. Function keys and the numpad come first because the game leaves most
// of them free.
func defaultCandidateKeys() []input.Key {
	return []input.Key{
		input.KeyF1, input.KeyF2, input.KeyF3, input.KeyF4,
		input.KeyF5, input.KeyF6, input.KeyF7, input.KeyF8,
		input.KeyF9, input.KeyF10, input.KeyF11, input.KeyF12,
		input.KeyNp0, input.KeyNp1, input.KeyNp2, input.KeyNp3,
		input.KeyNp4, input.KeyNp5, input.KeyNp6, input.KeyNp7,
		input.KeyNp8, input.KeyNp9,
		input.KeyNpAdd, input.KeyNpSubtract, input.KeyNpMultiply,
		input.KeyNpDivide, input.KeyNpDecimal,
		input.Key0, input.Key1, input.Key2, input.Key3, input.Key4,
		input.Key5, input.Key6, input.Key7, input.Key8, input.Key9,
		input.KeyInsert, input.KeyDelete, input.KeyHome, input.KeyEnd,
		input.KeyPageUp, input.KeyPageDown,
		input.KeyU, input.KeyI, input.KeyO, input.KeyP,
		input.KeyJ, input.KeyK, input.KeyL,
		input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight,
		input.KeySemicolon, input.KeyComma, input.KeyPeriod,
		input.KeySlash, input.KeyBackslash, input.KeyMinus, input.KeyEquals,
	}
}

func defaultCandidateModifiers() []input.Key {
	return []input.Key{
		input.KeyLShift, input.KeyRShift,
		input.KeyLCtrl, input.KeyRCtrl,
		input.KeyLAlt, input.KeyRAlt,
	}
}

// defaultDenyCombos lists binds the generator must never produce. These are
// combinations the OS or the game client intercepts before input reaches the
// action system.
func defaultDenyCombos() []Bind {
	return []Bind{
		NewBind(KeyMain(input.KeyF4), []input.Key{input.KeyLAlt}, NoActivation),
		NewBind(KeyMain(input.KeyF9), []input.Key{input.KeyLAlt}, NoActivation),
		NewBind(KeyMain(input.KeyF10), []input.Key{input.KeyLAlt, input.KeyLShift}, NoActivation),
		NewBind(KeyMain(input.KeyF1), []input.Key{input.KeyLAlt}, NoActivation),
	}
}

// defaultForbiddenModifiers keeps generated binds clear of modifiers the game
// treats as movement or interaction chords within a category.
func defaultForbiddenModifiers() map[string][]input.Key {
	return map[string][]input.Key{
		"@ui_CCSpaceFlight": {input.KeyLShift, input.KeyLCtrl, input.KeyRShift},
		"@ui_CCFPS":         {input.KeyLCtrl, input.KeyLAlt, input.KeyLShift},
	}
}

// defaultCategoryGroups returns the category collision groups. Categories in
// the same raw group share a physical context in game, so a bind used by one
// is unavailable to the others. A category appearing in several raw groups
// maps to the union of them.
func defaultCategoryGroups() map[string][]string {
	rawGroups := [][]string{
		{
			"@ui_CCSpaceFlight",
			"@ui_CGLightControllerDesc",
			"@ui_CCSeatGeneral",
			"@ui_CG_MFDs",
			"@ui_CGUIGeneral",
			"@ui_CGOpticalTracking",
			"@ui_CGInteraction",
		},
		{
			"@ui_CCVehicle",
			"@ui_CGLightControllerDesc",
			"@ui_CG_MFDs",
			"@ui_CGUIGeneral",
			"@ui_CGOpticalTracking",
			"@ui_CGInteraction",
		},
		{
			"@ui_CCTurrets",
			"@ui_CGUIGeneral",
			"@ui_CGOpticalTracking",
			"@ui_CGInteraction",
		},
		{
			"@ui_CCFPS",
			"@ui_CCEVA",
			"@ui_CGUIGeneral",
			"@ui_CGOpticalTracking",
			"@ui_CGInteraction",
		},
		{"@ui_Map", "@ui_CGUIGeneral"},
		{"@ui_CGEASpectator", "@ui_CGUIGeneral"},
		{"@ui_CCCamera", "@ui_CGUIGeneral"},
	}

	groups := make(map[string][]string)
	for _, group := range rawGroups {
		for _, cat := range group {
			groups[cat] = appendUnique(groups[cat], group...)
		}
	}
	return groups
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, have := range dst {
			if have == item {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, item)
		}
	}
	return dst
}
