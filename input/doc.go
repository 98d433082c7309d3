// Package input defines the physical input vocabulary of the binding engine:
// keyboard keys, mouse buttons, and the compact token spellings used by the
// game's binding profiles ("lctrl", "np_1", "mouse4").
//
// Tokens are case-insensitive on parse and have exactly one canonical spelling
// on render, so ParseKey(k.Token()) round-trips for every supported key.
package input
