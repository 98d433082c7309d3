// Package bindings implements the binding graph engine: parsing a game's
// default control profile into action maps, deduplicating activation modes in
// an arena, overlaying user rebinds, generating collision-free binds for
// actions left without one, and emitting the result back as a rebind profile.
//
// The engine is synchronous; a host shares graphs across goroutines through
// Store, which swaps immutable snapshots atomically.
package bindings
