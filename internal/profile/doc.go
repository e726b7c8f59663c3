// Package profile tracks the set of known user profiles and the active one.
//
// # Overview
//
// Every data request the client makes is scoped to a profile, and switching
// profiles must invalidate everything on screen. Centralizing the selection
// in one injected store keeps that dependency explicit: screens ask the
// store for the active profile instead of reaching into configuration or a
// package-level variable.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. Screens call Active frequently while
// rendering; SetActive happens only on an explicit user action. Reads never
// block each other and values are returned by copy, so callers can hold them
// across renders without racing a switch.
//
// # Switch Semantics
//
// SetActive reports whether the selection actually changed. Selecting the
// already-active profile or an unknown ID is a no-op, which lets the caller
// skip the cache invalidation and reloads a real switch requires.
package profile
