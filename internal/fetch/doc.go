// Package fetch implements the remote-data lifecycle shared by every screen.
//
// # Overview
//
// Each screen's data goes through the same state machine:
//
//	idle → loading → ready
//	              ↘ error (retry re-enters loading)
//
// Controller owns one instance of that machine. Screens call Begin when they
// start a load, run their requests (usually a Join of several independent
// fetches), and Commit the outcome. A monotonic generation counter makes
// overlapping loads safe: only the most recently begun load may commit, so a
// slow stale response can never overwrite fresher state.
//
// # Joins
//
// Join runs independent requests together and fails the whole screen if any
// of them fails. There is deliberately no partial-success state at the
// screen level: an error commit replaces previously ready data. Pagination
// is the one exception, handled by Collection.
//
// # Pagination
//
// Collection specializes the lifecycle for offset/limit list endpoints. An
// initial load replaces the list; load-more merges the next page in,
// deduplicating by a stable key (later fetches of a key overwrite in place,
// first-seen order is preserved). A failed load-more keeps the items already
// on screen, since only the delta fetch failed, not the collection. Replace
// and Reset start a new epoch; a load-more issued against the old list is
// dropped when it lands.
//
// # Snapshots
//
// Seed installs provisional data from the snapshot cache before the first
// load resolves. It never bumps the generation, so the real load always
// supersedes the seeded view.
package fetch
