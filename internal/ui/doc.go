// Package ui implements the Bubble Tea interface for Stride.
//
// # Overview
//
// The package holds one Model for the whole application: five top-level tabs
// (Home, Dashboard, Progress, Chat, Profile) plus overlays stacked on the
// active tab (metric detail, hourly breakdown, earlier conversations, one
// conversation's history, one recommendation). All state transitions happen
// in Update; commands perform network IO off the loop and report back as
// messages.
//
// # Fetch lifecycle
//
// Every remote screen owns a fetch.Controller. A load begins by bumping the
// controller's generation and handing that generation to the command; the
// resulting message carries it back and Commit drops the result if a newer
// load superseded it (profile switch, date step, rapid reloads). Screens
// revalidate on every activation; the previous frame keeps painting through
// Controller.Latest while the reload is in flight.
//
// Joined loads (dashboard, detail, hourly, progress) fetch their pieces in
// parallel with fetch.Join and commit all-or-nothing: one failed piece fails
// the screen.
//
// # Pagination
//
// Earlier conversations accumulate through fetch.Collection: the first page
// replaces, subsequent pages merge with dedup by conversation id, and a
// failed load-more keeps what is already on screen.
//
// # Mutations
//
// Goal updates, weight logs, and chat sends are fire-and-report commands.
// Outcomes surface as transient toasts; the server's detail message is
// preferred when the API supplies one. A failed chat send marks the local
// bubble and keeps the text for one-key retry.
//
// # Theming
//
// Themes are lipgloss palettes cycled with T and persisted via the prefs
// package, so the choice survives restarts.
package ui
