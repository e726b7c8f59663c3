// Package app provides the orchestration layer for the Stride application.
//
// # Overview
//
// This package wires together configuration, logging, the API client, the
// profile and snapshot stores, and the UI to create the complete Stride TUI
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Initialization Order
//
//  1. Load configuration from ~/.config/stride/config.toml (plus STRIDE_*
//     environment overrides)
//  2. Route logrus output to the rotated log file
//  3. Load user preferences (theme, last active profile)
//  4. Build the coach API client
//  5. Build the profile store from configured profiles, honoring the
//     preferred profile
//  6. Open the per-profile snapshot cache (advisory; a failure here is
//     logged and the app runs without it)
//  7. Parse the date anchor into a DateCursor
//  8. Start the TUI and block until the user exits or the context cancels
//
// Unlike a monitoring tool there is no background poller: every load is
// triggered by a screen activation or an explicit user action, runs as a
// Bubble Tea command, and reports back into the single update loop.
package app
