// Package config handles loading and parsing Stride's configuration file.
//
// # Overview
//
// This package reads Stride's TOML configuration to discover the coach API
// endpoint, the demo date anchor, the configured profiles, and where local
// state (snapshots, logs) lives. Environment variables override file values
// so a single install can be pointed at another server without editing the
// file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/stride/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Apply STRIDE_* environment overrides on the result
//
// # Default Values
//
//   - Config file: ~/.config/stride/config.toml
//   - API base URL: http://127.0.0.1:8000
//   - Date anchor: 2016-04-09 (last day with data in the demo dataset)
//   - Page size: 5 conversation subjects per page
//   - Snapshot dir: ~/.local/state/stride/snapshots
//   - Log file: ~/.local/state/stride/stride.log
//   - Profiles: the two demo accounts the backend ships with
//
// # TOML Format
//
// Example config.toml:
//
//	api_base_url = "http://127.0.0.1:8000"
//	date = "2016-04-09"
//	page_size = 5
//
//	[[profiles]]
//	id = "1503960366"
//	username = "arron"
//
//	[[profiles]]
//	id = "1644430081"
//	username = "leia"
//
// All fields are optional. Tilde expansion is performed automatically on
// paths.
//
// # Environment Overrides
//
//   - STRIDE_API_URL overrides api_base_url
//   - STRIDE_DATE overrides date
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, including profiles with empty ids
//
// Missing config files are NOT an error. Defaults are used instead so the
// client works out of the box against a local server.
package config
