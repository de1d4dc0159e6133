// Package config loads the approvals viewer configuration file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/approvals/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Empty or whitespace-only fields also fall back to defaults
//
// # Fields
//
//	api_url                  base URL of the sessions API (http://127.0.0.1:8080)
//	sessions_path            path of the list endpoint (/sessions)
//	source_file              read records from a JSON file instead of the API
//	export_dir               directory receiving approvals.csv (.)
//	log_file                 append diagnostic logs here; unset discards them
//	poll_seconds             periodic refresh interval, 0 disables it
//	theme                    Nightfox, Kanagawa or Slate
//	request_timeout_seconds  HTTP timeout (10)
//
// Paths accept a leading ~ and are made absolute. Negative durations are
// rejected with an error rather than silently clamped.
package config
