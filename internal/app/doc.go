// Package app is the composition root of the approvals viewer.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> LoadConfig()      config file + CLI overrides
//	       ├─────> OpenLogger()      log_file or io.Discard
//	       ├─────> prefs.Load()      initial ViewState
//	       ├─────> NewRepository()   HTTP client or JSON file
//	       ├─────> StartPoller()     only when poll_seconds > 0
//	       └─────> ui.Run()          blocks until quit
//
// # Refresh Cycle
//
// Refresher.Refresh is the only place records enter the store:
//
//	BeginRefresh ──> Notify(nil) ──> FetchAll ──┬──> Normalize ──> Install
//	                                            └──> Fail ──> error notice
//
// A second Refresh while one is in flight returns state.ErrRefreshInFlight
// and does not touch the repository. The TUI triggers a refresh on start
// and on demand; the poller triggers one per interval, doubling the wait
// after each failure up to maxBackoff.
//
// # Errors
//
// Config, logger and repository construction failures are returned from
// Run. Fetch failures are not: they are logged, shown as a notice, and the
// previous record set stays on screen.
package app
