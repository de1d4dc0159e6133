// Package state holds the authoritative record set shared between the
// refresher and the UI.
//
// # Thread Safety
//
// Store uses a sync.RWMutex. Install and Fail take the write lock and
// replace fields wholesale; Snapshot takes the read lock and returns a copy
// whose Records slice and LastError are detached from the store.
//
// # Refresh Lifecycle
//
//	if !store.BeginRefresh() {
//		return ErrRefreshInFlight // one refresh at a time
//	}
//	records, err := repo.FetchAll(ctx)
//	if err != nil {
//		store.Fail(err)          // previous records stay visible
//		return err
//	}
//	gen := store.Install(records) // atomic swap, Generation++
//
// Generation starts at zero and increases by one on every successful
// install, including installs of an empty set. Views derived from records
// remember the generation they were built from; a selection made under an
// older generation is no longer valid.
//
// # Zero Value
//
// The zero Store is ready to use. Snapshot on a fresh store returns a zero
// Snapshot with Generation 0, meaning nothing has been loaded yet.
package state
