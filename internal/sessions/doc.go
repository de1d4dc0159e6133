// Package sessions defines the session record model and the repositories
// that supply it.
//
// # Overview
//
// A Record is one access-request session: who asked, for which account and
// role, when, for how long, why, who approved it, and where it is in its
// lifecycle. Records are fetched in bulk; there is no incremental API.
//
// # Repositories
//
// Repository is the only abstraction the rest of the application sees:
//
//	type Repository interface {
//		FetchAll(ctx context.Context) ([]Record, error)
//	}
//
// Two implementations are provided:
//
//   - Client: GET <api_url><sessions_path>, JSON body
//   - FileRepository: a JSON file on disk, re-read on each fetch
//
// Both accept either a bare array or an {"items": [...]} envelope.
//
// # Tolerant Decoding
//
// The upstream API is loose about types. ID accepts strings and numbers,
// Hours accepts numbers and numeric strings. Timestamps are kept as the
// raw strings the API sent; ParseTime understands RFC3339 (with or without
// fractional seconds), "2006-01-02 15:04:05" and "2006-01-02", and returns
// the zero time for anything else.
package sessions
