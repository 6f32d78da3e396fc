// Package store provides the local key-value storage used by fitbook.
//
// The package defines the [KV] interface: one string value per string key,
// absent on miss, overwritten wholesale on set. Four backends implement it:
//   - BoltDB (default), an embedded key-value file
//   - SQLite, a single kv table in a pure Go database
//   - Redis, for sharing a profile between machines
//   - Memory, for tests and --ephemeral runs
//
// # Opening a store
//
// Use [Open] with the store section of the configuration:
//
//	kv, err := store.Open(ctx, cfg.Store, appDir)
//	if err != nil {
//	    return err
//	}
//	defer kv.Close()
//
// Keys carry their own version suffix (for example profile_name_v1); there
// is no other schema.
package store
