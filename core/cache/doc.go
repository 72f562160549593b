// Package cache provides a small generic TTL cache with stampede protection.
//
// Concurrent misses for the same key are collapsed with singleflight so an
// expensive loader (e.g. a multi-table snapshot query) runs once per key.
//
// # Usage
//
//	snapshots := cache.New[*reconcile.Snapshot](time.Minute)
//	snap, err := snapshots.Get(ctx, "42", loadSnapshot)
//
// Entries are replaced only after they expire.
package cache
