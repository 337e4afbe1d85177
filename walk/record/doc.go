// Package record implements the persistent SI->representative catalogue:
// a concurrent map guarded by a single RWMutex that also guards the
// backing append-only text file, plus the record-file grammar's reader
// and writer.
//
// Concurrency policy: insertions are rare relative to lookups, so one
// lock protects the map and the file handle together, keeping each
// inserted line atomic with its map update. A lookup that races an
// insert may miss it; the inserted record becomes visible only once the
// writer releases the lock.
package record
