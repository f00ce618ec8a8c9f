// Package file provides the on-disk snapshot store: the whole index is
// serialized as one JSON document and replaced atomically via a
// temp-write plus rename, so the persisted file is always a complete,
// previously-valid snapshot. Corrupt snapshots are sidelined, never
// fatal.
package file
