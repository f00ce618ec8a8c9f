package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidType indicates an unknown document type.
	ErrInvalidType = errors.New("invalid document type")

	// Embedding Generator Errors.

	// ErrMissingCredential indicates no embedding credential is
	// configured. Indexing and semantic search degrade to unavailable;
	// hosts should gate affordances on Available().
	ErrMissingCredential = errors.New("embedding credential missing")

	// ErrTransport indicates a network failure reaching the embedding
	// generator. The operation fails; the caller may retry.
	ErrTransport = errors.New("embedding transport failure")

	// ErrRateLimited indicates the embedding generator rejected the
	// call. The engine does not retry automatically; the caller should
	// back off.
	ErrRateLimited = errors.New("embedding rate limited")

	// ErrMalformedResponse indicates the embedding generator returned
	// an undecodable or incomplete payload. Hard failure, not retried.
	ErrMalformedResponse = errors.New("malformed embedding response")

	// Persistence Errors.
	//
	// Persistence failures are never fatal: the in-memory index stays
	// authoritative for the session either way.

	// ErrStorageFull indicates a snapshot write failed for lack of
	// disk space. The store self-heals by evicting its oldest entries.
	ErrStorageFull = errors.New("storage full")

	// ErrStoragePermission indicates the snapshot file is not
	// writable. The index is not persisted this session.
	ErrStoragePermission = errors.New("storage permission denied")
)
