package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPersistenceRead is logged when the stored notes payload cannot be
	// read or decoded. The gateway recovers by returning an empty collection.
	ErrPersistenceRead = errors.New("failed to read persisted notes")

	// ErrPersistenceWrite wraps every failure to serialize or store the notes
	// payload. In-memory state is unaffected.
	ErrPersistenceWrite = errors.New("failed to persist notes")

	// ErrCorruptPayload is returned when the payload is not a JSON array of
	// notes with unique, non-empty ids.
	ErrCorruptPayload = errors.New("corrupt notes payload")

	// ErrUnknownBackend is returned by [NewClientStorages] for an
	// unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStorageClosed is returned by operations on a closed backend.
	ErrStorageClosed = errors.New("storage is closed")
)

// Low-level database operation errors of the sqlite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
