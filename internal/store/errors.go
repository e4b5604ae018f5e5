package store

import "errors"

// Sentinel errors returned by the blob store and repositories. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrBlobNotFound is returned by BlobStore.Get when no blob exists at
	// the requested (store, key) address.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrStoreNotMigrated is returned when the SQL backend reports that
	// the blobs table does not exist, indicating the schema migration has
	// not been applied.
	ErrStoreNotMigrated = errors.New("blob store schema is not migrated")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
