package models

import "time"

// Record is a single stored credential line. ParsedData is treated
// opaquely by the server; field names and values come from the upstream
// line parser. The optional "Points" field is used by the UI for sorting
// and is not enforced server-side.
type Record struct {
	// ID is the unique, stable identifier of the record (UUID).
	ID string `json:"id"`

	// RawLine is the original delimited input line the record was
	// created from.
	RawLine string `json:"rawLine"`

	// ParsedData maps field names to string values extracted from RawLine.
	ParsedData map[string]string `json:"parsedData"`

	// OwnerID references the owning user, or is null for legacy and
	// unassigned records.
	OwnerID Owner `json:"ownerId"`

	// CreatedAt is the timestamp when the record was added.
	CreatedAt time.Time `json:"createdAt"`
}

// RecordEntry is the caller-supplied input of the add operation: a raw
// line together with its upstream-parsed field mapping.
type RecordEntry struct {
	RawLine    string            `json:"rawLine"`
	ParsedData map[string]string `json:"parsedData"`
}

// CheckedRecord is a record promoted out of the active set. The
// transition happens exactly once and is irreversible; the record keeps
// its identity and gains the review metadata.
type CheckedRecord struct {
	Record

	// CheckedAt is the timestamp of the promotion.
	CheckedAt time.Time `json:"checkedAt"`

	// CheckedBy is the username of the principal that checked the record.
	CheckedBy string `json:"checkedBy"`
}
