package models

import (
	"bytes"
	"encoding/json"
)

// TargetUnassigned is the sentinel value of the targetUserId query
// parameter that selects records without an owner.
const TargetUnassigned = "unassigned"

// Owner is the ownership reference of a record: either assigned to a user
// by ID, or unassigned (a legacy record predating per-user ownership, or a
// record whose owner was deleted).
//
// The zero value is Unassigned. On the wire an unassigned owner is
// represented as JSON null, matching the stored document format.
type Owner struct {
	id       string
	assigned bool
}

// OwnedBy returns an Owner assigned to the user with the given ID.
// An empty id yields Unassigned.
func OwnedBy(id string) Owner {
	if id == "" {
		return Owner{}
	}
	return Owner{id: id, assigned: true}
}

// Unassigned returns the ownership reference of a record without an owner.
func Unassigned() Owner {
	return Owner{}
}

// Assigned reports whether the record has an owner.
func (o Owner) Assigned() bool {
	return o.assigned
}

// UserID returns the owning user's ID, or the empty string when unassigned.
func (o Owner) UserID() string {
	return o.id
}

// Is reports whether the record is assigned to the user with the given ID.
func (o Owner) Is(userID string) bool {
	return o.assigned && o.id == userID
}

var jsonNull = []byte("null")

// MarshalJSON encodes an assigned owner as its user ID string and an
// unassigned owner as null.
func (o Owner) MarshalJSON() ([]byte, error) {
	if !o.assigned {
		return jsonNull, nil
	}
	return json.Marshal(o.id)
}

// UnmarshalJSON decodes null and the empty string as Unassigned, and any
// other string as an assigned owner.
func (o *Owner) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Owner{}
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}

	*o = OwnedBy(id)
	return nil
}
