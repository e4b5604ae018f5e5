package models

import "encoding/json"

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RecordIDRequest is the body of the check and delete record endpoints.
type RecordIDRequest struct {
	ID string `json:"id"`
}

// AssignRecordsRequest is the body of the admin record reassignment
// endpoint.
type AssignRecordsRequest struct {
	RecordIDs    []string `json:"recordIds"`
	TargetUserID string   `json:"targetUserId"`
}

// CreateUserRequest is the body of the admin user creation endpoint.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// DeleteUserRequest is the body of the admin user deletion endpoint.
type DeleteUserRequest struct {
	ID string `json:"id"`
}

// UploadBlobRequest is the body of the administrative blob upload
// endpoint. StoreName and Key default to the primary vault document
// location when omitted.
type UploadBlobRequest struct {
	StoreName string          `json:"storeName"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
}

// ListFilter narrows and paginates the record listing. TargetOwnerID is
// honoured only for admin principals; the value "unassigned" selects
// records without an owner.
type ListFilter struct {
	TargetOwnerID string
	Page          int
	Limit         int
}
