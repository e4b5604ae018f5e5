package models

// LoginResponse is the body returned on a successful login. The session
// token itself travels in the auth cookie, not in the body.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    Principal `json:"user"`
}

// RecordPage is the result of the record listing: one page of the
// ownership-filtered active set plus the full filtered checked set.
type RecordPage struct {
	Records    []Record        `json:"records"`
	Checked    []CheckedRecord `json:"checked"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// AddRecordsResponse reports the subset of submitted entries that were
// actually created.
type AddRecordsResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Records []Record `json:"records"`
}

// CheckRecordResponse returns the promoted record.
type CheckRecordResponse struct {
	Success bool          `json:"success"`
	Record  CheckedRecord `json:"record"`
}

// AssignRecordsResponse reports how many records were actually
// reassigned; IDs absent from the active set are silently skipped.
type AssignRecordsResponse struct {
	Success      bool `json:"success"`
	UpdatedCount int  `json:"updatedCount"`
}

// DeleteUserResponse reports the ownership cascade of a user deletion.
type DeleteUserResponse struct {
	Message           string `json:"message"`
	RecordsUnassigned int    `json:"recordsUnassigned"`
}

// CreateUserResponse returns the newly created account without its
// password hash.
type CreateUserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// UsersResponse lists all accounts without password hashes.
type UsersResponse struct {
	Users []User `json:"users"`
}

// StatsResponse returns the recent action log, newest first.
type StatsResponse struct {
	Logs []LogEntry `json:"logs"`
}

// UploadBlobResponse acknowledges an administrative blob upload.
type UploadBlobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`

	// RetryAfterSeconds is set only on rate-limit rejections and hints
	// when the client may retry.
	RetryAfterSeconds int `json:"retryAfterSeconds,omitempty"`
}
