package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyRecordID     = errors.New("record ID is required")
	ErrNoRecordIDs       = errors.New("record IDs list cannot be empty")
	ErrEmptyTargetUserID = errors.New("target user ID is required")
	ErrEmptyUserID       = errors.New("user ID is required")
	ErrEmptyBlobData     = errors.New("data is required")
)
