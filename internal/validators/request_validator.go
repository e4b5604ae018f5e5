package validators

import (
	"context"

	"github.com/Martinsschnee/pbweb/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldRecordID     = "record_id"
	FieldRecordIDs    = "record_ids"
	FieldTargetUserID = "target_user_id"
	FieldUserID       = "user_id"
	FieldData         = "data"
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, *value, fields...)

	case models.DeleteUserRequest:
		return v.validateDeleteUserRequest(ctx, value, fields...)
	case *models.DeleteUserRequest:
		return v.validateDeleteUserRequest(ctx, *value, fields...)

	case models.RecordIDRequest:
		return v.validateRecordIDRequest(ctx, value, fields...)
	case *models.RecordIDRequest:
		return v.validateRecordIDRequest(ctx, *value, fields...)

	case models.AssignRecordsRequest:
		return v.validateAssignRecordsRequest(ctx, value, fields...)
	case *models.AssignRecordsRequest:
		return v.validateAssignRecordsRequest(ctx, *value, fields...)

	case models.UploadBlobRequest:
		return v.validateUploadBlobRequest(ctx, value, fields...)
	case *models.UploadBlobRequest:
		return v.validateUploadBlobRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateUserRequest(_ context.Context, request models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDeleteUserRequest(_ context.Context, request models.DeleteUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.ID == "" {
				return ErrEmptyUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRecordIDRequest(_ context.Context, request models.RecordIDRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if request.ID == "" {
				return ErrEmptyRecordID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAssignRecordsRequest(_ context.Context, request models.AssignRecordsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordIDs, FieldTargetUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordIDs:
			if len(request.RecordIDs) == 0 {
				return ErrNoRecordIDs
			}
		case FieldTargetUserID:
			if request.TargetUserID == "" {
				return ErrEmptyTargetUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUploadBlobRequest(_ context.Context, request models.UploadBlobRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			if len(request.Data) == 0 {
				return ErrEmptyBlobData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
