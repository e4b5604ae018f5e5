package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Martinsschnee/pbweb/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewRequestValidator
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("pointer and value dispatch equally", func(t *testing.T) {
		req := models.LoginRequest{Username: "admin", Password: "secret"}
		assert.NoError(t, v.Validate(ctx, req))
		assert.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		req := models.LoginRequest{Username: "admin", Password: "secret"}
		err := v.Validate(ctx, req, "no_such_field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_LoginRequest
// ---------------------------------------------------------------------------

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.LoginRequest
		fields  []string
		wantErr error
	}{
		{
			name:    "valid",
			request: models.LoginRequest{Username: "admin", Password: "secret"},
		},
		{
			name:    "missing username",
			request: models.LoginRequest{Password: "secret"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "missing password",
			request: models.LoginRequest{Username: "admin"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "field scoping skips unlisted fields",
			request: models.LoginRequest{Username: "admin"},
			fields:  []string{FieldUsername},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := v.Validate(ctx, test.request, test.fields...)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_CreateUserRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateUserRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.CreateUserRequest
		wantErr error
	}{
		{
			name:    "valid",
			request: models.CreateUserRequest{Username: "alice", Password: "pw", Role: models.RoleUser},
		},
		{
			name:    "role is not validated here",
			request: models.CreateUserRequest{Username: "alice", Password: "pw", Role: "weird"},
		},
		{
			name:    "missing username",
			request: models.CreateUserRequest{Password: "pw"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "missing password",
			request: models.CreateUserRequest{Username: "alice"},
			wantErr: ErrEmptyPassword,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := v.Validate(ctx, test.request)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_RecordIDRequests
// ---------------------------------------------------------------------------

func TestValidate_RecordIDRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("record id present", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.RecordIDRequest{ID: "r-1"}))
	})

	t.Run("record id missing", func(t *testing.T) {
		err := v.Validate(ctx, models.RecordIDRequest{})
		require.ErrorIs(t, err, ErrEmptyRecordID)
	})

	t.Run("user id missing", func(t *testing.T) {
		err := v.Validate(ctx, models.DeleteUserRequest{})
		require.ErrorIs(t, err, ErrEmptyUserID)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_AssignRecordsRequest
// ---------------------------------------------------------------------------

func TestValidate_AssignRecordsRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.AssignRecordsRequest
		wantErr error
	}{
		{
			name:    "valid",
			request: models.AssignRecordsRequest{RecordIDs: []string{"r-1"}, TargetUserID: "u-1"},
		},
		{
			name:    "unassigned target is a valid target",
			request: models.AssignRecordsRequest{RecordIDs: []string{"r-1"}, TargetUserID: models.TargetUnassigned},
		},
		{
			name:    "empty id list",
			request: models.AssignRecordsRequest{TargetUserID: "u-1"},
			wantErr: ErrNoRecordIDs,
		},
		{
			name:    "missing target",
			request: models.AssignRecordsRequest{RecordIDs: []string{"r-1"}},
			wantErr: ErrEmptyTargetUserID,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := v.Validate(ctx, test.request)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_UploadBlobRequest
// ---------------------------------------------------------------------------

func TestValidate_UploadBlobRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("data present", func(t *testing.T) {
		req := models.UploadBlobRequest{Data: json.RawMessage(`{"records":[]}`)}
		assert.NoError(t, v.Validate(ctx, req))
	})

	t.Run("data missing", func(t *testing.T) {
		err := v.Validate(ctx, models.UploadBlobRequest{StoreName: "records", Key: "data"})
		require.ErrorIs(t, err, ErrEmptyBlobData)
	})
}
