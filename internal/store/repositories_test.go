package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/models"
)

// failingBlobStore always errors, simulating an unreachable backend.
type failingBlobStore struct{}

func (failingBlobStore) Get(context.Context, string, string) ([]byte, error) {
	return nil, ErrExecutingQuery
}

func (failingBlobStore) Put(context.Context, string, string, []byte) error {
	return ErrExecutingQuery
}

// ─────────────────────────────────────────────
// VaultRepository
// ─────────────────────────────────────────────

func TestVaultRepository_RoundTrip(t *testing.T) {
	repo := NewVaultRepository(NewMemoryBlobStore(), "records", logger.Nop())
	ctx := context.Background()

	doc := models.VaultDocument{
		Users:   []models.User{{ID: "u-1", Username: "alice", PasswordHash: "$2a$10$hash"}},
		Records: []models.Record{{ID: "r-1", RawLine: "line", OwnerID: models.OwnedBy("u-1")}},
		Checked: []models.CheckedRecord{{Record: models.Record{ID: "c-1"}, CheckedBy: "alice"}},
	}

	if err := repo.Put(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Users) != 1 || got.Users[0].Username != "alice" {
		t.Errorf("users did not survive the round trip: %+v", got.Users)
	}
	if got.Users[0].PasswordHash != "$2a$10$hash" {
		t.Errorf("password hash must survive persistence, got %q", got.Users[0].PasswordHash)
	}
	if len(got.Records) != 1 || !got.Records[0].OwnerID.Is("u-1") {
		t.Errorf("record ownership did not survive the round trip: %+v", got.Records)
	}
	if len(got.Checked) != 1 || got.Checked[0].CheckedBy != "alice" {
		t.Errorf("checked set did not survive the round trip: %+v", got.Checked)
	}
}

func TestVaultRepository_Get_Degrades(t *testing.T) {
	tests := []struct {
		name  string
		blobs BlobStore
		setup func(blobs BlobStore)
	}{
		{
			name:  "missing blob",
			blobs: NewMemoryBlobStore(),
		},
		{
			name:  "unreachable store",
			blobs: failingBlobStore{},
		},
		{
			name:  "corrupt document",
			blobs: NewMemoryBlobStore(),
			setup: func(blobs BlobStore) {
				_ = blobs.Put(context.Background(), "records", "data", []byte("{not json"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.setup != nil {
				test.setup(test.blobs)
			}
			repo := NewVaultRepository(test.blobs, "records", logger.Nop())

			doc, err := repo.Get(context.Background())
			if err != nil {
				t.Fatalf("degraded read must not error, got %v", err)
			}
			if len(doc.Users) != 0 || len(doc.Records) != 0 || len(doc.Checked) != 0 {
				t.Errorf("expected an empty document, got %+v", doc)
			}
		})
	}
}

// ─────────────────────────────────────────────
// RateLimitRepository
// ─────────────────────────────────────────────

func TestRateLimitRepository_RoundTrip(t *testing.T) {
	repo := NewRateLimitRepository(NewMemoryBlobStore(), "rate_limits", logger.Nop())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	entry := models.RateLimitEntry{FailureCount: 3, LastAttemptAt: now}

	if err := repo.Put(ctx, "203.0.113.7", entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FailureCount != 3 || !got.LastAttemptAt.Equal(now) {
		t.Errorf("entry did not survive the round trip: %+v", got)
	}

	// A different IP has its own counter.
	other, err := repo.Get(ctx, "203.0.113.8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.FailureCount != 0 {
		t.Errorf("expected a zero entry for an unseen IP, got %+v", other)
	}
}

func TestRateLimitRepository_Get_PropagatesInfraErrors(t *testing.T) {
	repo := NewRateLimitRepository(failingBlobStore{}, "rate_limits", logger.Nop())

	_, err := repo.Get(context.Background(), "203.0.113.7")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("infrastructure errors must reach the caller, got %v", err)
	}
}

func TestRateLimitRepository_Get_CorruptEntryIsZero(t *testing.T) {
	blobs := NewMemoryBlobStore()
	_ = blobs.Put(context.Background(), "rate_limits", "203.0.113.7", []byte("garbage"))
	repo := NewRateLimitRepository(blobs, "rate_limits", logger.Nop())

	got, err := repo.Get(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FailureCount != 0 {
		t.Errorf("expected a zero entry for a corrupt counter, got %+v", got)
	}
}

// ─────────────────────────────────────────────
// ActionLogRepository
// ─────────────────────────────────────────────

func TestActionLogRepository_RoundTrip(t *testing.T) {
	repo := NewActionLogRepository(NewMemoryBlobStore(), "stats", logger.Nop())
	ctx := context.Background()

	logs := []models.LogEntry{
		{ID: "l-2", Action: "login", Username: "alice"},
		{ID: "l-1", Action: "login", Username: "bob"},
	}

	if err := repo.Put(ctx, logs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "l-2" {
		t.Errorf("log order did not survive the round trip: %+v", got)
	}
}

func TestActionLogRepository_Get_MissingIsEmpty(t *testing.T) {
	repo := NewActionLogRepository(NewMemoryBlobStore(), "stats", logger.Nop())

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected an empty log, got %+v", got)
	}
}
