package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/parser"
	"github.com/Martinsschnee/pbweb/internal/store"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/internal/validators"
	"github.com/Martinsschnee/pbweb/models"
)

// defaultPageLimit is applied when the caller does not specify a limit.
const defaultPageLimit = 50

// recordService is the concrete implementation of [RecordService]. Every
// mutation reads the shared vault document, changes it in memory, and
// writes it back wholesale.
type recordService struct {
	vault     store.VaultRepository
	ids       *utils.UUIDGenerator
	validator validators.Validator
	logger    *logger.Logger
}

// NewRecordService constructs a [RecordService] over the vault document.
func NewRecordService(vault store.VaultRepository, ids *utils.UUIDGenerator, logger *logger.Logger) RecordService {
	return &recordService{
		vault:     vault,
		ids:       ids,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// Add creates a record for every valid entry, owned by the principal.
//
// An entry is valid when it carries both a raw line and parsed data; an
// entry with a raw line but no parsed data is run through the server-side
// line parser as a fallback. Invalid entries are skipped; the call fails
// with [ErrNoValidEntries] only when nothing could be created.
func (s *recordService) Add(ctx context.Context, principal models.Principal, entries []models.RecordEntry) ([]models.Record, error) {
	doc, err := s.vault.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading vault document failed: %w", err)
	}

	now := time.Now()
	created := make([]models.Record, 0, len(entries))
	for _, entry := range entries {
		if entry.RawLine == "" {
			continue
		}

		parsed := entry.ParsedData
		if len(parsed) == 0 {
			parsed = parser.ParseLine(entry.RawLine)
		}
		if len(parsed) == 0 {
			continue
		}

		record := models.Record{
			ID:         s.ids.Generate(),
			RawLine:    entry.RawLine,
			ParsedData: parsed,
			OwnerID:    models.OwnedBy(principal.UserID),
			CreatedAt:  now,
		}
		created = append(created, record)
		doc.Records = append(doc.Records, record)
	}

	if len(created) == 0 {
		return nil, ErrNoValidEntries
	}

	if err := s.vault.Put(ctx, doc); err != nil {
		return nil, fmt.Errorf("writing vault document failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int("count", len(created)).Str("owner", principal.UserID).Msg("records added")

	return created, nil
}

// List returns one page of the principal's visible active records plus
// the full visible checked set.
//
// Visibility: non-admins see only records they own. Admins without a
// target filter see their own records plus unassigned ones; the target
// "unassigned" selects ownerless records, any other target selects that
// user's records. Pagination applies to the active set only.
func (s *recordService) List(ctx context.Context, principal models.Principal, filter models.ListFilter) (models.RecordPage, error) {
	doc, err := s.vault.Get(ctx)
	if err != nil {
		return models.RecordPage{}, fmt.Errorf("reading vault document failed: %w", err)
	}

	visible := make([]models.Record, 0, len(doc.Records))
	for _, record := range doc.Records {
		if ownerVisible(principal, filter.TargetOwnerID, record.OwnerID) {
			visible = append(visible, record)
		}
	}

	checked := make([]models.CheckedRecord, 0, len(doc.Checked))
	for _, record := range doc.Checked {
		if ownerVisible(principal, filter.TargetOwnerID, record.OwnerID) {
			checked = append(checked, record)
		}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}

	total := len(visible)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return models.RecordPage{
		Records:    visible[start:end],
		Checked:    checked,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// ownerVisible applies the ownership visibility rule for one record.
func ownerVisible(principal models.Principal, targetOwnerID string, owner models.Owner) bool {
	if !principal.IsAdmin() {
		return owner.Is(principal.UserID)
	}

	switch targetOwnerID {
	case "":
		// Default admin view: own records plus legacy/unassigned ones.
		return owner.Is(principal.UserID) || !owner.Assigned()
	case models.TargetUnassigned:
		return !owner.Assigned()
	default:
		return owner.Is(targetOwnerID)
	}
}

// Check promotes an active record to the checked set, stamping the time
// and the principal's username.
//
// Only the active set is searched: checking an already-checked record is
// an error, not a no-op, so the transition happens exactly once.
func (s *recordService) Check(ctx context.Context, principal models.Principal, recordID string) (models.CheckedRecord, error) {
	if err := s.validator.Validate(ctx, models.RecordIDRequest{ID: recordID}); err != nil {
		return models.CheckedRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	doc, err := s.vault.Get(ctx)
	if err != nil {
		return models.CheckedRecord{}, fmt.Errorf("reading vault document failed: %w", err)
	}

	i := doc.FindRecord(recordID)
	if i < 0 {
		return models.CheckedRecord{}, ErrRecordNotFound
	}

	checked := models.CheckedRecord{
		Record:    doc.Records[i],
		CheckedAt: time.Now(),
		CheckedBy: principal.Username,
	}

	doc.Records = append(doc.Records[:i], doc.Records[i+1:]...)
	doc.Checked = append(doc.Checked, checked)

	if err := s.vault.Put(ctx, doc); err != nil {
		return models.CheckedRecord{}, fmt.Errorf("writing vault document failed: %w", err)
	}

	return checked, nil
}

// Delete removes a record from the active set, or failing that, from the
// checked set.
func (s *recordService) Delete(ctx context.Context, principal models.Principal, recordID string) error {
	if err := s.validator.Validate(ctx, models.RecordIDRequest{ID: recordID}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	doc, err := s.vault.Get(ctx)
	if err != nil {
		return fmt.Errorf("reading vault document failed: %w", err)
	}

	if i := doc.FindRecord(recordID); i >= 0 {
		doc.Records = append(doc.Records[:i], doc.Records[i+1:]...)
	} else if i := doc.FindChecked(recordID); i >= 0 {
		doc.Checked = append(doc.Checked[:i], doc.Checked[i+1:]...)
	} else {
		return ErrRecordNotFound
	}

	if err := s.vault.Put(ctx, doc); err != nil {
		return fmt.Errorf("writing vault document failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("record_id", recordID).Str("by", principal.Username).Msg("record deleted")

	return nil
}

// Reassign sets the owner on every listed record present in the active
// set. IDs not found are silently skipped; the returned count covers only
// records actually updated.
func (s *recordService) Reassign(ctx context.Context, recordIDs []string, targetUserID string) (int, error) {
	req := models.AssignRecordsRequest{RecordIDs: recordIDs, TargetUserID: targetUserID}
	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	doc, err := s.vault.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading vault document failed: %w", err)
	}

	wanted := make(map[string]struct{}, len(recordIDs))
	for _, id := range recordIDs {
		wanted[id] = struct{}{}
	}

	updated := 0
	for i := range doc.Records {
		if _, ok := wanted[doc.Records[i].ID]; ok {
			doc.Records[i].OwnerID = models.OwnedBy(targetUserID)
			updated++
		}
	}

	if err := s.vault.Put(ctx, doc); err != nil {
		return 0, fmt.Errorf("writing vault document failed: %w", err)
	}

	return updated, nil
}

// ClearChecked empties the checked set unconditionally. Clearing an
// already-empty set succeeds.
func (s *recordService) ClearChecked(ctx context.Context) error {
	doc, err := s.vault.Get(ctx)
	if err != nil {
		return fmt.Errorf("reading vault document failed: %w", err)
	}

	doc.Checked = nil

	if err := s.vault.Put(ctx, doc); err != nil {
		return fmt.Errorf("writing vault document failed: %w", err)
	}

	return nil
}
