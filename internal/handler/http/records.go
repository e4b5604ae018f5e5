package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

// listRecords returns one page of the caller's visible active records
// plus the full visible checked set.
//
// Query parameters: page (1-indexed), limit, and — for admins — an
// optional targetUserId ("unassigned" selects ownerless records).
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.services.RecordService.List(ctx, principal, models.ListFilter{
		TargetOwnerID: query.Get("targetUserId"),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		log.Err(err).Msg("listing records failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// addRecords creates records from the posted entries. The body may be a
// single entry object or an array of entries; the response reports the
// successfully created subset.
func (h *Handler) addRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := decodeRecordEntries(r.Body)
	if err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RecordService.Add(ctx, principal, entries)
	if err != nil {
		log.Err(err).Msg("adding records failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AddRecordsResponse{
		Success: true,
		Count:   len(created),
		Records: created,
	}, http.StatusOK)
}

// decodeRecordEntries normalizes the add body: a bare object is treated
// as a one-element array.
func decodeRecordEntries(body io.Reader) ([]models.RecordEntry, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var entries []models.RecordEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var entry models.RecordEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return []models.RecordEntry{entry}, nil
}

// checkRecord promotes an active record to the checked set.
func (h *Handler) checkRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.RecordIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	checked, err := h.services.RecordService.Check(ctx, principal, req.ID)
	if err != nil {
		log.Err(err).Str("record_id", req.ID).Msg("checking record failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.CheckRecordResponse{Success: true, Record: checked}, http.StatusOK)
}

// deleteRecord removes a record from whichever set contains it.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.RecordIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.Delete(ctx, principal, req.ID); err != nil {
		log.Err(err).Str("record_id", req.ID).Msg("deleting record failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// assignRecords sets the owner of the listed active records. Admin only.
func (h *Handler) assignRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AssignRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.RecordService.Reassign(ctx, req.RecordIDs, req.TargetUserID)
	if err != nil {
		log.Err(err).Msg("reassigning records failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AssignRecordsResponse{Success: true, UpdatedCount: updated}, http.StatusOK)
}

// clearChecked empties the checked set. Admin only, idempotent.
func (h *Handler) clearChecked(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.RecordService.ClearChecked(ctx); err != nil {
		log.Err(err).Msg("clearing checked records failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
