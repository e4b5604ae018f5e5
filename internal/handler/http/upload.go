package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

// uploadBlob replaces a blob at (storeName, key) with the posted data,
// allowing manual restore of vault data. Bearer-token authenticated,
// admin only.
func (h *Handler) uploadBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UploadBlobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if len(req.Data) == 0 {
		utils.WriteJSONError(w, "Missing data field", http.StatusBadRequest)
		return
	}

	if req.StoreName == "" {
		req.StoreName = "records"
	}
	if req.Key == "" {
		req.Key = "data"
	}

	if err := h.services.BlobService.Upload(ctx, req.StoreName, req.Key, req.Data); err != nil {
		log.Err(err).Str("store", req.StoreName).Str("key", req.Key).Msg("blob upload failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UploadBlobResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully uploaded blob data to %s/%s", req.StoreName, req.Key),
	}, http.StatusOK)
}
