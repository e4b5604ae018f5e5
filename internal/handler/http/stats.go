package http

import (
	"net/http"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

// stats returns the recent action log, newest first. Admin only.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	logs, err := h.services.ActionLogService.Recent(ctx)
	if err != nil {
		log.Err(err).Msg("reading action log failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatsResponse{Logs: logs}, http.StatusOK)
}
