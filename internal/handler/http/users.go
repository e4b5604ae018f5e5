package http

import (
	"encoding/json"
	"net/http"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

// listUsers returns all accounts without password hashes. Admin only.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

// createUser registers a new account. Admin only.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Create(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("creating user failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.CreateUserResponse{Success: true, User: user}, http.StatusOK)
}

// deleteUser removes an account and unassigns its records. Admin only;
// self-deletion is refused.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	unassigned, err := h.services.UserService.Delete(ctx, principal, req.ID)
	if err != nil {
		log.Err(err).Str("user_id", req.ID).Msg("deleting user failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DeleteUserResponse{
		Message:           "User deleted",
		RecordsUnassigned: unassigned,
	}, http.StatusOK)
}
