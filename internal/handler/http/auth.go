package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/utils"
	"github.com/Martinsschnee/pbweb/models"
)

// login authenticates the posted credentials and, on success, sets the
// http-only session cookie and returns the principal.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	client := models.ClientInfo{
		IP:        utils.ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	user, err := h.services.AuthService.Login(ctx, creds, client)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("login rejected")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, h.cfg.TokenDuration))

	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		User: models.Principal{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, http.StatusOK)
}

// logout clears the session cookie. The token itself is not revoked;
// logout is a client-side discard aid.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -time.Second))
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// sessionCookie builds the auth cookie: http-only, strict same-site,
// path-scoped to the whole application, secure when configured.
func (h *Handler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     authCookieName,
		Value:    value,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(maxAge / time.Second),
		Path:     "/",
	}
}
