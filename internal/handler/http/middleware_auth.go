// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. The access gate — session verification, role checks,
// logging, tracing, and compression — runs at this layer before requests
// are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/utils"
)

// auth is the cookie-based access gate. It reads the session cookie,
// verifies the token via the auth service, and — on success — stores the
// principal in the request context under [utils.PrincipalCtxKey] before
// delegating to the next handler.
//
// Requests without a cookie, or with an invalid or expired token, are
// rejected with HTTP 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(authCookieName)
		if err != nil {
			log.Err(ErrMissingAuthCookie).Send()
			utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		h.authenticate(next, w, r, cookie.Value)
	})
}

// authBearer is the bearer-token variant of the access gate used by the
// administrative blob upload endpoint, where the caller is a script
// rather than the browser UI.
func (h *Handler) authBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		h.authenticate(next, w, r, tokenString)
	})
}

// authenticate verifies the raw token and forwards the request with the
// principal attached to its context.
func (h *Handler) authenticate(next http.Handler, w http.ResponseWriter, r *http.Request, tokenString string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("session token rejected")
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)
	next.ServeHTTP(w, r.WithContext(ctx))
}

// requireAdmin restricts a route to principals holding the admin role.
// A valid identity without the role is rejected with HTTP 403 Forbidden,
// distinct from the 401 of a missing or invalid session.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		principal, ok := utils.GetPrincipalFromContext(r.Context())
		if !ok {
			log.Error().Msg("admin route reached without principal in context")
			utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !principal.IsAdmin() {
			log.Warn().Str("username", principal.Username).Msg("admin route rejected for non-admin")
			utils.WriteJSONError(w, "Admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
