package middlewares

import (
	"context"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate rejects requests without a bearer token with 401 and requests
// with a bad token with 403, then stores the verified email in the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		email, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin makes the admin decision in exactly one place: after
// Authenticate, look the caller up and reject anyone whose role is not admin.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := r.Context().Value(constvars.CONTEXT_AUTH_EMAIL_KEY).(string)
		if !ok || email == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingAuthEmail(nil))
			return
		}

		isAdmin, err := m.UserUsecase.IsAdmin(r.Context(), email)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !isAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
