package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/config"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/utils"
)

type ctxKey string

const (
	CtxUserID ctxKey = "uid"
	CtxRole   ctxKey = "role"
)

// Authenticate requires a valid bearer token and puts the caller's id and
// role into the request context. The invalid-token message is the same for
// signature and expiry failures.
func Authenticate(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				utils.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			tok := strings.TrimPrefix(h, "Bearer ")

			claims, err := utils.ParseJWT(cfg.SessionSecret, tok)
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
			ctx = context.WithValue(ctx, CtxRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
