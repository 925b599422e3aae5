package middleware

import (
	"net/http"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/utils"
)

// RequireRoles allows the request only if the caller's role (set by
// Authenticate) is in the allowed set.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := utils.GetString(r.Context(), CtxRole)
			if _, ok := allowed[models.Role(role)]; !ok {
				utils.Error(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
