package http

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/session"
	"github.com/dailydoit/dailydoit/internal/utils"
)

// requireAuth redirects anonymous requests to the sign-in page. For signed-in
// users it stores the user id in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := session.PrincipalFromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("anonymous request to protected route")
			http.Redirect(w, r, "/signin", http.StatusFound)
			return
		}

		ctx := utils.WithUserID(r.Context(), principal.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
