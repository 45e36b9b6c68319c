package http

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/session"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.PrincipalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/calendar", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, pageHome, nil)
}

func (h *Handler) privacyPolicy(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pagePrivacyPolicy, nil)
}
