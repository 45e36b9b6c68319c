package http

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/session"
)

const (
	csrfFormField = "_csrf"
	csrfHeader    = "X-CSRF-Token"
)

// provideCSRF creates the CSRF pair of the session on first use. The token
// is exposed to templates as CSRFToken.
func (h *Handler) provideCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := session.FromContext(r.Context())

		if secret, token := s.CSRF(); secret == "" || token == "" {
			if err := h.newCSRFPair(s); err != nil {
				h.serverError(w, r, err)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) newCSRFPair(s *session.Session) error {
	secret, err := h.csrf.NewSecret()
	if err != nil {
		return err
	}
	token, err := h.csrf.Create(secret)
	if err != nil {
		return err
	}

	s.SetCSRF(secret, token)
	return nil
}

// validateCSRF rejects unsafe requests whose token, taken from the "_csrf"
// form field or the X-CSRF-Token header, was not minted for the session
// secret. Rejected requests never reach the handler.
func (h *Handler) validateCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token := r.PostFormValue(csrfFormField)
		if token == "" {
			token = r.Header.Get(csrfHeader)
		}
		if token == "" {
			log.Info().Err(ErrNoCSRFToken).Str("path", r.URL.Path).Send()
			http.Error(w, ErrNoCSRFToken.Error(), http.StatusForbidden)
			return
		}

		secret, _ := session.FromContext(r.Context()).CSRF()
		if !h.csrf.Verify(secret, token) {
			log.Warn().Err(ErrInvalidCSRFToken).Str("path", r.URL.Path).Send()
			http.Error(w, ErrInvalidCSRFToken.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
