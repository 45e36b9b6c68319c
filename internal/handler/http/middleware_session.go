package http

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/session"
)

// withSession loads the session of the request and commits it once the
// handler has returned. The response is buffered until the commit succeeds;
// a failed commit discards it and answers 500.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := h.sessions.Load(r)
		if err != nil {
			h.serverError(w, r, err)
			return
		}

		r = r.WithContext(session.NewContext(r.Context(), s))
		bw := newBufferedWriter(w)

		next.ServeHTTP(bw, r)

		if err = h.sessions.Commit(r.Context(), w, s); err != nil {
			h.serverError(w, r, err)
			return
		}

		if err = bw.flush(); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withSession").Msg("error writing response")
		}
	})
}
