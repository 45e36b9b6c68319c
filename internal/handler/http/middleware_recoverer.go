package http

import (
	"fmt"
	"net/http"
)

// withRecoverer turns a panicking handler into the 500 error page. Like
// chi's Recoverer it re-panics [http.ErrAbortHandler].
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.serverError(w, r, fmt.Errorf("%w: %v", ErrPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
