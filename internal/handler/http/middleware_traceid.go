package http

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns a trace id to the request and attaches a child logger
// carrying it. A client supplied id is kept only when it is a UUID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if !utils.IsUUID(traceID) {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
