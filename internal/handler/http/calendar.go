package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dailydoit/dailydoit/internal/service"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) currentCalendar(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/calendar/"+strconv.Itoa(h.now().Year()), http.StatusFound)
}

func (h *Handler) calendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)

	cal, err := h.services.CalendarService.Calendar(ctx, userID, year)
	if err != nil {
		if errors.Is(err, service.ErrInvalidYear) {
			h.notFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageCalendar, cal)
}
