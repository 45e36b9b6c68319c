package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/internal/validators"
	"github.com/dailydoit/dailydoit/models"
)

const (
	msgDayExists  = "Date entry already exists"
	msgDayRemoved = "Day removed"
)

// maxDayBodyBytes bounds the JSON body of the day endpoints.
const maxDayBodyBytes = 1 << 10

type dayChange func(ctx context.Context, userID int64, date string) error

func (h *Handler) submitDay(w http.ResponseWriter, r *http.Request) {
	h.changeDay(w, r, h.services.DayService.Submit, "")
}

func (h *Handler) removeDay(w http.ResponseWriter, r *http.Request) {
	h.changeDay(w, r, h.services.DayService.Remove, msgDayRemoved)
}

func (h *Handler) changeDay(w http.ResponseWriter, r *http.Request, change dayChange, successMessage string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DayRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxDayBodyBytes)).Decode(&req); err != nil {
		log.Err(err).Msg(ErrInvalidJSON.Error())
		writeDayResponse(w, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)

	err := change(ctx, userID, req.Date)
	if err == nil {
		utils.WriteJSON(w, models.DayResponse{Success: true, Message: successMessage}, http.StatusOK)
		return
	}

	status := statusFromError(err)
	if vErr, ok := validators.AsValidationError(err); ok {
		log.Debug().Err(err).Str("date", req.Date).Msg("invalid day")
		writeDayResponse(w, status, vErr.Field(validators.FieldDate))
		return
	}
	if errors.Is(err, store.ErrDayAlreadyExists) {
		log.Info().Str("date", req.Date).Msg("day already complete")
		writeDayResponse(w, status, msgDayExists)
		return
	}

	h.reporter.Report(ctx, err, "day change failed")
	writeDayResponse(w, status, http.StatusText(status))
}

func writeDayResponse(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.DayResponse{Success: false, Message: message}, status)
}
