package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the media type of every JSON response the app writes.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON encodes data as the response body with the given status code.
// JSON answers are per-user (day toggles, health) and are never cached.
//
// If encoding fails nothing but a plain 500 is written and the encoding
// error is returned.
//
//	WriteJSON(w, models.DayResponse{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
