package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vapextuc-storefront/internal/models"
	"vapextuc-storefront/internal/notify"
)

// response is the envelope every endpoint answers with. Notifications
// carry the toast messages the widgets emitted while handling the
// request.
type response struct {
	Data          any                   `json:"data,omitempty"`
	Error         string                `json:"error,omitempty"`
	Notifications []notify.Notification `json:"notifications,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var validation *models.ValidationError
	var notFound *models.NotFoundError
	var quota *models.QuotaError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &quota):
		return http.StatusTooManyRequests
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidLogin), errors.Is(err, models.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrDuplicateEmail), errors.Is(err, models.ErrSpinInProgress):
		return http.StatusConflict
	case errors.Is(err, models.ErrCartEmpty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
