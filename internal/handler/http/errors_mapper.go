package http

import (
	"errors"
	"net/http"

	"github.com/dailydoit/dailydoit/internal/service"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:         http.StatusUnauthorized,
	service.ErrInvalidActivationToken:     http.StatusBadRequest,
	service.ErrActivationTokenExpired:     http.StatusGone,
	service.ErrFederatedProfileIncomplete: http.StatusUnauthorized,
	service.ErrInvalidOAuthState:          http.StatusBadRequest,
	service.ErrSignUpConflict:             http.StatusConflict,
	service.ErrFederatedNotEnabled:        http.StatusNotFound,
	service.ErrInvalidYear:                http.StatusNotFound,

	store.ErrDayAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError maps err to an HTTP status. Validation errors are 422 and
// retryable storage failures are 503.
func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}
	if store.IsRetryable(err) {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
