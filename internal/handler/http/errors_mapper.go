package http

import (
	"errors"
	"net/http"

	"github.com/adontsov/go-note-keeper/internal/service"
	"github.com/adontsov/go-note-keeper/internal/store"
	"github.com/adontsov/go-note-keeper/internal/utils"
	"github.com/adontsov/go-note-keeper/internal/validators"
	"github.com/adontsov/go-note-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrAccountMisconfigured:    http.StatusInternalServerError,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrInvalidNoteID:           http.StatusBadRequest,
	service.ErrNotNoteOwner:            http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the stable client-facing message for err. Anything
// that maps to HTTP 500 is masked behind a generic message so that internal
// details never leak into response bodies.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		if errors.Is(err, service.ErrAccountMisconfigured) {
			return service.ErrAccountMisconfigured.Error()
		}
		return http.StatusText(http.StatusInternalServerError)
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// writeError renders err as the shared `{success:false, ...}` failure body.
// Validation failures become a field-error list; everything else becomes a
// single message with the status resolved through errorStatusMap.
func writeError(w http.ResponseWriter, err error) {
	if verr, ok := validators.AsValidationErrors(err); ok {
		utils.WriteJSON(w, models.ValidationErrorResponse{Success: false, Errors: verr.Fields}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: messageFromError(err, status)}, status)
}

// writeErrorStatus renders a single-message failure body with an explicit
// status, for transport-level failures that never touch the service layer.
func writeErrorStatus(w http.ResponseWriter, err error, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: err.Error()}, status)
}
