package v1

import (
	"errors"
	"net/http"

	"github.com/fne-platform/hours-backend/internal/auth"
	"github.com/fne-platform/hours-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for a models error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrAlreadyAllocated) ||
		errors.Is(err, models.ErrBucketExists) ||
		errors.Is(err, models.ErrLedgerEntriesExist) ||
		errors.Is(err, models.ErrAnnexesReferencing) {
		return http.StatusConflict
	}

	if errors.Is(err, models.ErrEntryNotInContract) ||
		errors.Is(err, auth.ErrForbidden) ||
		errors.Is(err, auth.ErrContractNotInScope) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}
