package v1

import (
	"errors"
	"net/http"

	"github.com/granafy/backend/internal/goalfund"
	"github.com/granafy/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the ID in the URL is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	var complete *goalfund.GoalAlreadyCompleteError
	if errors.As(err, &complete) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var errOwnerIDParameter = errors.New("the owner query parameter must be set to a valid UUID")
