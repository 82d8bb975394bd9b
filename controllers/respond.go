package controllers

import (
	"errors"
	"net/http"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/services"
)

// statusFor memetakan error domain ke kode HTTP; sisanya 500.
func statusFor(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEmptyBasket),
		errors.Is(err, services.ErrInvalidBackup),
		errors.Is(err, services.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
