package controllers

import (
	"errors"

	"github.com/IshuIsSleepy/KhanaKhalo/pkg/resp"
	"github.com/IshuIsSleepy/KhanaKhalo/services"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service error taxonomy onto HTTP codes.
// Unrecognized errors fall through as 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrUniversityRequired),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrItemWrongVendor),
		errors.Is(err, services.ErrInvalidMethod),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrReviewNoTarget),
		errors.Is(err, services.ErrInvalidRating):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
