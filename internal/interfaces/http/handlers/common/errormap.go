// Package common provides shared HTTP handler utilities.
package common

import (
	"errors"

	"github.com/gin-gonic/gin"

	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	apperrors "harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/utils"
)

// RespondError translates domain errors into the API error envelope.
// Sentinels map to their HTTP class; everything else falls through to
// the opaque handling in utils.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dock.ErrDockNotFound):
		utils.ErrorResponseWithError(c, apperrors.NewNotFoundError("dock not found"))
	case errors.Is(err, hauler.ErrHaulerNotFound):
		utils.ErrorResponseWithError(c, apperrors.NewNotFoundError("hauler not found"))
	case errors.Is(err, ship.ErrShipNotFound):
		utils.ErrorResponseWithError(c, apperrors.NewNotFoundError("ship not found"))
	case errors.Is(err, assignment.ErrResourceNotFound):
		utils.ErrorResponseWithError(c, apperrors.NewNotFoundError("referenced resource not found", err.Error()))
	case errors.Is(err, assignment.ErrResourceInactive):
		utils.ErrorResponseWithError(c, apperrors.NewConflictError("resource is not accepting assignments", err.Error()))
	case errors.Is(err, assignment.ErrCapacityExceeded):
		utils.ErrorResponseWithError(c, apperrors.NewConflictError("resource capacity exceeded", err.Error()))
	case errors.Is(err, assignment.ErrCapacityViolation):
		utils.ErrorResponseWithError(c, apperrors.NewConflictError("capacity below current occupancy", err.Error()))
	case errors.Is(err, dock.ErrDockLocationExists):
		utils.ErrorResponseWithError(c, apperrors.NewConflictError("dock location already exists"))
	case errors.Is(err, dock.ErrVersionConflict),
		errors.Is(err, hauler.ErrVersionConflict),
		errors.Is(err, ship.ErrVersionConflict):
		utils.ErrorResponseWithError(c, apperrors.NewConflictError("resource was modified concurrently, retry the request"))
	default:
		utils.ErrorResponseWithError(c, err)
	}
}
