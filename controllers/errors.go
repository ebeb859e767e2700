package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devnaspi/ThelittlelemonApi/pkg/resp"
	"github.com/devnaspi/ThelittlelemonApi/services"
)

// writeErr maps domain errors onto the HTTP taxonomy.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrSlugTaken),
		errors.Is(err, services.ErrMenuItemInUse):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNotDeliveryCrew):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
