package utils

import (
	"errors"
	"net/http"

	"staybnb-backend/services"

	"github.com/gin-gonic/gin"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// ServiceError serializes a service failure using the shared taxonomy:
// validation 422, not found 404, wrong owner 401, duplicate 409.
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		JSONError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		JSONError(c, http.StatusUnauthorized, "not authorized")
	case errors.Is(err, services.ErrConflict):
		JSONError(c, http.StatusConflict, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
