// Package controllers translates HTTP requests into core service calls and
// service errors back into status codes. No business rules live here.
package controllers

import (
	"errors"
	"log"
	"net/http"

	"bookerino-backend/services"
	"bookerino-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Store
// failures get a generic message; their detail goes to the log only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicate):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("store error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
