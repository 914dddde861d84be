package controllers

import (
	"errors"
	"net/http"

	"fitnessmap/calculator"
	"fitnessmap/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes. Unknown errors are 500
// and their text is not echoed to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calculator.ErrInvalidMeasurement):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No fitness data found. Please complete the fitness form."})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
