package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitnessmap/calculator"
	"fitnessmap/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		code int
		body string
	}{
		{fmt.Errorf("height: %w", calculator.ErrInvalidMeasurement), http.StatusUnprocessableEntity, "invalid"},
		{services.ErrProfileNotFound, http.StatusNotFound, "No fitness data found"},
		{services.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{services.ErrEmailTaken, http.StatusConflict, "email already in use"},
		{services.ErrWeakPassword, http.StatusBadRequest, "at least 6"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, tt.err)

		assert.Equal(t, tt.code, w.Code, tt.err.Error())
		assert.Contains(t, w.Body.String(), tt.body)
	}
}
