package controllers

import (
	"net/http"

	"fitnessmap/services"

	"github.com/gin-gonic/gin"
)

type RecController struct {
	Svc *services.RecService
}

func NewRecController(svc *services.RecService) *RecController {
	return &RecController{Svc: svc}
}

// GET /fitness/dashboard
func (h *RecController) GetDashboard(c *gin.Context) {
	d, err := h.Svc.Dashboard(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
