package controllers

import (
	"net/http"
	"strconv"

	"fitnessmap/calculator"
	"fitnessmap/services"

	"github.com/gin-gonic/gin"
)

const maxHistory = 100

type FitnessController struct {
	Svc *services.FitnessService
}

func NewFitnessController(svc *services.FitnessService) *FitnessController {
	return &FitnessController{Svc: svc}
}

// POST /fitness
func (h *FitnessController) Submit(c *gin.Context) {
	var form services.FitnessForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Svc.Submit(c.Request.Context(), c.GetUint("userID"), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// POST /fitness/preview runs the engine without saving.
func (h *FitnessController) Preview(c *gin.Context) {
	var in calculator.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Svc.Preview(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /fitness
func (h *FitnessController) Latest(c *gin.Context) {
	p, err := h.Svc.Latest(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /fitness/history?limit=N
func (h *FitnessController) History(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistory)
	}

	history, err := h.Svc.History(c.Request.Context(), c.GetUint("userID"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
