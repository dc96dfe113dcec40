package controllers

import (
	"net/http"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Water *services.WaterService
}

func NewWaterController(w *services.WaterService) *WaterController {
	return &WaterController{Water: w}
}

// POST /water  {"amount_ml": 250}
func (wc *WaterController) Drink(c *gin.Context) {
	var body struct {
		AmountMl int `json:"amount_ml" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := wc.Water.Drink(c.Request.Context(), currentUID(c), body.AmountMl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GET /water/today
func (wc *WaterController) Today(c *gin.Context) {
	status, err := wc.Water.Today(c.Request.Context(), currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
