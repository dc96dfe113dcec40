package controllers

import (
	"net/http"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	History *services.HistoryService
}

func NewHistoryController(h *services.HistoryService) *HistoryController {
	return &HistoryController{History: h}
}

// GET /history?type=water
func (hc *HistoryController) List(c *gin.Context) {
	items, err := hc.History.List(c.Request.Context(), currentUID(c), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (hc *HistoryController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := hc.History.Delete(c.Request.Context(), currentUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (hc *HistoryController) Clear(c *gin.Context) {
	if err := hc.History.Clear(c.Request.Context(), currentUID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
