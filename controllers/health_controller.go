package controllers

import (
	"net/http"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Health *services.HealthService
}

func NewHealthController(h *services.HealthService) *HealthController {
	return &HealthController{Health: h}
}

// GET /health
func (hc *HealthController) GetSnapshot(c *gin.Context) {
	snap, err := hc.Health.Snapshot(c.Request.Context(), currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// PUT /health
func (hc *HealthController) UpdateSnapshot(c *gin.Context) {
	var in services.SnapshotInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, rec, err := hc.Health.UpdateSnapshot(c.Request.Context(), currentUID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"health": snap, "record": rec})
}

// GET /health/bmi
func (hc *HealthController) GetBMI(c *gin.Context) {
	bmi, err := hc.Health.BMI(c.Request.Context(), currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bmi)
}

// GET /health/history?limit=N
func (hc *HealthController) ListHistory(c *gin.Context) {
	recs, err := hc.Health.ListHistory(c.Request.Context(), currentUID(c), limitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (hc *HealthController) GetRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := hc.Health.GetRecord(c.Request.Context(), currentUID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (hc *HealthController) UpdateRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.SnapshotInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := hc.Health.UpdateRecord(c.Request.Context(), currentUID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (hc *HealthController) DeleteRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := hc.Health.DeleteRecord(c.Request.Context(), currentUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (hc *HealthController) ClearHistory(c *gin.Context) {
	if err := hc.Health.ClearHistory(c.Request.Context(), currentUID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
