package controllers

import (
	"net/http"
	"time"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
	Loc *time.Location
}

func NewAnalyticsController(svc *services.AnalyticsService, loc *time.Location) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Loc: loc}
}

// GET /analytics/weekly?week_start=YYYY-MM-DD (any day of the wanted week)
func (h *AnalyticsController) GetWeeklyOverview(c *gin.Context) {
	weekStart, ok := dateQuery(c, "week_start", h.Loc)
	if !ok {
		return
	}
	out, err := h.Svc.Weekly(c.Request.Context(), currentUID(c), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
