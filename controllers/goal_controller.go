package controllers

import (
	"net/http"
	"time"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
	Loc   *time.Location
}

func NewGoalController(g *services.GoalService, loc *time.Location) *GoalController {
	return &GoalController{Goals: g, Loc: loc}
}

// GET /goals?date=YYYY-MM-DD
func (gc *GoalController) GetGoals(c *gin.Context) {
	date, ok := dateQuery(c, "date", gc.Loc)
	if !ok {
		return
	}
	out, err := gc.Goals.GoalsAndProgress(c.Request.Context(), currentUID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /goals
func (gc *GoalController) UpdateGoals(c *gin.Context) {
	var req services.GoalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal, err := gc.Goals.Upsert(c.Request.Context(), currentUID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
