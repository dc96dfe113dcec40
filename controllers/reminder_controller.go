package controllers

import (
	"net/http"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(r *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: r}
}

func (rc *ReminderController) Create(c *gin.Context) {
	var in services.ReminderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rem, err := rc.Reminders.Create(c.Request.Context(), currentUID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rem)
}

func (rc *ReminderController) List(c *gin.Context) {
	rems, err := rc.Reminders.List(c.Request.Context(), currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rems)
}

func (rc *ReminderController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rem, err := rc.Reminders.Get(c.Request.Context(), currentUID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

func (rc *ReminderController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.ReminderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rem, err := rc.Reminders.Update(c.Request.Context(), currentUID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

// Enabled is a pointer so a missing field is rejected rather than read as false.
type toggleReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// POST /reminders/:id/toggle
func (rc *ReminderController) Toggle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	rem, err := rc.Reminders.Toggle(c.Request.Context(), currentUID(c), id, *req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

func (rc *ReminderController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := rc.Reminders.Delete(c.Request.Context(), currentUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
