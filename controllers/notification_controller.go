package controllers

import (
	"net/http"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifier *services.Notifier
}

func NewNotificationController(n *services.Notifier) *NotificationController {
	return &NotificationController{Notifier: n}
}

// GET /notifications?limit=N
func (nc *NotificationController) List(c *gin.Context) {
	items, err := nc.Notifier.List(c.Request.Context(), currentUID(c), limitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /notifications/toggle
func (nc *NotificationController) Toggle(c *gin.Context) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := nc.Notifier.SetPushEnabled(c.Request.Context(), currentUID(c), *req.Enabled); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": *req.Enabled,
	})
}

type testReq struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// POST /notifications/test sends a notification through every channel.
func (nc *NotificationController) Test(c *gin.Context) {
	var req testReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		req.Title = "Test notification"
	}
	if req.Body == "" {
		req.Body = "This is only a test."
	}
	note, err := nc.Notifier.Emit(c.Request.Context(), currentUID(c), "TEST", req.Title, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
