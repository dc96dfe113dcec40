package controllers

import (
	"net/http"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

// NewDeviceController accepts a nil push service; registration then answers 503.
func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

// POST /devices
func (dc *DeviceController) Register(c *gin.Context) {
	if dc.Push == nil {
		respondError(c, services.ErrUnavailable)
		return
	}
	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.Push.RegisterDevice(c.Request.Context(), currentUID(c), req.Platform, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"endpoint_arn": dev.EndpointARN})
}
