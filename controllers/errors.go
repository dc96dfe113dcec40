package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/totomace/VitaZen-sub000/services"
	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		utils.LogError("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func currentUID(c *gin.Context) string {
	return c.GetString("uid")
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// dateQuery parses an optional YYYY-MM-DD query param, defaulting to now.
func dateQuery(c *gin.Context, name string, loc *time.Location) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Now().In(loc), true
	}
	d, err := time.ParseInLocation(utils.DateLayout, v, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

func limitQuery(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
