package controllers

import (
	"net/http"
	"time"

	"github.com/totomace/VitaZen-sub000/services"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	Notes *services.NoteService
	Loc   *time.Location
}

func NewNoteController(n *services.NoteService, loc *time.Location) *NoteController {
	return &NoteController{Notes: n, Loc: loc}
}

func (nc *NoteController) Create(c *gin.Context) {
	var in services.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	note, err := nc.Notes.Create(c.Request.Context(), currentUID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GET /notes or /notes?date=YYYY-MM-DD
func (nc *NoteController) List(c *gin.Context) {
	var (
		notes []services.NoteView
		err   error
	)
	if c.Query("date") != "" {
		day, ok := dateQuery(c, "date", nc.Loc)
		if !ok {
			return
		}
		notes, err = nc.Notes.ListForDay(c.Request.Context(), currentUID(c), day)
	} else {
		notes, err = nc.Notes.List(c.Request.Context(), currentUID(c))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (nc *NoteController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	note, err := nc.Notes.Get(c.Request.Context(), currentUID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (nc *NoteController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in services.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	note, err := nc.Notes.Update(c.Request.Context(), currentUID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (nc *NoteController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := nc.Notes.Delete(c.Request.Context(), currentUID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
