package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scentshop/models"
	"scentshop/store"
)

// SendComment posts a comment on an order, or replaces the entry being
// edited when an edit is in progress
func (a *App) SendComment(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order index"})
		return
	}

	var input models.CommentInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.Session.SendComment(index, input.Text, input.File); err != nil {
		commentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment sent"})
}

// StartEdit marks a previously sent comment for in-place replacement
func (a *App) StartEdit(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order index"})
		return
	}

	var input struct {
		Entry int `json:"entry"`
	}

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.Session.StartEdit(index, input.Entry); err != nil {
		commentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "editing comment"})
}

// CancelEdit clears the editing state without touching the thread
func (a *App) CancelEdit(c *gin.Context) {
	a.Session.CancelEdit()
	c.JSON(http.StatusOK, gin.H{"message": "edit cancelled"})
}

// CloseThread tears down the thread view, cancelling any pending manager
// reply
func (a *App) CloseThread(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order index"})
		return
	}

	a.Session.CloseThread(index)

	c.JSON(http.StatusOK, gin.H{"message": "thread closed"})
}

// commentError maps store errors onto HTTP statuses
func commentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNoSuchOrder), errors.Is(err, store.ErrNoSuchEntry):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
