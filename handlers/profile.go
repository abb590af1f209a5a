package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the session profile, order history included
func (a *App) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": a.Session.User()})
}
