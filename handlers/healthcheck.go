package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckConnection verifies the settings store is reachable
func (a *App) CheckConnection(c *gin.Context) {
	if _, err := a.Repo.Get("health"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "settings store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "scentshop is up"})
}
