package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scentshop/models"
)

// SelectVolume records the volume tier chosen for a fragrance. The choice
// is transient and independent per fragrance.
func (a *App) SelectVolume(c *gin.Context) {
	var input models.VolumeInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.Session.SelectVolume(input.Fragrance, input.Volume)

	c.JSON(http.StatusOK, gin.H{"message": "volume selected"})
}

// GetSelectedVolume returns the recorded volume choice for a fragrance
func (a *App) GetSelectedVolume(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fragrance": c.Param("fragrance"),
		"volume":    a.Session.SelectedVolume(c.Param("fragrance")),
	})
}
