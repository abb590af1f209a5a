package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scentshop/models"
	"scentshop/store"
)

// Register persists the visitor's details and completes registration
func (a *App) Register(c *gin.Context) {
	var input models.RegisterInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.Session.Register(input); err != nil {
		if errors.Is(err, store.ErrBlankDetails) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "registered successfully"})
}

// SkipRegistration records a skip and opens the grace period
func (a *App) SkipRegistration(c *gin.Context) {
	if err := a.Session.SkipRegistration(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record skip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "registration skipped"})
}

// RegistrationStatus reports whether the visitor is registered and whether
// they should be redirected to the start page
func (a *App) RegistrationStatus(c *gin.Context) {
	status, err := a.Session.CheckRegistration()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check registration"})
		return
	}

	c.JSON(http.StatusOK, status)
}
