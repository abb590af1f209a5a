package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentshop/models"
)

// UploadFile stores a comment attachment locally and returns the URL it
// will be served from. Nothing leaves the machine.
func (a *App) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	// Stored under a generated name so uploads can never collide
	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(a.UploadsDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file": models.Attachment{
			Name: file.Filename,
			URL:  "/files/" + name,
		},
	})
}

// DownloadFile serves a stored attachment by its generated name
func (a *App) DownloadFile(c *gin.Context) {
	// Base strips any path traversal from the parameter
	name := filepath.Base(c.Param("name"))
	path := filepath.Join(a.UploadsDir, name)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.File(path)
}
