package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBrands returns the loaded brand catalog in display order
func (a *App) GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": a.Catalog.Brands()})
}

// GetBrand returns a single brand by name
func (a *App) GetBrand(c *gin.Context) {
	brand, ok := a.Catalog.Brand(c.Param("brand"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"brand": brand})
}

// GetFragrance returns a single fragrance by brand and fragrance name
func (a *App) GetFragrance(c *gin.Context) {
	fragrance, ok := a.Catalog.Fragrance(c.Param("brand"), c.Param("fragrance"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "fragrance not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fragrance": fragrance,
		"orderable": fragrance.Orderable(),
	})
}
