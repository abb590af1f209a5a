package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scentshop/models"
)

// GetCart returns the current cart with totals
func (a *App) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": a.Session.Cart()})
}

// AddToCart prices the selected fragrance volume against the catalog and
// appends it to the cart
func (a *App) AddToCart(c *gin.Context) {
	var input models.CartItemInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Price the volume tier; this also rejects unorderable fragrances
	price, ok := a.Catalog.Price(input.Brand, input.Fragrance, input.Volume)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "fragrance or volume not found"})
		return
	}

	a.Session.AddToCart(models.CartItem{
		Fragrance: input.Fragrance,
		Brand:     input.Brand,
		Volume:    input.Volume,
		Price:     price,
	})

	c.JSON(http.StatusOK, gin.H{"message": "item added to cart successfully"})
}

// RemoveFromCart removes the cart line at the given position. An invalid
// position is ignored, matching the store's bounds filtering.
func (a *App) RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
		return
	}

	a.Session.RemoveFromCart(index)

	c.JSON(http.StatusOK, gin.H{"message": "item removed from cart"})
}
