package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scentshop/models"
	"scentshop/store"
)

// GetCheckout reports the current checkout stage
func (a *App) GetCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stage": a.Session.Stage()})
}

// BeginCheckout moves browsing to the delivery form
func (a *App) BeginCheckout(c *gin.Context) {
	if err := a.Session.BeginCheckout(); err != nil {
		checkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stage": models.StageForm})
}

// SubmitDetails records delivery address and phone and advances to payment
func (a *App) SubmitDetails(c *gin.Context) {
	var input models.DetailsInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.Session.SubmitDetails(input.Address, input.Phone); err != nil {
		checkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stage": models.StagePayment})
}

// CompletePayment finishes the mock payment and commits the order
func (a *App) CompletePayment(c *gin.Context) {
	order, err := a.Session.CompletePayment()
	if err != nil {
		checkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "order created successfully",
		"order":   order,
		"stage":   models.StageConfirmation,
	})
}

// CloseCheckout returns to browsing from any stage
func (a *App) CloseCheckout(c *gin.Context) {
	a.Session.CloseCheckout()
	c.JSON(http.StatusOK, gin.H{"stage": models.StageBrowsing})
}

// checkoutError maps store errors onto HTTP statuses
func checkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrEmptyCart), errors.Is(err, store.ErrBlankDetails):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrBadStage):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
