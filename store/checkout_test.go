package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scentshop/models"
)

func TestBeginCheckoutRequiresItems(t *testing.T) {
	s := newTestSession(t)

	err := s.BeginCheckout()
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, models.StageBrowsing, s.Stage())
}

func TestSubmitDetailsRequiresNonBlankFields(t *testing.T) {
	s := newTestSession(t)
	s.AddToCart(amberWood())
	require.NoError(t, s.BeginCheckout())

	assert.ErrorIs(t, s.SubmitDetails("", "9991234567"), ErrBlankDetails)
	assert.ErrorIs(t, s.SubmitDetails("5 Rose Lane", "   "), ErrBlankDetails)
	assert.Equal(t, models.StageForm, s.Stage())

	assert.NoError(t, s.SubmitDetails("5 Rose Lane", "9991234567"))
	assert.Equal(t, models.StagePayment, s.Stage())
}

func TestCheckoutStageGating(t *testing.T) {
	s := newTestSession(t)
	s.AddToCart(amberWood())

	// Out-of-order transitions are rejected
	assert.ErrorIs(t, s.SubmitDetails("5 Rose Lane", "9991234567"), ErrBadStage)
	_, err := s.CompletePayment()
	assert.ErrorIs(t, err, ErrBadStage)

	require.NoError(t, s.BeginCheckout())
	assert.ErrorIs(t, s.BeginCheckout(), ErrBadStage)
	_, err = s.CompletePayment()
	assert.ErrorIs(t, err, ErrBadStage)
}

func TestCompletePaymentCommitsSnapshot(t *testing.T) {
	s := newTestSession(t)
	s.AddToCart(amberWood())
	s.AddToCart(models.CartItem{Fragrance: "Gypsy Water", Brand: "Byredo", Volume: "100", Price: 19800})

	require.NoError(t, s.BeginCheckout())
	require.NoError(t, s.SubmitDetails("5 Rose Lane", "9991234567"))

	order, err := s.CompletePayment()
	require.NoError(t, err)

	// The cart empties and exactly one order appears
	assert.Empty(t, s.Cart().Items)
	orders := s.Orders()
	require.Len(t, orders, 1)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, 2800+19800, order.Total)
	assert.Equal(t, "5 Rose Lane", order.Address)
	assert.Equal(t, "9991234567", order.Phone)
	require.Len(t, order.Items, 2)
	assert.Equal(t, models.StageConfirmation, s.Stage())

	current, ok := s.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, order.ID, current.ID)

	// Later cart activity must not leak into the committed snapshot
	s.CloseCheckout()
	s.AddToCart(models.CartItem{Fragrance: "Oud Satin Mood", Brand: "MFK", Volume: "70", Price: 32000})
	again, err := s.Order(0)
	require.NoError(t, err)
	assert.Len(t, again.Items, 2)
	assert.Equal(t, 2800+19800, again.Total)
}

func TestCloseCheckoutReturnsToBrowsing(t *testing.T) {
	s := newTestSession(t)
	s.AddToCart(amberWood())
	require.NoError(t, s.BeginCheckout())

	s.CloseCheckout()
	assert.Equal(t, models.StageBrowsing, s.Stage())

	// Abandoning the form keeps the cart, so checkout can restart
	assert.Len(t, s.Cart().Items, 1)
	assert.NoError(t, s.BeginCheckout())
}
