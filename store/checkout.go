package store

import (
	"strings"

	"go.uber.org/zap"

	"scentshop/models"
	"scentshop/utils"
)

// Stage returns the current checkout stage
func (s *Session) Stage() models.CheckoutStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// BeginCheckout moves browsing to the delivery form. The cart must be
// non-empty.
func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != models.StageBrowsing {
		return ErrBadStage
	}
	if len(s.cart) == 0 {
		return ErrEmptyCart
	}

	s.stage = models.StageForm
	return nil
}

// SubmitDetails records the delivery address and phone and moves the form
// to payment. Both fields must be non-blank; nothing further is validated.
func (s *Session) SubmitDetails(address, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != models.StageForm {
		return ErrBadStage
	}
	if strings.TrimSpace(address) == "" || strings.TrimSpace(phone) == "" {
		return ErrBlankDetails
	}

	s.formAddress = address
	s.formPhone = phone
	s.stage = models.StagePayment
	return nil
}

// CompletePayment commits the cart into a new order. The mock payment always
// succeeds synchronously: the cart snapshot becomes an order appended to the
// history, the cart empties and the new order becomes current.
func (s *Session) CompletePayment() (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != models.StagePayment {
		return models.Order{}, ErrBadStage
	}

	now := s.now()
	order := models.Order{
		ID:      utils.OrderToken(now),
		Date:    now,
		Items:   append([]models.CartItem(nil), s.cart...),
		Total:   cartTotal(s.cart),
		Address: s.formAddress,
		Phone:   s.formPhone,
	}

	s.user.Orders = append(s.user.Orders, order)
	s.cart = nil
	s.current = len(s.user.Orders) - 1
	s.stage = models.StageConfirmation

	s.logger.Info("order committed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Int("total", order.Total))

	return copyOrder(order), nil
}

// CloseCheckout returns to browsing from any stage and discards the comment
// draft and any attached file. An in-progress form is abandoned; a committed
// order stays committed.
func (s *Session) CloseCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stage = models.StageBrowsing
	s.formAddress = ""
	s.formPhone = ""
	s.clearDraftLocked()
}

// CurrentOrder returns the order selected by the last completed checkout
func (s *Session) CurrentOrder() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current < 0 || s.current >= len(s.user.Orders) {
		return models.Order{}, false
	}
	return copyOrder(s.user.Orders[s.current]), true
}
