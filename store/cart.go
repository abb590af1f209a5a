package store

import (
	"scentshop/models"
)

// AddToCart appends an item to the cart. Adding always succeeds; duplicate
// fragrance/volume pairs are kept as separate lines.
func (s *Session) AddToCart(item models.CartItem) {
	s.mu.Lock()
	s.cart = append(s.cart, item)
	s.mu.Unlock()

	s.fireEffects(item)
}

// RemoveFromCart removes the item at index. An out-of-range index is a
// silent no-op.
func (s *Session) RemoveFromCart(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.cart) {
		return
	}
	s.cart = append(s.cart[:index], s.cart[index+1:]...)
}

// CartTotal returns the sum of prices over all cart entries
func (s *Session) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.cart)
}

// Cart returns a summary of the current cart contents
func (s *Session) Cart() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.CartSummary{
		ItemCount: len(s.cart),
		Total:     cartTotal(s.cart),
		Items:     append([]models.CartItem(nil), s.cart...),
	}
}

func cartTotal(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}
	return total
}
