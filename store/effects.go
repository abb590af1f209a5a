package store

import (
	"go.uber.org/zap"

	"scentshop/models"
)

// Effects receives the cosmetic add-to-cart side effects (the storefront's
// pulse animation and chime). Failures are logged and never surfaced;
// implementations must not block.
type Effects interface {
	CartPulse(item models.CartItem) error
}

// fireEffects runs the hook off the request path so a slow or failing
// implementation cannot stall the cart.
func (s *Session) fireEffects(item models.CartItem) {
	if s.effects == nil {
		return
	}
	go func() {
		if err := s.effects.CartPulse(item); err != nil {
			s.logger.Warn("cart pulse effect failed",
				zap.String("fragrance", item.Fragrance),
				zap.Error(err))
		}
	}()
}
