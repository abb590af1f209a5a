package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scentshop/kvstore"
	"scentshop/models"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	s, err := NewSession(Options{
		Repo:       kvstore.NewMemory(),
		ReplyDelay: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	return s
}

func amberWood() models.CartItem {
	return models.CartItem{Fragrance: "Amber Wood", Brand: "Ajmal", Volume: "50", Price: 2800}
}

func TestCartTotalTracksAddAndRemove(t *testing.T) {
	s := newTestSession(t)

	s.AddToCart(models.CartItem{Fragrance: "Gypsy Water", Brand: "Byredo", Volume: "50", Price: 14500})
	s.AddToCart(models.CartItem{Fragrance: "Bal d'Afrique", Brand: "Byredo", Volume: "100", Price: 19800})
	s.AddToCart(amberWood())

	assert.Equal(t, 14500+19800+2800, s.CartTotal())

	s.RemoveFromCart(1)
	assert.Equal(t, 14500+2800, s.CartTotal())

	s.RemoveFromCart(0)
	s.RemoveFromCart(0)
	assert.Equal(t, 0, s.CartTotal())
	assert.Empty(t, s.Cart().Items)
}

func TestAmberWoodScenario(t *testing.T) {
	s := newTestSession(t)

	s.AddToCart(amberWood())

	cart := s.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, amberWood(), cart.Items[0])
	assert.Equal(t, 2800, s.CartTotal())

	s.RemoveFromCart(0)
	assert.Empty(t, s.Cart().Items)
	assert.Equal(t, 0, s.CartTotal())
}

func TestRemoveFromCartIgnoresBadIndex(t *testing.T) {
	s := newTestSession(t)
	s.AddToCart(amberWood())

	s.RemoveFromCart(-1)
	s.RemoveFromCart(5)

	assert.Len(t, s.Cart().Items, 1)
}

func TestDuplicateLinesStaySeparate(t *testing.T) {
	s := newTestSession(t)

	s.AddToCart(amberWood())
	s.AddToCart(amberWood())

	cart := s.Cart()
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 5600, cart.Total)
}

type recordingEffects struct {
	fired chan models.CartItem
	err   error
}

func (r *recordingEffects) CartPulse(item models.CartItem) error {
	r.fired <- item
	return r.err
}

func TestAddToCartFiresEffects(t *testing.T) {
	effects := &recordingEffects{fired: make(chan models.CartItem, 1)}
	s, err := NewSession(Options{
		Repo:    kvstore.NewMemory(),
		Effects: effects,
	})
	require.NoError(t, err)

	s.AddToCart(amberWood())

	select {
	case item := <-effects.fired:
		assert.Equal(t, "Amber Wood", item.Fragrance)
	case <-time.After(time.Second):
		t.Fatal("effects hook never fired")
	}
}

func TestEffectsFailureDoesNotTouchCart(t *testing.T) {
	effects := &recordingEffects{
		fired: make(chan models.CartItem, 1),
		err:   assert.AnError,
	}
	s, err := NewSession(Options{
		Repo:    kvstore.NewMemory(),
		Effects: effects,
	})
	require.NoError(t, err)

	s.AddToCart(amberWood())

	<-effects.fired
	assert.Len(t, s.Cart().Items, 1)
}
