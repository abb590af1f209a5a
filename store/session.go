// Package store holds the in-memory storefront state for the active user:
// volume selections, the cart, the checkout flow, committed orders and
// their comment threads, plus the durable registration state.
package store

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"scentshop/kvstore"
	"scentshop/models"
)

// Errors surfaced to the handler layer.
var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrBlankDetails = errors.New("address and phone are required")
	ErrBadStage     = errors.New("not available at this checkout stage")
	ErrEmptyComment = errors.New("comment needs text or an attachment")
	ErrNoSuchOrder  = errors.New("order not found")
	ErrNoSuchEntry  = errors.New("comment not found")
)

// Defaults applied when Options leave them unset.
const (
	DefaultReplyDelay  = 3 * time.Second
	DefaultGracePeriod = 5 * time.Minute
)

// Options configures a Session
type Options struct {
	Repo        kvstore.Repository
	Logger      *zap.Logger
	Effects     Effects
	ReplyDelay  time.Duration // delay before the simulated manager reply
	GracePeriod time.Duration // window after skip/register that suppresses the redirect
	Now         func() time.Time
}

// Session is the single-user storefront state. The original storefront ran
// this state on one UI thread; a mutex guards it here because the router
// serves requests concurrently.
type Session struct {
	mu sync.Mutex

	repo    kvstore.Repository
	logger  *zap.Logger
	effects Effects
	now     func() time.Time

	replyDelay  time.Duration
	gracePeriod time.Duration

	user    models.User
	cart    []models.CartItem
	volumes map[string]string // fragrance name -> selected volume label

	stage       models.CheckoutStage
	formAddress string
	formPhone   string
	current     int // index of the order shown after checkout, -1 when none

	editOrder int // order whose comment is being edited, -1 when none
	editEntry int
	draftText string
	draftFile *models.Attachment

	replyTimers map[int]*time.Timer // order index -> pending manager reply
}

// NewSession builds a session seeded from the durable registration state
func NewSession(opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ReplyDelay <= 0 {
		opts.ReplyDelay = DefaultReplyDelay
	}
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = DefaultGracePeriod
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Session{
		repo:        opts.Repo,
		logger:      opts.Logger,
		effects:     opts.Effects,
		now:         opts.Now,
		replyDelay:  opts.ReplyDelay,
		gracePeriod: opts.GracePeriod,
		volumes:     make(map[string]string),
		stage:       models.StageBrowsing,
		current:     -1,
		editOrder:   -1,
		editEntry:   -1,
		replyTimers: make(map[int]*time.Timer),
	}

	reg, err := kvstore.LoadRegistration(s.repo)
	if err != nil {
		return nil, err
	}
	s.user = models.User{
		Name:       reg.Name,
		Phone:      reg.Phone,
		InviteCode: reg.InviteCode,
		Balance:    "0",
	}

	return s, nil
}

// User returns a copy of the session profile, orders included
func (s *Session) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.user
	u.Orders = copyOrders(s.user.Orders)
	return u
}

// Orders returns a copy of the committed order history
func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.user.Orders)
}

// Order returns a copy of one committed order by position
func (s *Session) Order(index int) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.user.Orders) {
		return models.Order{}, ErrNoSuchOrder
	}
	return copyOrder(s.user.Orders[index]), nil
}

// SelectVolume records the transient volume choice for a fragrance
func (s *Session) SelectVolume(fragrance, volume string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volumes[fragrance] = volume
}

// SelectedVolume returns the recorded volume choice for a fragrance, or ""
func (s *Session) SelectedVolume(fragrance string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volumes[fragrance]
}

// Snapshots are copies, so later cart or thread mutations cannot leak into
// values already handed out.
func copyOrder(o models.Order) models.Order {
	o.Items = append([]models.CartItem(nil), o.Items...)
	o.History = append([]models.ChatMessage(nil), o.History...)
	return o
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[i] = copyOrder(o)
	}
	return out
}
