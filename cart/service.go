// Package cart maintains the client's view of the active cart. The server
// response is authoritative after every mutation: local state is always
// overwritten, never derived. A sequence number discards responses that
// complete out of order, so two rapid mutations cannot leave a stale cart
// behind.
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
)

var ErrNoCart = errors.New("no active cart loaded")

type Service struct {
	api    *api.Client
	notify notify.Notifier

	mu      sync.Mutex
	current *models.Cart
	seq     uint64 // next mutation's sequence number
	applied uint64 // highest sequence applied to current
}

func NewService(client *api.Client, n notify.Notifier) *Service {
	return &Service{api: client, notify: n}
}

// begin stamps a mutation before its request goes out.
func (s *Service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// apply installs a server response unless a later mutation already landed.
func (s *Service) apply(seq uint64, cart *models.Cart) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq >= s.applied {
		s.applied = seq
		s.current = cart
	}
	return s.current
}

// fail surfaces an API failure as a notification. The local snapshot is
// left untouched and nothing is retried.
func (s *Service) fail(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		s.notify.Error(apiErr.Message)
	} else {
		s.notify.Error("Something went wrong. Please try again.")
	}
	return err
}

// Refresh fetches the active cart from the backend.
func (s *Service) Refresh(ctx context.Context) (*models.Cart, error) {
	seq := s.begin()
	cart, err := s.api.ActiveCart(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return s.apply(seq, cart), nil
}

// AddItem adds or updates one line and installs the returned cart.
func (s *Service) AddItem(ctx context.Context, item api.CartItemInput) (*models.Cart, error) {
	seq := s.begin()
	cart, err := s.api.AddCartItem(ctx, item)
	if err != nil {
		return nil, s.fail(err)
	}
	return s.apply(seq, cart), nil
}

// RemoveItem removes one product line.
func (s *Service) RemoveItem(ctx context.Context, productID string, selectedOptions map[string]string) (*models.Cart, error) {
	current, err := s.require()
	if err != nil {
		return nil, err
	}
	seq := s.begin()
	cart, err := s.api.RemoveCartItem(ctx, current.ID, productID, selectedOptions)
	if err != nil {
		return nil, s.fail(err)
	}
	return s.apply(seq, cart), nil
}

// ApplyCoupon applies a discount code. Rejections (invalid, expired, below
// minimum purchase) leave the cart untouched and surface a notification.
func (s *Service) ApplyCoupon(ctx context.Context, code string) (*models.Cart, error) {
	current, err := s.require()
	if err != nil {
		return nil, err
	}
	seq := s.begin()
	cart, err := s.api.ApplyDiscount(ctx, current.ID, code)
	if err != nil {
		return nil, s.fail(err)
	}
	return s.apply(seq, cart), nil
}

// SetStatus transitions the cart's status on the backend.
func (s *Service) SetStatus(ctx context.Context, status models.CartStatus) (*models.Cart, error) {
	current, err := s.require()
	if err != nil {
		return nil, err
	}
	seq := s.begin()
	cart, err := s.api.UpdateCartStatus(ctx, current.ID, status)
	if err != nil {
		return nil, s.fail(err)
	}
	return s.apply(seq, cart), nil
}

// Current returns the latest applied snapshot, or nil before the first
// refresh.
func (s *Service) Current() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) require() (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoCart
	}
	return s.current, nil
}
