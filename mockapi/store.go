// Package mockapi is an in-memory implementation of the storefront backend
// used for local development and hermetic tests. It owns the authoritative
// money math the real backend performs: every cart mutation recomputes
// totals server-side so the client only ever reads them back.
package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

type Coupon struct {
	Code        string
	Type        models.DiscountType
	Value       float64
	MinPurchase float64
	ExpiresAt   time.Time
}

type question struct {
	models.BlackBoxQuestion
	accepted string // normalized accepted answer
	secret   string
}

type Store struct {
	mu sync.Mutex

	products  map[string]models.Product
	carts     map[string]*models.Cart // keyed by user id, one active cart each
	orders    map[string]*models.Order
	coupons   map[string]Coupon
	questions []*question

	orderSeq    int
	rateLimited bool

	shippingFlatRate float64
	taxRate          float64
}

func NewStore() *Store {
	return &Store{
		products:         make(map[string]models.Product),
		carts:            make(map[string]*models.Cart),
		orders:           make(map[string]*models.Order),
		coupons:          make(map[string]Coupon),
		shippingFlatRate: 10,
	}
}

// SeedProduct registers a catalog entry.
func (s *Store) SeedProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// SeedOrder installs an existing order, bypassing checkout. Test support.
func (s *Store) SeedOrder(order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

// SeedCoupon registers a discount code.
func (s *Store) SeedCoupon(c Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[strings.ToUpper(c.Code)] = c
}

// SeedQuestion registers one puzzle question with its accepted answer and
// the secret revealed on success.
func (s *Store) SeedQuestion(id, prompt, accepted, secret string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, &question{
		BlackBoxQuestion: models.BlackBoxQuestion{ID: id, Prompt: prompt},
		accepted:         normalizeAnswer(accepted),
		secret:           secret,
	})
}

// SetRateLimited makes every subsequent request answer 429, for exercising
// the client's rate-limit taxonomy.
func (s *Store) SetRateLimited(limited bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rateLimited = limited
}

func (s *Store) isRateLimited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rateLimited
}

// activeCart fetches or creates the user's single active cart. Caller holds
// the lock.
func (s *Store) activeCart(userID string) *models.Cart {
	if cart, ok := s.carts[userID]; ok {
		return cart
	}
	cart := &models.Cart{
		ID:     fmt.Sprintf("cart-%s", userID),
		UserID: userID,
		Status: models.CartStatusActive,
	}
	s.carts[userID] = cart
	return cart
}

func (s *Store) cartByID(cartID string) *models.Cart {
	for _, cart := range s.carts {
		if cart.ID == cartID {
			return cart
		}
	}
	return nil
}

// recompute rebuilds every server-owned money field from the items and
// applied discounts. Caller holds the lock.
func (s *Store) recompute(cart *models.Cart) {
	var subtotal float64
	physical := false
	for i := range cart.Items {
		item := &cart.Items[i]
		item.LineTotal = item.Product.Price * float64(item.Quantity)
		subtotal += item.LineTotal
		if !item.Product.IsDigital {
			physical = true
		}
	}

	shipping := 0.0
	if physical {
		shipping = s.shippingFlatRate
	}

	discount := 0.0
	for _, d := range cart.Discounts {
		switch d.Type {
		case models.DiscountPercentage:
			discount += subtotal * d.Value / 100
		case models.DiscountFixedAmount:
			discount += d.Value
		case models.DiscountFreeShip:
			shipping = 0
		case models.DiscountBuyXGetY:
			discount += cheapestUnitPrice(cart.Items) * d.Value
		}
	}
	if discount > subtotal {
		discount = subtotal
	}

	cart.Subtotal = subtotal
	cart.Tax = subtotal * s.taxRate
	cart.ShippingCost = shipping
	cart.Discount = discount
	cart.Total = subtotal + cart.Tax + shipping - discount
	cart.UpdatedAt = time.Now()
}

func cheapestUnitPrice(items []models.CartItem) float64 {
	cheapest := 0.0
	for _, item := range items {
		if cheapest == 0 || item.Product.Price < cheapest {
			cheapest = item.Product.Price
		}
	}
	return cheapest
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func sameOptions(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
