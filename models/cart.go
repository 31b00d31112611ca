package models

import (
	"errors"
	"strings"
	"time"
)

type CartStatus string

const (
	// Cart lifecycle (one active cart per session/user)
	CartStatusActive             CartStatus = "ACTIVE"               // Open for mutation
	CartStatusCheckoutInProgress CartStatus = "CHECKOUT_IN_PROGRESS" // Payment started
	CartStatusConvertedToOrder   CartStatus = "CONVERTED_TO_ORDER"   // Order placed
	CartStatusAbandoned          CartStatus = "ABANDONED"
	CartStatusExpired            CartStatus = "EXPIRED"
)

type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
	DiscountBuyXGetY    DiscountType = "buy_x_get_y"
	DiscountFreeShip    DiscountType = "free_shipping"
)

// Cart is the server-owned cart view. All monetary fields are computed by
// the backend and read back after every mutation — the client never derives
// a total it then asks the server to trust.
type Cart struct {
	ID        string            `json:"_id" validate:"required"`
	UserID    string            `json:"user,omitempty"`
	Status    CartStatus        `json:"status" validate:"required"`
	Items     []CartItem        `json:"items"`
	Discounts []AppliedDiscount `json:"discounts"`

	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shippingCost"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`

	UpdatedAt time.Time `json:"updatedAt"`
}

type CartItem struct {
	Product         Product           `json:"product" validate:"required"`
	Quantity        int               `json:"quantity" validate:"min=1"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
	LineTotal       float64           `json:"lineTotal"`
}

type AppliedDiscount struct {
	Code  string       `json:"code"`
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// HasPhysicalItems reports whether any line needs shipping detail capture.
func (c *Cart) HasPhysicalItems() bool {
	for _, item := range c.Items {
		if !item.Product.IsDigital {
			return true
		}
	}
	return false
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// MapCartStatus maps a raw string onto a CartStatus.
func MapCartStatus(status string) (CartStatus, error) {
	switch strings.ToUpper(status) {
	case string(CartStatusActive):
		return CartStatusActive, nil
	case string(CartStatusCheckoutInProgress):
		return CartStatusCheckoutInProgress, nil
	case string(CartStatusConvertedToOrder):
		return CartStatusConvertedToOrder, nil
	case string(CartStatusAbandoned):
		return CartStatusAbandoned, nil
	case string(CartStatusExpired):
		return CartStatusExpired, nil
	default:
		return "", errors.New("invalid cart status")
	}
}
