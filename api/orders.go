package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

// OrderDraft is the client's partial order submitted at checkout. The
// backend assigns the id and order number and recomputes authoritative
// totals.
type OrderDraft struct {
	UserID   string                  `json:"user,omitempty"`
	CartID   string                  `json:"cart"`
	Items    []models.OrderItem      `json:"items"`
	Currency string                  `json:"currency"`
	Shipping *models.ShippingAddress `json:"shippingAddress,omitempty"`
	Status   models.OrderStatus      `json:"status"`
}

// OrderListQuery mirrors the paginated user-orders endpoint parameters.
type OrderListQuery struct {
	Page               int
	Limit              int
	Type               string // e.g. "digital", "physical"
	IncludeBundleItems bool
}

type OrderPage struct {
	Orders []models.Order `json:"orders" validate:"dive"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Total  int            `json:"total"`
}

// CreateOrder creates a PENDING order for the current checkout attempt.
func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (*models.Order, error) {
	if draft.Status == "" {
		draft.Status = models.OrderStatusPending
	}
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", draft, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListUserOrders returns a page of the user's order history.
func (c *Client) ListUserOrders(ctx context.Context, userID string, q OrderListQuery) (*OrderPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.IncludeBundleItems {
		params.Set("includeBundleItems", "true")
	}
	path := "/orders/user/" + userID
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page OrderPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
