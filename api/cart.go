package api

import (
	"context"
	"net/http"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

// CartItemInput is the add-to-cart payload. Quantity is the desired line
// quantity, not a delta — resubmitting an identical payload is idempotent.
type CartItemInput struct {
	ProductID       string            `json:"product"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

// AddCartItem adds or updates a line on the active cart and returns the
// full updated cart with server-computed totals.
func (c *Client) AddCartItem(ctx context.Context, item CartItemInput) (*models.Cart, error) {
	body := map[string]any{"item": item}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/add", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveCartItem removes one product line (matched on selected options when
// given) and returns the updated cart.
func (c *Client) RemoveCartItem(ctx context.Context, cartID, productID string, selectedOptions map[string]string) (*models.Cart, error) {
	var body map[string]any
	if selectedOptions != nil {
		body = map[string]any{"selectedOptions": selectedOptions}
	}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPut, "/cart/"+cartID+"/remove/"+productID, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ActiveCart fetches the current session/user cart.
func (c *Client) ActiveCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart/active", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartStatus transitions the cart's status enum.
func (c *Client) UpdateCartStatus(ctx context.Context, cartID string, status models.CartStatus) (*models.Cart, error) {
	body := map[string]any{"status": status}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPut, "/cart/"+cartID, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ApplyDiscount applies a coupon code. The backend rejects invalid, expired,
// or below-minimum codes without touching the cart's discounts.
func (c *Client) ApplyDiscount(ctx context.Context, cartID, code string) (*models.Cart, error) {
	body := map[string]any{"code": code}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/"+cartID+"/discounts", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
