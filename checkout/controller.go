// Package checkout drives the three-step purchase wizard. The only state
// that survives a reload or a payment-provider redirect is the orderId
// written into the URL, so every transition keeps that in sync.
package checkout

import (
	"context"
	"errors"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/cart"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
)

type Step int

const (
	StepCartReview Step = iota
	StepPaymentMethod
	StepConfirmation
)

// ErrNoOrder guards the confirmation step against deep links with no
// backing order.
var ErrNoOrder = errors.New("no order id for confirmation step")

// URLState is the history.replaceState analog: the one piece of wizard
// state persisted outside process memory.
type URLState interface {
	OrderID() string
	SetOrderID(id string)
}

type Controller struct {
	api    *api.Client
	carts  *cart.Service
	url    URLState
	notify notify.Notifier

	step Step
}

// New mounts the wizard. Without an orderId in the URL the wizard resets to
// cart review; with one, the step stays wherever the mounting caller put it
// (via SetStep) so a reload can land directly on confirmation.
func New(client *api.Client, carts *cart.Service, url URLState, n notify.Notifier) *Controller {
	c := &Controller{api: client, carts: carts, url: url, notify: n}
	if url.OrderID() == "" {
		c.step = StepCartReview
	}
	return c
}

func (c *Controller) Step() Step { return c.step }

// SetStep positions the wizard explicitly, e.g. when a page resumes a
// checkout from a URL that already carries an orderId.
func (c *Controller) SetStep(s Step) {
	if s >= StepCartReview && s <= StepConfirmation {
		c.step = s
	}
}

// HandleNext leaves cart review. Carts with a physical item go to the
// payment-method step for shipping capture; pure-digital carts create the
// order synchronously and jump straight to confirmation.
func (c *Controller) HandleNext(ctx context.Context) error {
	active := c.carts.Current()
	if active == nil || active.IsEmpty() {
		c.notify.Error("Your cart is empty")
		return cart.ErrNoCart
	}

	if active.HasPhysicalItems() {
		c.step = StepPaymentMethod
		return nil
	}

	order, err := c.createOrder(ctx, active, nil)
	if err != nil {
		return err
	}
	c.url.SetOrderID(order.ID)
	c.step = StepConfirmation
	return nil
}

// CreateOrder places the PENDING order from the payment-method step, once
// shipping details are captured. The wizard stays on the current step; the
// orderId lands in the URL so the payment path can pick it up.
func (c *Controller) CreateOrder(ctx context.Context, shipping *models.ShippingAddress) (*models.Order, error) {
	active := c.carts.Current()
	if active == nil || active.IsEmpty() {
		c.notify.Error("Your cart is empty")
		return nil, cart.ErrNoCart
	}
	order, err := c.createOrder(ctx, active, shipping)
	if err != nil {
		return nil, err
	}
	c.url.SetOrderID(order.ID)
	return order, nil
}

// createOrder builds the draft from the cart and submits it. Failure shows
// a notification and leaves the wizard where it is — the user resubmits
// manually, there is no retry loop.
func (c *Controller) createOrder(ctx context.Context, active *models.Cart, shipping *models.ShippingAddress) (*models.Order, error) {
	draft := api.OrderDraft{
		UserID:   active.UserID,
		CartID:   active.ID,
		Currency: "USD",
		Shipping: shipping,
		Status:   models.OrderStatusPending,
	}
	for _, item := range active.Items {
		draft.Items = append(draft.Items, models.OrderItem{
			ProductID:       item.Product.ID,
			Name:            item.Product.Name,
			Quantity:        item.Quantity,
			Price:           item.Product.Price,
			SelectedOptions: item.SelectedOptions,
			IsDigital:       item.Product.IsDigital,
		})
	}

	order, err := c.api.CreateOrder(ctx, draft)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			c.notify.Error(apiErr.Message)
		} else {
			c.notify.Error("Failed to create order. Please try again.")
		}
		return nil, err
	}
	return order, nil
}

// PaymentSucceeded is the success callback from whichever payment path ran.
// The cart is marked CHECKOUT_IN_PROGRESS before the wizard advances.
func (c *Controller) PaymentSucceeded(ctx context.Context) error {
	if _, err := c.carts.SetStatus(ctx, models.CartStatusCheckoutInProgress); err != nil {
		return err
	}
	c.step = StepConfirmation
	return nil
}

// Back returns from the payment step to cart review. No side effects.
func (c *Controller) Back() {
	if c.step == StepPaymentMethod {
		c.step = StepCartReview
	}
}

// EnterConfirmation renders the terminal step. It is idempotently
// re-enterable: the order is re-fetched by the URL's orderId on every
// entry. A missing orderId bounces straight back to cart review.
func (c *Controller) EnterConfirmation(ctx context.Context) (*models.Order, error) {
	orderID := c.url.OrderID()
	if orderID == "" {
		c.step = StepCartReview
		return nil, ErrNoOrder
	}
	order, err := c.api.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	c.step = StepConfirmation
	return order, nil
}
