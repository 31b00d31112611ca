// Package payment routes a single "Complete Order" action to one of three
// disjoint paths: a hosted card popup, static bank-transfer instructions,
// or the crypto sub-form. Every side effect is fire-and-forget — the client
// trusts the synchronous success callback and never reconciles provider
// webhooks.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dugodofficials-cpu/customer-app-sub000/checkout"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
)

type Method string

const (
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
	MethodCrypto       Method = "crypto"
)

// ErrCryptoFormActive tells the caller that submission is owned by the
// crypto sub-form while that method is selected.
var ErrCryptoFormActive = errors.New("crypto sub-form owns submission")

// PopupParams is the hosted payment popup contract: public key, buyer
// email, amount in minor currency units, and enough metadata for the
// provider dashboard to tie the charge back to the order.
type PopupParams struct {
	Key       string
	Email     string
	Amount    int64 // minor units
	Currency  string
	Reference string
	Metadata  map[string]any
}

// Callbacks mirror the popup SDK's hooks. OnCancel and OnClose are
// informational only — no state changes, no retry.
type Callbacks struct {
	OnSuccess func(reference string)
	OnCancel  func()
	OnClose   func()
}

// HostedPopup abstracts the external payment popup SDK.
type HostedPopup interface {
	Open(ctx context.Context, params PopupParams, cb Callbacks) error
}

// BankTransferInstructions is the static content behind the bank_transfer
// radio. There is deliberately no submission logic on this path.
const BankTransferInstructions = "Transfer the order total to the account details shown " +
	"and include your order number as the payment reference. Your order is processed " +
	"once the transfer clears."

type Dispatcher struct {
	popup     HostedPopup
	publicKey string
	wizard    *checkout.Controller
	notify    notify.Notifier
}

func NewDispatcher(popup HostedPopup, publicKey string, wizard *checkout.Controller, n notify.Notifier) *Dispatcher {
	return &Dispatcher{popup: popup, publicKey: publicKey, wizard: wizard, notify: n}
}

// Complete runs the selected payment path for the given order.
func (d *Dispatcher) Complete(ctx context.Context, method Method, order *models.Order, email string) error {
	switch method {
	case MethodCard:
		return d.completeCard(ctx, order, email)
	case MethodBankTransfer:
		// Static instructions only; nothing to submit.
		d.notify.Info(BankTransferInstructions)
		return nil
	case MethodCrypto:
		return ErrCryptoFormActive
	default:
		return fmt.Errorf("unknown payment method: %s", method)
	}
}

func (d *Dispatcher) completeCard(ctx context.Context, order *models.Order, email string) error {
	params := PopupParams{
		Key:       d.publicKey,
		Email:     email,
		Amount:    MinorUnits(order.Total),
		Currency:  order.Currency,
		Reference: Reference(order.OrderNumber),
		Metadata: map[string]any{
			"orderNumber": order.OrderNumber,
			"orderId":     order.ID,
			"cartId":      order.CartID,
			"discount":    order.Discount,
		},
	}

	return d.popup.Open(ctx, params, Callbacks{
		OnSuccess: func(string) {
			if err := d.wizard.PaymentSucceeded(ctx); err != nil {
				d.notify.Error("Payment received but checkout could not advance. Please reload.")
			}
		},
		OnCancel: func() {
			d.notify.Info("Payment cancelled")
		},
		OnClose: func() {
			d.notify.Info("Payment window closed")
		},
	})
}

// Reference builds the provider transaction reference. Orders without a
// number fall back to a random id.
func Reference(orderNumber string) string {
	if orderNumber == "" {
		orderNumber = uuid.NewString()[:8]
	}
	return fmt.Sprintf("ORDER-%s-%d", orderNumber, time.Now().Unix())
}

// MinorUnits converts a major-unit amount to minor units (×100, rounded).
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
