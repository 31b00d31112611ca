package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
	"github.com/dugodofficials-cpu/customer-app-sub000/rates"
)

// AmountPending is rendered while no exchange rate has resolved. Submission
// stays enabled in that state — longstanding behavior, kept as-is.
const AmountPending = "..."

// Network is one selectable coin/chain pair. Deposit addresses are static
// per network: not fetched, not rotated.
type Network struct {
	Name           string // display name
	Chain          string
	Coin           string
	RateID         string // rate-provider identifier
	DepositAddress string
}

var Networks = []Network{
	{Name: "Bitcoin", Chain: "bitcoin", Coin: "BTC", RateID: "bitcoin",
		DepositAddress: "bc1q8v5en2dwhlqyjcrc9xt54kevxmdsxl2hcdq5y3"},
	{Name: "Ethereum", Chain: "ethereum", Coin: "ETH", RateID: "ethereum",
		DepositAddress: "0x94fE03f1E9A2f42539b1Cf60a8302c93bD52E8aD"},
	{Name: "USDT (TRC20)", Chain: "tron", Coin: "USDT", RateID: "tether",
		DepositAddress: "TXk4fEjL1rqFhZJ5wMbQoUvCzD9y6G2NpS"},
	{Name: "Solana", Chain: "solana", Coin: "SOL", RateID: "solana",
		DepositAddress: "7vGxQp5sKzYmWdRc3TnBhJ4aUe9fL2MN8kEyXoAHtD6i"},
}

// SettlementCurrency picks the fiat side of the rate lookup: NGN orders
// settle in NGN, everything else defaults to USD.
func SettlementCurrency(orderCurrency string) string {
	if strings.EqualFold(orderCurrency, "NGN") {
		return "ngn"
	}
	return "usd"
}

// CryptoForm is the crypto payment sub-form: pick a network, show the owed
// amount derived from a live rate, submit a transaction id for asynchronous
// on-chain verification.
type CryptoForm struct {
	api    *api.Client
	rates  *rates.Client
	notify notify.Notifier
	order  *models.Order

	network Network
	rate    decimal.Decimal
	rateOK  bool
}

func NewCryptoForm(client *api.Client, rateClient *rates.Client, n notify.Notifier, order *models.Order) *CryptoForm {
	return &CryptoForm{api: client, rates: rateClient, notify: n, order: order}
}

// SelectNetwork switches the active network and refreshes the spot rate. A
// failed fetch surfaces a notification and leaves the amount unresolved.
func (f *CryptoForm) SelectNetwork(ctx context.Context, n Network) {
	f.network = n
	f.rateOK = false

	price, err := f.rates.Price(ctx, n.RateID, SettlementCurrency(f.order.Currency))
	if err != nil {
		f.notify.Error("Could not fetch exchange rate. Please try again.")
		return
	}
	f.rate = decimal.NewFromFloat(price)
	f.rateOK = true
}

func (f *CryptoForm) Network() Network { return f.network }

// Amount renders the owed amount in the selected coin: 8 decimal places for
// BTC, 6 for everything else (fixed, not adaptive). Unresolved rates render
// the pending placeholder.
func (f *CryptoForm) Amount() string {
	if !f.rateOK {
		return AmountPending
	}
	amount := decimal.NewFromFloat(f.order.Total).Div(f.rate)
	if f.network.Coin == "BTC" {
		return amount.StringFixed(8)
	}
	return amount.StringFixed(6)
}

// SubmitHash posts the transaction id for verification. The only client-side
// check is non-emptiness — format and on-chain confirmation belong to the
// backend.
func (f *CryptoForm) SubmitHash(ctx context.Context, txid string) error {
	txid = strings.TrimSpace(txid)
	if txid == "" {
		f.notify.Error("Please enter your transaction hash")
		return errors.New("transaction hash is required")
	}

	err := f.api.SubmitCryptoHash(ctx, api.CryptoHashRequest{
		OrderID: f.order.ID,
		TxID:    txid,
		Metadata: api.CryptoHashMetadata{
			Network: f.network.Name,
			Chain:   f.network.Chain,
			Coin:    f.network.Coin,
		},
	})
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			f.notify.Error(apiErr.Message)
		} else {
			f.notify.Error("Failed to submit transaction. Please try again.")
		}
		return err
	}

	f.notify.Info("Transaction submitted for verification")
	return nil
}
