package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/cart"
	"github.com/dugodofficials-cpu/customer-app-sub000/checkout"
	"github.com/dugodofficials-cpu/customer-app-sub000/config"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
	"github.com/dugodofficials-cpu/customer-app-sub000/payment"
	"github.com/dugodofficials-cpu/customer-app-sub000/rates"
)

var (
	checkoutProductID string
	checkoutQuantity  int
	checkoutCoupon    string
	checkoutMethod    string
	checkoutNetwork   string
	checkoutTxID      string
	checkoutEmail     string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Walk a checkout against the configured backend",
	Long: `Add a product to the active cart, optionally apply a coupon, and walk
the checkout wizard through to confirmation using the selected payment
method (card, bank_transfer, or crypto).`,
	RunE: runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutProductID, "product", "", "product id to add to the cart")
	checkoutCmd.Flags().IntVar(&checkoutQuantity, "quantity", 1, "quantity for the added product")
	checkoutCmd.Flags().StringVar(&checkoutCoupon, "coupon", "", "discount code to apply")
	checkoutCmd.Flags().StringVar(&checkoutMethod, "method", "card", "payment method: card, bank_transfer, crypto")
	checkoutCmd.Flags().StringVar(&checkoutNetwork, "network", "Bitcoin", "crypto network (crypto method only)")
	checkoutCmd.Flags().StringVar(&checkoutTxID, "txid", "", "transaction hash to submit (crypto method only)")
	checkoutCmd.Flags().StringVar(&checkoutEmail, "email", "dev@example.com", "buyer email for the payment popup")
	_ = checkoutCmd.MarkFlagRequired("product")
	rootCmd.AddCommand(checkoutCmd)
}

// consolePopup stands in for the hosted payment popup in a terminal: it
// prints the charge and reports success immediately. Dev convenience only.
type consolePopup struct{}

func (consolePopup) Open(_ context.Context, params payment.PopupParams, cb payment.Callbacks) error {
	log.Printf("💳 Hosted popup: charge %d minor units %s, reference %s",
		params.Amount, params.Currency, params.Reference)
	if cb.OnSuccess != nil {
		cb.OnSuccess(params.Reference)
	}
	return nil
}

func runCheckout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}

	notifier := notify.Logger{}
	carts := cart.NewService(client, notifier)
	url := &checkout.MemoryURLState{}
	wizard := checkout.New(client, carts, url, notifier)

	if _, err := carts.Refresh(ctx); err != nil {
		return err
	}
	if _, err := carts.AddItem(ctx, api.CartItemInput{
		ProductID: checkoutProductID,
		Quantity:  checkoutQuantity,
	}); err != nil {
		return err
	}
	if checkoutCoupon != "" {
		if _, err := carts.ApplyCoupon(ctx, checkoutCoupon); err != nil {
			return err
		}
	}

	active := carts.Current()
	log.Printf("🛒 Cart %s: %d item(s), total %.2f", active.ID, len(active.Items), active.Total)

	if err := wizard.HandleNext(ctx); err != nil {
		return err
	}

	if wizard.Step() == checkout.StepPaymentMethod {
		// Physical items: capture shipping, create the order, then pay.
		order, err := wizard.CreateOrder(ctx, &models.ShippingAddress{
			Name: "Dev User", Line1: "1 Example Street", City: "Lagos",
			Region: "LA", Country: "NG", Postcode: "100001",
		})
		if err != nil {
			return err
		}
		if err := completePayment(ctx, cfg, client, wizard, notifier, order); err != nil {
			return err
		}
	}

	order, err := wizard.EnterConfirmation(ctx)
	if err != nil {
		return err
	}
	log.Printf("✅ Order %s (%s) confirmed at step %d, status=%s, total %.2f",
		order.OrderNumber, order.ID, wizard.Step(), order.Status, order.Total)
	log.Printf("🔗 Resume URL: /checkout?orderId=%s", url.OrderID())
	return nil
}

func completePayment(ctx context.Context, cfg *config.Config, client *api.Client,
	wizard *checkout.Controller, notifier notify.Notifier, order *models.Order) error {

	dispatcher := payment.NewDispatcher(consolePopup{}, cfg.PaymentPublicKey, wizard, notifier)
	err := dispatcher.Complete(ctx, payment.Method(checkoutMethod), order, checkoutEmail)
	if err == nil {
		return nil
	}
	if err != payment.ErrCryptoFormActive {
		return err
	}

	// Crypto path: the sub-form owns submission.
	form := payment.NewCryptoForm(client, rates.New(cfg.RateAPIBaseURL, cfg.HTTPTimeout), notifier, order)
	for _, n := range payment.Networks {
		if n.Name == checkoutNetwork || n.Coin == checkoutNetwork {
			form.SelectNetwork(ctx, n)
			break
		}
	}
	log.Printf("🪙 Send %s %s to %s", form.Amount(), form.Network().Coin, form.Network().DepositAddress)
	if checkoutTxID == "" {
		return fmt.Errorf("crypto method requires --txid")
	}
	if err := form.SubmitHash(ctx, checkoutTxID); err != nil {
		return err
	}
	return wizard.PaymentSucceeded(ctx)
}
