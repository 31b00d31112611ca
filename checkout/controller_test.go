package checkout

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/cart"
	"github.com/dugodofficials-cpu/customer-app-sub000/mockapi"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
	"github.com/dugodofficials-cpu/customer-app-sub000/session"
)

const testSecret = "test-secret"

type harness struct {
	wizard   *Controller
	carts    *cart.Service
	client   *api.Client
	url      *MemoryURLState
	recorder *notify.Recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := mockapi.NewStore()
	store.SeedProduct(models.Product{ID: "album-1", Name: "Album One", Price: 500, IsDigital: true})
	store.SeedProduct(models.Product{ID: "vinyl-1", Name: "Vinyl One", Price: 3500, IsDigital: false, Stock: 10})

	srv := httptest.NewServer(mockapi.NewRouter(store, testSecret))
	t.Cleanup(srv.Close)

	token, err := mockapi.IssueToken(testSecret, "user-1", "u1@example.com", time.Hour)
	require.NoError(t, err)
	sess := session.NewStore()
	require.NoError(t, sess.Init(token))

	client := api.New(srv.URL, 5*time.Second, sess)
	recorder := &notify.Recorder{}
	carts := cart.NewService(client, recorder)
	url := &MemoryURLState{}

	return &harness{
		wizard:   New(client, carts, url, recorder),
		carts:    carts,
		client:   client,
		url:      url,
		recorder: recorder,
	}
}

func TestMountResetsToCartReviewWithoutOrderID(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, StepCartReview, h.wizard.Step())
}

func TestSetStepRejectsOutOfRange(t *testing.T) {
	h := newHarness(t)

	h.wizard.SetStep(StepConfirmation)
	assert.Equal(t, StepConfirmation, h.wizard.Step())

	h.wizard.SetStep(Step(7))
	assert.Equal(t, StepConfirmation, h.wizard.Step())
	h.wizard.SetStep(Step(-1))
	assert.Equal(t, StepConfirmation, h.wizard.Step())
}

func TestDigitalOnlyCartSkipsPaymentStep(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.carts.Refresh(ctx)
	require.NoError(t, err)
	_, err = h.carts.AddItem(ctx, api.CartItemInput{ProductID: "album-1", Quantity: 1})
	require.NoError(t, err)

	// Pure-digital cart: order is created synchronously, no step-1 visit.
	require.NoError(t, h.wizard.HandleNext(ctx))
	assert.Equal(t, StepConfirmation, h.wizard.Step())
	require.NotEmpty(t, h.url.OrderID())

	order, err := h.wizard.EnterConfirmation(ctx)
	require.NoError(t, err)
	assert.Equal(t, h.url.OrderID(), order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 500.0, order.Total)
}

func TestPhysicalCartGoesToPaymentStep(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.carts.Refresh(ctx)
	require.NoError(t, err)
	_, err = h.carts.AddItem(ctx, api.CartItemInput{ProductID: "vinyl-1", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, h.wizard.HandleNext(ctx))
	assert.Equal(t, StepPaymentMethod, h.wizard.Step())
	assert.Empty(t, h.url.OrderID(), "no order is created before the payment step")

	// Back is always permitted with no side effects.
	h.wizard.Back()
	assert.Equal(t, StepCartReview, h.wizard.Step())
}

func TestPaymentSucceededMarksCartAndAdvances(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.carts.Refresh(ctx)
	require.NoError(t, err)
	_, err = h.carts.AddItem(ctx, api.CartItemInput{ProductID: "vinyl-1", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, h.wizard.HandleNext(ctx))

	order, err := h.wizard.CreateOrder(ctx, &models.ShippingAddress{
		Name: "A", Line1: "1 Road", City: "Lagos", Region: "LA", Country: "NG", Postcode: "100001",
	})
	require.NoError(t, err)
	assert.Equal(t, order.ID, h.url.OrderID())
	assert.Equal(t, StepPaymentMethod, h.wizard.Step())

	require.NoError(t, h.wizard.PaymentSucceeded(ctx))
	assert.Equal(t, StepConfirmation, h.wizard.Step())
	assert.Equal(t, models.CartStatusCheckoutInProgress, h.carts.Current().Status)
}

func TestConfirmationWithoutOrderIDRedirects(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.wizard.SetStep(StepConfirmation)
	_, err := h.wizard.EnterConfirmation(ctx)
	assert.ErrorIs(t, err, ErrNoOrder)
	assert.Equal(t, StepCartReview, h.wizard.Step())
}

func TestConfirmationIsReEnterable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.carts.Refresh(ctx)
	require.NoError(t, err)
	_, err = h.carts.AddItem(ctx, api.CartItemInput{ProductID: "album-1", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, h.wizard.HandleNext(ctx))

	first, err := h.wizard.EnterConfirmation(ctx)
	require.NoError(t, err)
	second, err := h.wizard.EnterConfirmation(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, StepConfirmation, h.wizard.Step())
}

func TestEmptyCartStaysOnCartReview(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.carts.Refresh(ctx)
	require.NoError(t, err)

	err = h.wizard.HandleNext(ctx)
	require.Error(t, err)
	assert.Equal(t, StepCartReview, h.wizard.Step())
	assert.NotEmpty(t, h.recorder.Errors)
}

func TestOrderCreationFailureStaysOnStep(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.carts.Refresh(ctx)
	require.NoError(t, err)
	_, err = h.carts.AddItem(ctx, api.CartItemInput{ProductID: "vinyl-1", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, h.wizard.HandleNext(ctx))

	// Missing shipping address for a physical order: backend rejects, the
	// wizard stays put and a notification is surfaced.
	_, err = h.wizard.CreateOrder(ctx, nil)
	require.Error(t, err)
	assert.Equal(t, StepPaymentMethod, h.wizard.Step())
	assert.Empty(t, h.url.OrderID())
	assert.NotEmpty(t, h.recorder.Errors)
}
