package cart

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/mockapi"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
	"github.com/dugodofficials-cpu/customer-app-sub000/session"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*Service, *mockapi.Store, *notify.Recorder) {
	t.Helper()

	store := mockapi.NewStore()
	store.SeedProduct(models.Product{ID: "album-1", Name: "Album One", Price: 500, IsDigital: true})
	store.SeedProduct(models.Product{ID: "vinyl-1", Name: "Vinyl One", Price: 3500, IsDigital: false, Stock: 10})
	store.SeedCoupon(mockapi.Coupon{
		Code: "LAUNCH10", Type: models.DiscountPercentage, Value: 10, MinPurchase: 1000,
	})

	srv := httptest.NewServer(mockapi.NewRouter(store, testSecret))
	t.Cleanup(srv.Close)

	token, err := mockapi.IssueToken(testSecret, "user-1", "u1@example.com", time.Hour)
	require.NoError(t, err)
	sess := session.NewStore()
	require.NoError(t, sess.Init(token))

	recorder := &notify.Recorder{}
	return NewService(api.New(srv.URL, 5*time.Second, sess), recorder), store, recorder
}

func TestAddItemIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	item := api.CartItemInput{ProductID: "album-1", Quantity: 2}
	first, err := svc.AddItem(ctx, item)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, 2, first.Items[0].Quantity)
	assert.Equal(t, 1000.0, first.Subtotal)

	// Identical payload again: item count and quantity must not change.
	second, err := svc.AddItem(ctx, item)
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.Equal(t, 2, second.Items[0].Quantity)
	assert.Equal(t, first.Subtotal, second.Subtotal)
}

func TestTotalsAreServerComputed(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, api.CartItemInput{ProductID: "vinyl-1", Quantity: 1})
	require.NoError(t, err)

	// Physical item: flat shipping appears without the client computing it.
	assert.Equal(t, 3500.0, cart.Subtotal)
	assert.Equal(t, 10.0, cart.ShippingCost)
	assert.Equal(t, 3510.0, cart.Total)
	assert.Equal(t, 3500.0, cart.Items[0].LineTotal)
}

func TestCouponBelowMinimumIsRejected(t *testing.T) {
	svc, _, recorder := newTestService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)
	before, err := svc.AddItem(ctx, api.CartItemInput{ProductID: "album-1", Quantity: 1}) // subtotal 500 < min 1000
	require.NoError(t, err)
	require.Empty(t, before.Discounts)

	_, err = svc.ApplyCoupon(ctx, "LAUNCH10")
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, recorder.Errors)

	// Discounts array unchanged on the server.
	after, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, after.Discounts)
	assert.Zero(t, after.Discount)
}

func TestCouponAppliesAboveMinimum(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, api.CartItemInput{ProductID: "album-1", Quantity: 3}) // subtotal 1500
	require.NoError(t, err)

	cart, err := svc.ApplyCoupon(ctx, "LAUNCH10")
	require.NoError(t, err)
	require.Len(t, cart.Discounts, 1)
	assert.Equal(t, 150.0, cart.Discount)
	assert.Equal(t, 1350.0, cart.Total)
}

func TestOutOfOrderResponseIsDiscarded(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)
	latest, err := svc.AddItem(ctx, api.CartItemInput{ProductID: "album-1", Quantity: 5})
	require.NoError(t, err)

	// A mutation stamped before the applied one resolves late: its stale
	// cart must not overwrite the newer snapshot.
	stale := *latest
	stale.Items = nil
	svc.apply(1, &stale)

	current := svc.Current()
	require.NotNil(t, current)
	assert.Len(t, current.Items, 1)
	assert.Equal(t, 5, current.Items[0].Quantity)
}

func TestMutationWithoutCartFails(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ApplyCoupon(context.Background(), "LAUNCH10")
	assert.ErrorIs(t, err, ErrNoCart)
}
