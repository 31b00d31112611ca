package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugodofficials-cpu/customer-app-sub000/mockapi"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/session"
)

const testSecret = "test-secret"

func newTestClient(t *testing.T, store *mockapi.Store) *Client {
	t.Helper()

	srv := httptest.NewServer(mockapi.NewRouter(store, testSecret))
	t.Cleanup(srv.Close)

	token, err := mockapi.IssueToken(testSecret, "user-1", "u1@example.com", time.Hour)
	require.NoError(t, err)
	sess := session.NewStore()
	require.NoError(t, sess.Init(token))

	return New(srv.URL, 5*time.Second, sess)
}

func TestRateLimitMapsToSentinel(t *testing.T) {
	store := mockapi.NewStore()
	client := newTestClient(t, store)

	store.SetRateLimited(true)
	_, err := client.ActiveCart(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestServerErrorMessageSurfaces(t *testing.T) {
	store := mockapi.NewStore()
	client := newTestClient(t, store)

	_, err := client.AddCartItem(context.Background(), CartItemInput{ProductID: "ghost", Quantity: 1})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Product does not exist", apiErr.Message)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	store := mockapi.NewStore()
	srv := httptest.NewServer(mockapi.NewRouter(store, testSecret))
	t.Cleanup(srv.Close)

	client := New(srv.URL, 5*time.Second, nil)
	_, err := client.ActiveCart(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestResponseValidationRejectsBrokenPayload(t *testing.T) {
	// A backend answering 200 with a body that fails schema validation must
	// not leak a half-parsed struct to callers.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": []}`)) // no _id, no status
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL, 5*time.Second, nil)
	_, err := client.ActiveCart(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	t.Cleanup(func() { close(blocked); srv.Close() })

	client := New(srv.URL, 5*time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ActiveCart(ctx)
	assert.Error(t, err)
}

func TestUserOrdersPagination(t *testing.T) {
	store := mockapi.NewStore()
	client := newTestClient(t, store)

	base := time.Now()
	for i := 0; i < 5; i++ {
		store.SeedOrder(&models.Order{
			ID:          "order-" + string(rune('a'+i)),
			OrderNumber: "BB-0000" + string(rune('1'+i)),
			UserID:      "user-1",
			Status:      models.OrderStatusPending,
			Currency:    "USD",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}

	page, err := client.ListUserOrders(context.Background(), "user-1", OrderListQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Orders, 2)
	// Newest first.
	assert.Equal(t, "order-e", page.Orders[0].ID)

	last, err := client.ListUserOrders(context.Background(), "user-1", OrderListQuery{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, last.Orders, 1)
}

func TestBlackBoxRoundTrip(t *testing.T) {
	store := mockapi.NewStore()
	store.SeedQuestion("q1", "What hides between tracks?", "the signal", "secret-1")
	store.SeedQuestion("q2", "Count the pulses.", "thirteen", "secret-2")
	client := newTestClient(t, store)
	ctx := context.Background()

	state, err := client.BlackBoxQuestions(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Questions, 2)
	assert.Equal(t, 0, state.Progress.Answered)
	assert.Equal(t, 2, state.Progress.Remaining)

	wrong, err := client.SubmitBlackBoxAnswer(ctx, "q1", "noise")
	require.NoError(t, err)
	assert.False(t, wrong.Correct)
	assert.Empty(t, wrong.Secret)

	right, err := client.SubmitBlackBoxAnswer(ctx, "q1", "  The Signal  ")
	require.NoError(t, err)
	assert.True(t, right.Correct)
	assert.Equal(t, "secret-1", right.Secret)

	state, err = client.BlackBoxQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Progress.Answered)
	assert.Equal(t, 1, state.Progress.Remaining)
}

func TestDownloadGrant(t *testing.T) {
	store := mockapi.NewStore()
	store.SeedProduct(models.Product{ID: "album-1", Name: "Album One", Price: 500, IsDigital: true})
	store.SeedProduct(models.Product{ID: "tee-1", Name: "Tee", Price: 1500, IsDigital: false})
	client := newTestClient(t, store)
	ctx := context.Background()

	grant, err := client.DownloadURL(ctx, "album-1")
	require.NoError(t, err)
	assert.NotEmpty(t, grant.URL)
	assert.Equal(t, 300, grant.ExpiresIn)

	_, err = client.DownloadURL(ctx, "tee-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}
