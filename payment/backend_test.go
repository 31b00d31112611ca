package payment

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/mockapi"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/session"
)

func newBackend(t *testing.T) *mockapi.Store {
	t.Helper()
	return mockapi.NewStore()
}

func newBackendClient(t *testing.T, store *mockapi.Store) *api.Client {
	t.Helper()

	srv := httptest.NewServer(mockapi.NewRouter(store, testSecret))
	t.Cleanup(srv.Close)

	token, err := mockapi.IssueToken(testSecret, "user-1", "u1@example.com", time.Hour)
	require.NoError(t, err)
	sess := session.NewStore()
	require.NoError(t, sess.Init(token))

	return api.New(srv.URL, 5*time.Second, sess)
}

func seedOrder(t *testing.T, store *mockapi.Store, id string) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:            id,
		OrderNumber:   "BB-99999",
		UserID:        "user-1",
		Status:        models.OrderStatusPending,
		PaymentStatus: "pending",
		Currency:      "USD",
		Total:         50000,
		CreatedAt:     time.Now(),
	}
	store.SeedOrder(order)
	return order
}
