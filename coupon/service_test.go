package coupon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"goflare.io/ignite"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (m *memCache) Get(_ context.Context, key string, value any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, value)
}

func (m *memCache) Set(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func newTestService(t *testing.T, handler http.Handler) (Service, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := apiclient.NewClient(server.URL, apiclient.NewMemoryTokenStore(), zap.NewNop())
	cat, err := catalog.New(&memCache{entries: make(map[string][]byte)}, zap.NewNop(), ignite.NewManager())
	require.NoError(t, err)

	return NewService(client, cat, zap.NewNop()), server
}

func TestCreateNormalizesCode(t *testing.T) {
	var received models.Coupon
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/coupons", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.ID = "c1"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(received)
	}))

	created, err := svc.Create(context.Background(), &models.Coupon{
		Code:           "  save10 ",
		DiscountType:   enum.DiscountTypePercent,
		DiscountAmount: 10,
		IsActive:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", created.Code)
	assert.Equal(t, "SAVE10", received.Code, "code must be normalized before submission")
}

func TestCreateRejectsLocally(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("invalid coupons must not reach the server")
	}))

	_, err := svc.Create(context.Background(), &models.Coupon{Code: ""})
	assert.ErrorIs(t, err, ErrCodeRequired)

	_, err = svc.Create(context.Background(), &models.Coupon{Code: "X", DiscountAmount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(context.Background(), &models.Coupon{
		Code:           "X",
		DiscountType:   enum.DiscountTypePercent,
		DiscountAmount: 150,
	})
	assert.ErrorIs(t, err, ErrPercentTooHigh)
}

func TestListCachesCoupons(t *testing.T) {
	var calls int
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*models.Coupon{{ID: "c1", Code: "SAVE10"}})
	}))

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Equal(t, first[0].Code, second[0].Code)
	assert.Equal(t, 1, calls, "second list must come from the cache")
}

func TestValidatePassesServerVerdict(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/coupons/validate", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "SAVE10", payload["code"])
		assert.Equal(t, "plan-1", payload["plan_id"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"coupon": &models.Coupon{ID: "c1", Code: "SAVE10", DiscountType: enum.DiscountTypePercent, DiscountAmount: 10},
		})
	}))

	coupon, err := svc.Validate(context.Background(), "save10", "plan-1")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", coupon.Code)
}

func TestValidateSurfacesServerRejection(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "This coupon has expired"})
	}))

	_, err := svc.Validate(context.Background(), "SAVE10", "plan-1")
	require.Error(t, err)
	assert.Equal(t, "This coupon has expired", apiclient.ServerMessage(err))
}
