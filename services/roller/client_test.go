package roller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"altitude/models"
	"altitude/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testProvider struct {
	authServer *httptest.Server
	apiServer  *httptest.Server
	authCalls  int
	apiCalls   int
}

// newTestProvider stands up fake token and API endpoints.
func newTestProvider(t *testing.T, expiresIn int, apiHandler http.HandlerFunc) *testProvider {
	t.Helper()
	p := &testProvider{}
	p.authServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.authCalls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_in":   expiresIn,
		})
	}))
	p.apiServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.apiCalls++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		apiHandler(w, r)
	}))
	t.Cleanup(p.authServer.Close)
	t.Cleanup(p.apiServer.Close)
	return p
}

func (p *testProvider) client(fallback bool) *Client {
	return NewClient(Config{
		ClientID:        "id",
		ClientSecret:    "secret",
		BaseURL:         p.apiServer.URL + "/",
		AuthURL:         p.authServer.URL,
		Timeout:         5 * time.Second,
		FallbackEnabled: fallback,
	}, zap.NewNop())
}

func slotsHandler(slots ...models.TimeSlot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"availableSlots": slots})
	}
}

func TestTokenCachedWithinValidity(t *testing.T) {
	p := newTestProvider(t, 3600, slotsHandler(models.TimeSlot{Time: "14:00", Available: true}))
	c := p.client(true)
	ctx := context.Background()

	_, err := c.CheckAvailability(ctx, "2025-01-17", "Rookie", 12)
	require.NoError(t, err)
	_, err = c.CheckAvailability(ctx, "2025-01-17", "Rookie", 12)
	require.NoError(t, err)

	assert.Equal(t, 1, p.authCalls, "second call inside the validity window must not re-exchange")
	assert.Equal(t, 2, p.apiCalls)
}

func TestTokenRefreshedWithinSafetyMargin(t *testing.T) {
	// 2 minutes is inside the 5 minute refresh margin, so every
	// operation performs exactly one fresh exchange.
	p := newTestProvider(t, 120, slotsHandler(models.TimeSlot{Time: "14:00", Available: true}))
	c := p.client(true)
	ctx := context.Background()

	_, err := c.CheckAvailability(ctx, "2025-01-17", "Rookie", 12)
	require.NoError(t, err)
	_, err = c.CheckAvailability(ctx, "2025-01-17", "Rookie", 12)
	require.NoError(t, err)

	assert.Equal(t, 2, p.authCalls)
}

func TestTokenRefreshedAfterForcedExpiry(t *testing.T) {
	p := newTestProvider(t, 3600, slotsHandler(models.TimeSlot{Time: "14:00", Available: true}))
	c := p.client(true)
	ctx := context.Background()

	_, err := c.CheckAvailability(ctx, "2025-01-17", "Rookie", 12)
	require.NoError(t, err)

	c.mu.Lock()
	c.tokenExpiry = time.Now().Add(-time.Minute)
	c.mu.Unlock()

	_, err = c.CheckAvailability(ctx, "2025-01-17", "Rookie", 12)
	require.NoError(t, err)
	assert.Equal(t, 2, p.authCalls)
}

func TestAuthFailureIsNeverMaskedByFallback(t *testing.T) {
	failingAuth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer failingAuth.Close()

	c := NewClient(Config{
		ClientID:        "id",
		ClientSecret:    "bad-secret",
		BaseURL:         "http://127.0.0.1:0/",
		AuthURL:         failingAuth.URL,
		Timeout:         2 * time.Second,
		FallbackEnabled: true,
	}, zap.NewNop())

	_, err := c.CheckAvailability(context.Background(), "2025-01-17", "Rookie", 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authenticate")

	_, err = c.CreateBooking(context.Background(), models.BookingRequest{Package: "Rookie", NumJumpers: 12})
	require.Error(t, err)
}

func TestCheckAvailabilityValidatesBeforeNetwork(t *testing.T) {
	p := newTestProvider(t, 3600, slotsHandler())
	c := p.client(true)
	ctx := context.Background()

	// 2025-01-15 is a Wednesday: restricted day for Glo Party.
	_, err := c.CheckAvailability(ctx, "2025-01-15", "Glo Party", 12)
	require.Error(t, err)
	ve, ok := catalog.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, catalog.ReasonRestrictedDay, ve.Reason)

	_, err = c.CheckAvailability(ctx, "2025-01-17", "Rookie", 5)
	require.Error(t, err)
	ve, ok = catalog.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, catalog.ReasonBelowMinimum, ve.Reason)

	_, err = c.CheckAvailability(ctx, "2025-01-17", "Mega Party", 12)
	require.Error(t, err)

	_, err = c.CheckAvailability(ctx, "not-a-date", "Glo Party", 12)
	require.Error(t, err)
	ve, ok = catalog.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, catalog.ReasonMalformedDate, ve.Reason)

	assert.Equal(t, 0, p.authCalls, "invalid requests must not touch the provider")
	assert.Equal(t, 0, p.apiCalls)
}

func TestCheckAvailabilityFridayGloParty(t *testing.T) {
	// 2025-01-17 is a Friday: passes the restriction and reaches the provider.
	p := newTestProvider(t, 3600, slotsHandler(
		models.TimeSlot{Time: "18:00", Available: true},
		models.TimeSlot{Time: "16:00", Available: true},
	))
	c := p.client(true)

	avail, err := c.CheckAvailability(context.Background(), "2025-01-17", "Glo Party", 12)
	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.False(t, avail.Fallback)
	assert.Equal(t, 1, p.apiCalls)
	// Provider ordering is preserved as-is.
	assert.Equal(t, []string{"18:00", "16:00"}, avail.Times)
}

func TestCheckAvailabilityEmptySlots(t *testing.T) {
	p := newTestProvider(t, 3600, slotsHandler())
	c := p.client(true)

	avail, err := c.CheckAvailability(context.Background(), "2025-01-17", "Rookie", 12)
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Empty(t, avail.Slots)
	assert.Equal(t, "No available slots for this date", avail.Message)
}

func TestCheckAvailabilityFallbackOnOutage(t *testing.T) {
	p := newTestProvider(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c := p.client(true)

	avail, err := c.CheckAvailability(context.Background(), "2025-01-17", "Rookie", 12)
	require.NoError(t, err)
	assert.True(t, avail.Fallback)
	assert.True(t, avail.Available)
	assert.Equal(t, []string{"2:00 PM", "4:00 PM", "6:00 PM"}, avail.Times)
	assert.Contains(t, avail.Message, "mock data")
}

func TestCheckAvailabilityOutageWithFallbackDisabled(t *testing.T) {
	p := newTestProvider(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c := p.client(false)

	_, err := c.CheckAvailability(context.Background(), "2025-01-17", "Rookie", 12)
	require.Error(t, err)
}

func TestCreateBookingSuccess(t *testing.T) {
	p := newTestProvider(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "MVP", payload["package"])
		assert.Equal(t, float64(12), payload["num_jumpers"])
		customer := payload["customer"].(map[string]any)
		assert.Equal(t, "jane@example.com", customer["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":          "BK-1001",
			"payment_url": "https://checkout.roller.app/BK-1001",
		})
	})
	c := p.client(true)

	result, err := c.CreateBooking(context.Background(), models.BookingRequest{
		Package:       "MVP",
		NumJumpers:    12,
		Date:          "2025-01-17",
		TimeSlot:      "4:00 PM",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "BK-1001", result.BookingID)
	assert.Equal(t, "https://checkout.roller.app/BK-1001", result.CheckoutURL)
	assert.Equal(t, models.BookingStatusPendingPayment, result.Status)
	assert.False(t, result.Fallback)
}

func TestCreateBookingFallbackOnOutage(t *testing.T) {
	p := newTestProvider(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := p.client(true)

	result, err := c.CreateBooking(context.Background(), models.BookingRequest{Package: "Rookie", NumJumpers: 12})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Fallback)
	assert.True(t, strings.HasPrefix(result.BookingID, fallbackBookingPrefix))
	assert.Equal(t, fallbackCheckoutURL, result.CheckoutURL)
	assert.Equal(t, models.BookingStatusPendingPayment, result.Status)
}

func TestGetProducts(t *testing.T) {
	p := newTestProvider(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "party_package", r.URL.Query().Get("type"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "prod-1", "name": "MVP Party"},
				{"id": "prod-2", "name": "Glo Party"},
			},
		})
	})
	c := p.client(true)

	products := c.GetProducts(context.Background())
	require.Len(t, products, 2)
	assert.Equal(t, "prod-1", products[0]["id"])
}

func TestGetProductsOutageYieldsEmptyList(t *testing.T) {
	p := newTestProvider(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := p.client(true)

	assert.Empty(t, c.GetProducts(context.Background()))
}

func TestGetBookingStatus(t *testing.T) {
	p := newTestProvider(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/BK-1001") {
			json.NewEncoder(w).Encode(map[string]any{"id": "BK-1001", "status": "paid"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	c := p.client(true)

	assert.Equal(t, models.BookingStatusPaid, c.GetBookingStatus(context.Background(), "BK-1001"))
	assert.Equal(t, models.BookingStatusUnknown, c.GetBookingStatus(context.Background(), "BK-missing"))
}
