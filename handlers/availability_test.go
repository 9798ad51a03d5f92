package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"altitude/models"
	"altitude/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailability struct {
	result *models.Availability
	err    error

	date    string
	pkg     string
	jumpers int
}

func (s *stubAvailability) CheckAvailability(_ context.Context, date, packageName string, numJumpers int) (*models.Availability, error) {
	s.date = date
	s.pkg = packageName
	s.jumpers = numJumpers
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newAvailabilityRouter(gateway *stubAvailability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(gateway)
	r.GET("/availability", h.CheckAvailability)
	return r
}

func TestCheckAvailabilityReturnsSlots(t *testing.T) {
	gateway := &stubAvailability{result: &models.Availability{
		Available: true,
		Slots: []models.TimeSlot{
			{Time: "14:00", Available: true},
			{Time: "16:00", Available: true},
		},
		Times: []string{"2:00 PM", "4:00 PM"},
	}}
	router := newAvailabilityRouter(gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2025-06-14&package=MVP&jumpers=15", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Len(t, resp.Slots, 2)

	assert.Equal(t, "2025-06-14", gateway.date)
	assert.Equal(t, "MVP", gateway.pkg)
	assert.Equal(t, 15, gateway.jumpers)
}

func TestCheckAvailabilityRejectsBadJumpers(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailability{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2025-06-14&package=MVP&jumpers=lots", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAvailabilityValidationErrorIsBadRequest(t *testing.T) {
	_, err := catalog.PriceQuote("Rookie", 4, false)
	require.Error(t, err)
	gateway := &stubAvailability{err: err}
	router := newAvailabilityRouter(gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2025-06-14&package=Rookie&jumpers=4", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Minimum 10 jumpers")
}

func TestCheckAvailabilityOutageIsBadGateway(t *testing.T) {
	gateway := &stubAvailability{err: errors.New("provider unreachable")}
	router := newAvailabilityRouter(gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2025-06-14&package=MVP&jumpers=15", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCheckAvailabilityFallbackStillAnswers(t *testing.T) {
	gateway := &stubAvailability{result: &models.Availability{
		Available: true,
		Times:     []string{"2:00 PM, 4:00 PM, 6:00 PM (mock data)"},
		Fallback:  true,
	}}
	router := newAvailabilityRouter(gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2025-06-14&package=MVP&jumpers=15", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Fallback)
}
