package roller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"altitude/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fallbackBookingPrefix marks synthesized booking identifiers produced
// during a provider outage. A MOCK- id is never a real reservation and
// its checkout URL is not payment-capable.
const fallbackBookingPrefix = "MOCK-"

// fallbackCheckoutURL is the placeholder checkout link used in fallback mode.
const fallbackCheckoutURL = "https://checkout.roller.app/mock-payment-link"

type bookingPayload struct {
	Package    string `json:"package"`
	NumJumpers int    `json:"num_jumpers"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Customer   struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone,omitempty"`
	} `json:"customer"`
	PrivateRoom   bool   `json:"private_room"`
	BirthdayChild string `json:"birthday_child,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type bookingResponse struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
	PaymentURL  string `json:"payment_url"`
	Status      string `json:"status"`
}

// CreateBooking submits a booking to the provider and returns the
// persisted identifier plus the checkout reference. The agent only calls
// this after explicit user confirmation; that protocol invariant is
// enforced at the agent layer, not re-checked here. Provider outage
// resolves to a recognizable fallback result when fallback mode is on.
func (c *Client) CreateBooking(ctx context.Context, request models.BookingRequest) (*models.BookingResult, error) {
	payload := bookingPayload{
		Package:       request.Package,
		NumJumpers:    request.NumJumpers,
		Date:          request.Date,
		Time:          request.TimeSlot,
		PrivateRoom:   request.PrivateRoom,
		BirthdayChild: request.BirthdayChildName,
		Notes:         request.Notes,
	}
	payload.Customer.Name = request.CustomerName
	payload.Customer.Email = request.CustomerEmail
	payload.Customer.Phone = request.CustomerPhone

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal booking payload: %w", err)
	}

	req, err := c.authorizedRequest(ctx, http.MethodPost, c.cfg.BaseURL+"bookings", strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("roller booking auth: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fallbackBooking(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fallbackBooking(fmt.Errorf("bookings endpoint returned %d", resp.StatusCode))
	}

	var created bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return c.fallbackBooking(fmt.Errorf("decode booking response: %w", err))
	}

	checkout := created.CheckoutURL
	if checkout == "" {
		checkout = created.PaymentURL
	}
	status := created.Status
	if status == "" {
		status = models.BookingStatusPendingPayment
	}
	return &models.BookingResult{
		Success:     true,
		BookingID:   created.ID,
		CheckoutURL: checkout,
		Status:      status,
	}, nil
}

func (c *Client) fallbackBooking(cause error) (*models.BookingResult, error) {
	if !c.cfg.FallbackEnabled {
		return nil, fmt.Errorf("could not create booking via Roller API: %w", cause)
	}
	c.logger.Warn("Roller booking unreachable, synthesizing fallback booking", zap.Error(cause))
	return &models.BookingResult{
		Success:     true,
		BookingID:   fallbackBookingPrefix + uuid.New().String()[:8],
		CheckoutURL: fallbackCheckoutURL,
		Status:      models.BookingStatusPendingPayment,
		Fallback:    true,
	}, nil
}

// GetBookingStatus is a best-effort passthrough. An unreachable provider
// yields the unknown status, never an error.
func (c *Client) GetBookingStatus(ctx context.Context, bookingID string) string {
	req, err := c.authorizedRequest(ctx, http.MethodGet, c.cfg.BaseURL+"bookings/"+bookingID, nil)
	if err != nil {
		c.logger.Warn("Roller booking status auth failed", zap.Error(err))
		return models.BookingStatusUnknown
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Could not fetch booking status", zap.String("bookingID", bookingID), zap.Error(err))
		return models.BookingStatusUnknown
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Roller booking status error", zap.Int("status", resp.StatusCode))
		return models.BookingStatusUnknown
	}

	var body bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Status == "" {
		return models.BookingStatusUnknown
	}
	return body.Status
}
