package roller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"altitude/models"
	"altitude/services/catalog"

	"go.uber.org/zap"
)

type availabilityResponse struct {
	AvailableSlots []models.TimeSlot `json:"availableSlots"`
}

// CheckAvailability validates the request against the catalog and then
// queries the provider for open time slots. Invalid requests never reach
// the network. Provider failures resolve to the fallback result when
// fallback mode is enabled; authentication failures always propagate.
func (c *Client) CheckAvailability(ctx context.Context, date, packageName string, numJumpers int) (*models.Availability, error) {
	// PriceQuote covers the unknown-package and minimum-headcount rules.
	if _, err := catalog.PriceQuote(packageName, numJumpers, false); err != nil {
		return nil, err
	}
	if err := catalog.ValidateDateRestriction(packageName, date); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("date", date)
	params.Set("capacity", strconv.Itoa(numJumpers))

	req, err := c.authorizedRequest(ctx, http.MethodGet, c.cfg.BaseURL+"availability?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("roller availability auth: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fallbackAvailability(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fallbackAvailability(fmt.Errorf("availability endpoint returned %d", resp.StatusCode))
	}

	var body availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.fallbackAvailability(fmt.Errorf("decode availability response: %w", err))
	}

	// Slots keep the provider's ordering; it decides priority.
	if len(body.AvailableSlots) == 0 {
		return &models.Availability{
			Available: false,
			Slots:     []models.TimeSlot{},
			Times:     []string{},
			Message:   "No available slots for this date",
		}, nil
	}

	times := make([]string, 0, len(body.AvailableSlots))
	for _, slot := range body.AvailableSlots {
		times = append(times, slot.Time)
	}
	return &models.Availability{
		Available: true,
		Slots:     body.AvailableSlots,
		Times:     times,
		Message:   "Available time slots: " + strings.Join(times, ", "),
	}, nil
}

// fallbackAvailability is the deterministic substitute returned while
// the provider is unreachable, keeping the conversation alive in
// degraded mode.
func (c *Client) fallbackAvailability(cause error) (*models.Availability, error) {
	if !c.cfg.FallbackEnabled {
		return nil, fmt.Errorf("could not check availability via Roller API: %w", cause)
	}
	c.logger.Warn("Roller availability unreachable, returning fallback slots", zap.Error(cause))
	return &models.Availability{
		Available: true,
		Slots: []models.TimeSlot{
			{Time: "14:00", Available: true},
			{Time: "16:00", Available: true},
			{Time: "18:00", Available: true},
		},
		Times:    []string{"2:00 PM", "4:00 PM", "6:00 PM"},
		Message:  "Available time slots: 2:00 PM, 4:00 PM, 6:00 PM (mock data)",
		Fallback: true,
	}, nil
}

// GetProducts fetches the provider's party-package products. Best-effort:
// an unreachable provider yields an empty list, not an error.
func (c *Client) GetProducts(ctx context.Context) []map[string]any {
	req, err := c.authorizedRequest(ctx, http.MethodGet, c.cfg.BaseURL+"products?type=party_package", nil)
	if err != nil {
		c.logger.Warn("Roller products auth failed", zap.Error(err))
		return []map[string]any{}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Could not fetch products from Roller API", zap.Error(err))
		return []map[string]any{}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Roller products endpoint error", zap.Int("status", resp.StatusCode))
		return []map[string]any{}
	}

	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("Could not decode Roller products", zap.Error(err))
		return []map[string]any{}
	}
	return body.Data
}
