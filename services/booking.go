package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travel-assistant/models"
)

// BookingClient talks to the booking submission gateway. A transport
// failure and a gateway-reported failure are distinct to callers: the
// first surfaces as an error, the second as a BookingResult with
// Success=false.
type BookingClient struct {
	baseURL string
	client  *http.Client
}

// NewBookingClient creates a client for the gateway at baseURL.
func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateBooking submits a booking for persistence and confirmation email
// delivery.
func (c *BookingClient) CreateBooking(ctx context.Context, booking models.BookingRequest) (models.BookingResult, error) {
	var result models.BookingResult

	jsonBody, err := json.Marshal(booking)
	if err != nil {
		return result, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/create-booking", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to reach booking gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("failed to read response: %w", err)
	}

	// The gateway reports application failures with a parseable body and a
	// non-2xx status; those come back as Success=false, not an error.
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("unexpected gateway response (status %d): %s", resp.StatusCode, string(body))
	}
	return result, nil
}
