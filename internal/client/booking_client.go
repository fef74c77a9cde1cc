// Package client holds the HTTP clients the frontend funnel drives: the
// public booking submission and the admin dashboard operations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scoopo-app/booking-service/internal/models"
)

// BookingClient submits a finished booking form to the backend.
type BookingClient struct {
	baseURL string
	client  *http.Client
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Submit serializes the request and performs the single network call. Any
// non-success status or transport failure collapses into
// models.ErrSubmissionFailed; the caller only learns "failed, retry
// available". There are no automatic retries.
func (c *BookingClient) Submit(ctx context.Context, booking models.BookingRequest) error {
	jsonData, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.ErrSubmissionFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.ErrSubmissionFailed
	}
	return nil
}
