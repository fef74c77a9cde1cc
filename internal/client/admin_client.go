package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scoopo-app/booking-service/internal/models"
	"scoopo-app/booking-service/internal/utils"
)

// AdminClient drives the admin dashboard operations against the backend.
type AdminClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAdminClient(baseURL, token string) *AdminClient {
	return &AdminClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *AdminClient) List(ctx context.Context) ([]models.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/bookings", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %w", err)
	}
	req.Header.Set(utils.AdminTokenHeader, c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking service returned status %d", resp.StatusCode)
	}

	var bookings []models.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (c *AdminClient) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	body, err := json.Marshal(map[string]models.BookingStatus{"status": status})
	if err != nil {
		return fmt.Errorf("failed to marshal status update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/api/bookings/"+id, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(utils.AdminTokenHeader, c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("booking service returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *AdminClient) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/bookings/"+id, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set(utils.AdminTokenHeader, c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("booking service returned status %d", resp.StatusCode)
	}
	return nil
}

// Filter narrows an already-fetched list by case-insensitive substring
// match over name and address. Display-layer concern only; the server
// never sees the query.
func Filter(bookings []models.Booking, query string) []models.Booking {
	if query == "" {
		return bookings
	}

	q := strings.ToLower(query)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.Address), q) {
			out = append(out, b)
		}
	}
	return out
}
