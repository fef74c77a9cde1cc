package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"scoopo-app/booking-service/internal/models"
)

const (
	bookingsCacheKey = "bookings:all"
	bookingsCacheTTL = 30 * time.Second
)

// bookingListCache keeps the admin dashboard's booking list in Redis for a
// short window so repeated polls do not hit storage. Every method is a
// silent no-op when Redis is not configured, so callers never branch on it.
type bookingListCache struct {
	client *redis.Client
}

func newBookingListCache(client *redis.Client) *bookingListCache {
	return &bookingListCache{client: client}
}

// Get returns the cached list and whether it was usable. A miss, a decode
// failure and a disabled cache all read the same to the caller.
func (c *bookingListCache) Get(ctx context.Context) ([]models.Booking, bool) {
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, bookingsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, false
	}
	return bookings, true
}

func (c *bookingListCache) Set(ctx context.Context, bookings []models.Booking) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, bookingsCacheKey, data, bookingsCacheTTL).Err(); err != nil {
		log.Printf("[CACHE] Failed to cache bookings list: %v", err)
	}
}

// Invalidate drops the cached list after any booking mutation so the next
// admin read sees fresh data.
func (c *bookingListCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, bookingsCacheKey).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate bookings list: %v", err)
	}
}
