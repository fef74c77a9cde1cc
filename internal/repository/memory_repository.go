package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scoopo-app/booking-service/internal/models"
)

// MemoryBookingRepository is the degraded-mode store used when MongoDB is
// not configured or unreachable at startup. Bookings live only for the
// life of the process; operators are warned at startup when this mode is
// selected.
type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MemoryBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID.Hex() == id {
			r.bookings[i].Status = status
			return nil
		}
	}

	// Absent id is a no-op, same as the Mongo repository.
	return nil
}

func (r *MemoryBookingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID.Hex() == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}

	return nil
}
