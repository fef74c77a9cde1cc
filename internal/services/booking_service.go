package services

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"scoopo-app/booking-service/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// BookingService validates incoming requests, persists bookings and
// dispatches the two notification emails. It does not know which storage
// implementation it holds; that choice is made once at startup.
type BookingService struct {
	repo       BookingRepository
	mailer     Mailer
	cache      *bookingListCache
	ownerEmail string
}

func NewBookingService(repo BookingRepository, mailer Mailer, rdb *redis.Client, ownerEmail string) *BookingService {
	return &BookingService{
		repo:       repo,
		mailer:     mailer,
		cache:      newBookingListCache(rdb),
		ownerEmail: ownerEmail,
	}
}

// CreateBooking runs the full submission pipeline: validate, persist,
// notify the owner, then notify the customer.
//
// The owner notification is business critical: if it fails the caller gets
// an error even though the booking was persisted, so the lead is never
// silently lost. The customer confirmation is best effort and only ever
// logged on failure.
func (s *BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	booking := models.NewBooking(req)
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	s.cache.Invalidate(ctx)

	if err := s.mailer.Send(s.ownerEmail, OwnerSubject(req), OwnerNotification(req)); err != nil {
		return booking, fmt.Errorf("%w: %v", models.ErrOwnerNotification, err)
	}

	if req.Email != "" {
		if err := s.mailer.Send(req.Email, CustomerSubject(req.Language), CustomerConfirmation(req)); err != nil {
			log.Printf("Failed to send customer confirmation to %s: %v", req.Email, err)
		}
	}

	return booking, nil
}

// ListBookings returns all bookings ordered by creation time descending,
// newest first. Results are cached briefly in Redis when it is configured.
func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	if bookings, ok := s.cache.Get(ctx); ok {
		return bookings, nil
	}

	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, bookings)

	return bookings, nil
}

// UpdateStatus toggles a booking between pending and contacted. Absent ids
// succeed as no-ops.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if !status.Valid() {
		return models.ValidationErrors{{Field: "status", Message: "status must be pending or contacted"}}
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

// DeleteBooking removes a booking. Idempotent: absent ids succeed.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
