package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scoopo-app/booking-service/internal/models"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	DeleteBooking(ctx context.Context, id string) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBooking handles the public form submission. Validation failures
// report every failing field; any other failure (storage, owner
// notification) is a generic 500 so the form can offer a retry.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListBookings returns all bookings, newest first. Admin only.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

type statusUpdate struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateStatus toggles a booking between pending and contacted. Admin only.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var update statusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), update.Status)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking updated"})
}

// DeleteBooking removes a booking. Admin only, idempotent.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
