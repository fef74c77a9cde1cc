package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scoopo-app/booking-service/internal/utils"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusContacted BookingStatus = "contacted"
)

func (s BookingStatus) Valid() bool {
	return s == StatusPending || s == StatusContacted
}

type Language string

const (
	LangEnglish Language = "English"
	LangChinese Language = "Chinese"
)

// TimeOfDay preference options offered by the booking form.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
)

// BookingRequest is the payload submitted by the booking form, before any
// identity or lifecycle state is attached.
type BookingRequest struct {
	Name      string    `json:"name" bson:"name" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone" bson:"phone"`
	Address   string    `json:"address" bson:"address" validate:"required"`
	NumCats   int       `json:"numCats" bson:"numCats" validate:"required,min=1"`
	Frequency Frequency `json:"frequency" bson:"frequency"`
	Plan      string    `json:"plan" bson:"plan"`
	TimeOfDay string    `json:"timeOfDay" bson:"timeOfDay"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Language  Language  `json:"language,omitempty" bson:"language,omitempty"`
}

// Validate checks the request against the booking schema and reports every
// failing field, not just the first.
func (r BookingRequest) Validate() ValidationErrors {
	var errs ValidationErrors

	validate := utils.GetValidator()
	if err := validate.Struct(r); err != nil {
		errs = append(errs, utils.ParseErrors(err)...)
	}

	// At least one way to reach the customer must be present.
	if r.Email == "" && r.Phone == "" {
		errs = append(errs,
			utils.FieldError{Field: "email", Message: "either email or phone is required"},
			utils.FieldError{Field: "phone", Message: "either email or phone is required"},
		)
	}

	if !r.Frequency.Custom && (r.Frequency.Visits < 1 || r.Frequency.Visits > 7) {
		errs = append(errs, utils.FieldError{
			Field:   "frequency",
			Message: "frequency must be between 1 and 7, or \"custom\"",
		})
	}

	return errs
}

// Booking is the persisted record derived from an accepted BookingRequest.
type Booking struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookingRequest `bson:",inline"`
	Status         BookingStatus `json:"status" bson:"status"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
}

// NewBooking copies the request verbatim and starts the lifecycle. The id
// is assigned by the repository at persistence time.
func NewBooking(req BookingRequest) *Booking {
	return &Booking{
		BookingRequest: req,
		Status:         StatusPending,
		CreatedAt:      time.Now(),
	}
}
