// Package form implements the booking funnel's multi-step state machine:
// step progression, per-field validation marks, the terms-agreement gate
// and the submission lifecycle. It is the stateful side of the funnel; the
// network call itself lives in the client package.
package form

import (
	"context"
	"strings"

	"scoopo-app/booking-service/internal/models"
	"scoopo-app/booking-service/internal/pricing"
)

// Steps of the funnel.
const (
	StepContact = 1
	StepService = 2
	StepConfirm = 3
)

// SuccessCountdown is the number of ticks before the success screen
// navigates away.
const SuccessCountdown = 10

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Submitter performs the booking submission network call.
type Submitter interface {
	Submit(ctx context.Context, booking models.BookingRequest) error
}

// Form tracks everything the booking page holds between renders.
type Form struct {
	Step          int
	Status        Status
	Errors        map[string]bool
	AgreedToTerms bool
	Countdown     int
	Request       models.BookingRequest

	submitter Submitter
}

// New starts a form at step 1 with the service-detail defaults the page
// preselects.
func New(submitter Submitter) *Form {
	return &Form{
		Step:   StepContact,
		Status: StatusIdle,
		Errors: make(map[string]bool),
		Request: models.BookingRequest{
			NumCats:   1,
			Frequency: models.Frequency{Visits: 1},
			TimeOfDay: models.TimeMorning,
			Plan:      "Essential",
			Language:  models.LangEnglish,
		},
		submitter: submitter,
	}
}

// Next advances to the following step. Leaving step 1 requires the contact
// details to validate; failing fields are marked and the step does not
// change.
func (f *Form) Next() bool {
	if f.Step == StepContact && !f.validateContact() {
		return false
	}
	if f.Step < StepConfirm {
		f.Step++
	}
	return true
}

// Back returns to the previous step. Always allowed; entered values are
// kept and error marks cleared.
func (f *Form) Back() {
	f.Errors = make(map[string]bool)
	if f.Step > StepContact {
		f.Step--
	}
}

// CanSubmit reports whether the confirm button is enabled: confirmation
// step, terms agreed, and no submission in flight or already succeeded.
// Success is terminal for the session, so the button never re-enables.
func (f *Form) CanSubmit() bool {
	if f.Step != StepConfirm || !f.AgreedToTerms {
		return false
	}
	return f.Status == StatusIdle || f.Status == StatusError
}

// Submit runs the contact validation once more, then performs exactly one
// submission call. On failure the form stays on the confirmation step with
// all values intact so the user can retry. Disabled submits are no-ops.
func (f *Form) Submit(ctx context.Context) {
	if !f.CanSubmit() {
		return
	}
	if !f.validateContact() {
		f.Step = StepContact
		return
	}

	f.Status = StatusSubmitting
	if err := f.submitter.Submit(ctx, f.Request); err != nil {
		f.Status = StatusError
		return
	}

	f.Status = StatusSuccess
	f.Countdown = SuccessCountdown
}

// Tick advances the success countdown by one second. Done reports whether
// the countdown elapsed and the page should navigate away.
func (f *Form) Tick() {
	if f.Status == StatusSuccess && f.Countdown > 0 {
		f.Countdown--
	}
}

func (f *Form) Done() bool {
	return f.Status == StatusSuccess && f.Countdown == 0
}

// PricePreview renders the live weekly total for the current selections.
// The confirmation step shows the same value: both go through
// pricing.Compute.
func (f *Form) PricePreview() string {
	return pricing.Compute(f.Request.Plan, f.Request.NumCats, f.Request.Frequency).Display(f.Request.Language)
}

func (f *Form) validateContact() bool {
	errs := make(map[string]bool)
	if f.Request.Name == "" {
		errs["name"] = true
	}
	if f.Request.Address == "" {
		errs["address"] = true
	}
	if f.Request.Email == "" && f.Request.Phone == "" {
		errs["email"] = true
		errs["phone"] = true
	}
	f.Errors = errs
	return len(errs) == 0
}

// Field setters clear the error mark of the field being edited, the way
// the page clears inline errors as the user types. Email and phone share
// one contact-pair requirement, so editing either clears both marks.

func (f *Form) SetName(name string) {
	f.Request.Name = name
	delete(f.Errors, "name")
}

func (f *Form) SetEmail(email string) {
	f.Request.Email = email
	delete(f.Errors, "email")
	delete(f.Errors, "phone")
}

func (f *Form) SetPhone(phone string) {
	f.Request.Phone = FormatPhoneNumber(phone)
	delete(f.Errors, "email")
	delete(f.Errors, "phone")
}

func (f *Form) SetAddress(address string) {
	f.Request.Address = address
	delete(f.Errors, "address")
}

func (f *Form) SetNumCats(n int) {
	if n < 1 {
		n = 1
	}
	f.Request.NumCats = n
}

func (f *Form) SetFrequency(freq models.Frequency) {
	f.Request.Frequency = freq
}

func (f *Form) SetTimeOfDay(timeOfDay string) {
	f.Request.TimeOfDay = timeOfDay
}

func (f *Form) SetNotes(notes string) {
	f.Request.Notes = notes
}

func (f *Form) SetLanguage(lang models.Language) {
	f.Request.Language = lang
}

func (f *Form) SetAgreedToTerms(agreed bool) {
	f.AgreedToTerms = agreed
}

// SelectPlan stores the plan label for the chosen tier, tagging on the
// current frequency's discount badge ("Care Plus (5% OFF)").
func (f *Form) SelectPlan(tier string) {
	label := tier
	if !f.Request.Frequency.Custom {
		if badge := pricing.Badge(f.Request.Frequency.Visits); badge != "" {
			label = tier + " (" + badge + ")"
		}
	}
	f.Request.Plan = label
}

// FormatPhoneNumber groups an AU mobile number for display: 0400 000 000.
func FormatPhoneNumber(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	switch {
	case len(s) < 5:
		return s
	case len(s) < 8:
		return s[:4] + " " + s[4:]
	default:
		if len(s) > 10 {
			s = s[:10]
		}
		return s[:4] + " " + s[4:7] + " " + s[7:]
	}
}
