package models

import (
	"errors"
	"strings"

	"scoopo-app/booking-service/internal/utils"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrValidation        = errors.New("validation error")
	ErrOwnerNotification = errors.New("owner notification failed")
	ErrSubmissionFailed  = errors.New("submission failed")
)

// ValidationErrors carries one entry per failing field so the caller can
// report all of them at once, not just the first.
type ValidationErrors []utils.FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, " // ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrValidation
}
