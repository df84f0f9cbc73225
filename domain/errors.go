package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a patient id does not exist in storage.
	ErrNotFound = errors.New("patient not found")

	// ErrDuplicateEmail is returned when another persisted patient already
	// holds the candidate's email address.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrFutureBirthDate is returned when the date of birth is after today.
	ErrFutureBirthDate = errors.New("date of birth cannot be in the future")
)

// MissingFieldError reports the first required field that was blank at
// validation time.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
