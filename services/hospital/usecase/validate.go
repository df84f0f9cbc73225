package usecase

import (
	"strings"
	"time"

	"hospital/domain"
)

// validatePatient enforces the business rules that must hold before a patient
// is persisted. Checks run in a fixed order and the first failure wins.
// existingByEmail is the persisted patient currently holding the candidate's
// email, if any; a record keeping its own email on update is not a duplicate.
func validatePatient(candidate, existingByEmail *domain.Patient, now time.Time) error {
	if strings.TrimSpace(candidate.FirstName) == "" {
		return &domain.MissingFieldError{Field: "firstName"}
	}

	if strings.TrimSpace(candidate.LastName) == "" {
		return &domain.MissingFieldError{Field: "lastName"}
	}

	if strings.TrimSpace(candidate.Email) == "" {
		return &domain.MissingFieldError{Field: "email"}
	}

	if candidate.DateOfBirth.IsZero() {
		return &domain.MissingFieldError{Field: "dateOfBirth"}
	}

	if candidate.DateOfBirth.After(now) {
		return domain.ErrFutureBirthDate
	}

	if existingByEmail != nil && existingByEmail.ID != candidate.ID {
		return domain.ErrDuplicateEmail
	}

	return nil
}
