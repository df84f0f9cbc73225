package usecase

import (
	"testing"
	"time"

	"hospital/domain"

	"github.com/stretchr/testify/assert"
)

func validCandidate() *domain.Patient {
	return &domain.Patient{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@x.com",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:      domain.GenderFemale,
	}
}

func TestValidatePatientMissingFieldsInOrder(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(p *domain.Patient)
		field  string
	}{
		{"first name blank", func(p *domain.Patient) { p.FirstName = "   " }, "firstName"},
		{"last name blank", func(p *domain.Patient) { p.LastName = "" }, "lastName"},
		{"email blank", func(p *domain.Patient) { p.Email = " " }, "email"},
		{"date of birth absent", func(p *domain.Patient) { p.DateOfBirth = time.Time{} }, "dateOfBirth"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validCandidate()
			tc.mutate(p)

			err := validatePatient(p, nil, now)
			var missing *domain.MissingFieldError
			assert.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.field, missing.Field)
		})
	}
}

func TestValidatePatientFirstFailureWins(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Everything is wrong at once; only the first rule in order reports.
	p := &domain.Patient{}
	err := validatePatient(p, nil, now)

	var missing *domain.MissingFieldError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "firstName", missing.Field)
}

func TestValidatePatientFutureBirthDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	p := validCandidate()
	p.DateOfBirth = now.AddDate(0, 0, 1)

	err := validatePatient(p, nil, now)
	assert.ErrorIs(t, err, domain.ErrFutureBirthDate)
}

func TestValidatePatientBirthDateTodayAllowed(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	p := validCandidate()
	p.DateOfBirth = now

	assert.NoError(t, validatePatient(p, nil, now))
}

func TestValidatePatientDuplicateEmailOnCreate(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	existing := validCandidate()
	existing.ID = 7

	candidate := validCandidate()

	err := validatePatient(candidate, existing, now)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestValidatePatientDuplicateEmailOnUpdate(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	existing := validCandidate()
	existing.ID = 7

	candidate := validCandidate()
	candidate.ID = 9

	err := validatePatient(candidate, existing, now)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestValidatePatientKeepingOwnEmail(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	existing := validCandidate()
	existing.ID = 7

	candidate := validCandidate()
	candidate.ID = 7

	assert.NoError(t, validatePatient(candidate, existing, now))
}
