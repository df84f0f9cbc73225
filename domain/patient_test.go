package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAtUsesCalendarYears(t *testing.T) {
	p := Patient{DateOfBirth: time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)}

	// Age is year difference only; the December birthday not yet reached
	// still counts as a full year.
	at := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 34, p.AgeAt(at))
}

func TestAgeAtZeroBirthDate(t *testing.T) {
	p := Patient{}
	assert.Equal(t, 0, p.AgeAt(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestFullName(t *testing.T) {
	p := Patient{FirstName: "Ann", LastName: "Lee"}
	assert.Equal(t, "Ann Lee", p.FullName())
}

func TestParseGender(t *testing.T) {
	g, valid := ParseGender("FEMALE")
	assert.True(t, valid)
	assert.Equal(t, GenderFemale, g)

	_, valid = ParseGender("female")
	assert.False(t, valid)

	_, valid = ParseGender("UNKNOWN")
	assert.False(t, valid)
}
