package usecase

import (
	"strings"
	"time"

	"hospital/domain"
)

// The functions below form the read-side aggregation logic. They are pure:
// results are recomputed from the supplied collection on every call.

// searchPatients matches query as a case-insensitive substring of the first
// name, last name, or email.
func searchPatients(patients []domain.Patient, query string) []domain.Patient {
	q := strings.ToLower(query)

	var matched []domain.Patient
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.FirstName), q) ||
			strings.Contains(strings.ToLower(p.LastName), q) ||
			strings.Contains(strings.ToLower(p.Email), q) {
			matched = append(matched, p)
		}
	}

	return matched
}

// birthDateWindow translates an age range into the inclusive birth-date
// window [minBirthDate, maxBirthDate] used for the database predicate. The
// arithmetic is calendar-year based, like AgeAt.
func birthDateWindow(minAge, maxAge int, today time.Time) (minBirthDate, maxBirthDate time.Time) {
	maxBirthDate = today.AddDate(-minAge, 0, 0)
	minBirthDate = today.AddDate(-(maxAge + 1), 0, 0)
	return minBirthDate, maxBirthDate
}

func computeStatistics(patients []domain.Patient, today time.Time) *domain.PatientStatistics {
	stats := &domain.PatientStatistics{
		TotalPatients: int64(len(patients)),
	}

	if len(patients) == 0 {
		return stats
	}

	var ageSum int
	for _, p := range patients {
		switch p.Gender {
		case domain.GenderMale:
			stats.MalePatients++
		case domain.GenderFemale:
			stats.FemalePatients++
		}
		ageSum += p.AgeAt(today)
	}

	stats.AverageAge = float64(ageSum) / float64(len(patients))
	return stats
}

var ageGroups = []struct {
	label  string
	minAge int
	maxAge int
}{
	{"Under 18", 0, 17},
	{"18-30", 18, 30},
	{"31-50", 31, 50},
	{"51-70", 51, 70},
	{"Over 70", 71, 1<<31 - 1},
}

// ageGroupHistogram buckets every patient into exactly one of the five fixed
// age groups. Empty groups are omitted; the remaining groups keep their
// ascending-age order.
func ageGroupHistogram(patients []domain.Patient, today time.Time) []domain.AgeGroupCount {
	counts := make([]int64, len(ageGroups))
	for _, p := range patients {
		age := p.AgeAt(today)
		for i, g := range ageGroups {
			if age >= g.minAge && age <= g.maxAge {
				counts[i]++
				break
			}
		}
	}

	var histogram []domain.AgeGroupCount
	for i, g := range ageGroups {
		if counts[i] > 0 {
			histogram = append(histogram, domain.AgeGroupCount{AgeGroup: g.label, Count: counts[i]})
		}
	}

	return histogram
}

// upcomingBirthdays projects each birth month/day onto the current year and
// keeps patients whose projected birthday falls strictly between today and
// today+windowDays. Birthdays already passed this year are excluded even when
// next year's occurrence would land in the window.
func upcomingBirthdays(patients []domain.Patient, today time.Time, windowDays int) []domain.Patient {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	horizon := day.AddDate(0, 0, windowDays)

	var upcoming []domain.Patient
	for _, p := range patients {
		birthday := time.Date(day.Year(), p.DateOfBirth.Month(), p.DateOfBirth.Day(), 0, 0, 0, 0, day.Location())
		if birthday.After(day) && birthday.Before(horizon) {
			upcoming = append(upcoming, p)
		}
	}

	return upcoming
}

func withoutInsurance(patients []domain.Patient) []domain.Patient {
	var uninsured []domain.Patient
	for _, p := range patients {
		if p.Insurance == nil || *p.Insurance == "" {
			uninsured = append(uninsured, p)
		}
	}

	return uninsured
}
