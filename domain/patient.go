package domain

import (
	"context"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), true
	}
	return "", false
}

type Patient struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone,omitempty"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           Gender    `json:"gender"`
	Address          *string   `json:"address,omitempty"`
	EmergencyContact *string   `json:"emergency_contact,omitempty"`
	MedicalHistory   *string   `json:"medical_history,omitempty"`
	Insurance        *string   `json:"insurance,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// AgeAt is the single place age is derived from the birth date. The
// arithmetic is calendar-year only: month and day are ignored, so the age
// ticks over at New Year rather than on the birthday.
func (p *Patient) AgeAt(t time.Time) int {
	if p.DateOfBirth.IsZero() {
		return 0
	}
	return t.Year() - p.DateOfBirth.Year()
}

func (p *Patient) Age() int {
	return p.AgeAt(time.Now())
}

// PatientPayload is the request body for create and update. Shape-level rules
// live here as govalidator tags; business rules that need persisted state are
// enforced by the usecase.
type PatientPayload struct {
	FirstName        string  `json:"first_name" valid:"required~First name is required,stringlength(2|50)~First name must be between 2 and 50 characters"`
	LastName         string  `json:"last_name" valid:"required~Last name is required,stringlength(2|50)~Last name must be between 2 and 50 characters"`
	Email            string  `json:"email" valid:"required~Email is required,email~Email should be valid,maxstringlength(100)~Email must not exceed 100 characters"`
	Phone            *string `json:"phone"`
	DateOfBirth      string  `json:"date_of_birth" valid:"required~Date of birth is required"`
	Gender           string  `json:"gender" valid:"required~Gender is required,in(MALE|FEMALE|OTHER)~Invalid gender"`
	Address          *string `json:"address" valid:"maxstringlength(500)~Address must not exceed 500 characters,optional"`
	EmergencyContact *string `json:"emergency_contact" valid:"maxstringlength(200)~Emergency contact must not exceed 200 characters,optional"`
	MedicalHistory   *string `json:"medical_history" valid:"maxstringlength(2000)~Medical history must not exceed 2000 characters,optional"`
	Insurance        *string `json:"insurance" valid:"maxstringlength(100)~Insurance must not exceed 100 characters,optional"`
}

type PatientStatistics struct {
	TotalPatients  int64   `json:"total_patients"`
	MalePatients   int64   `json:"male_patients"`
	FemalePatients int64   `json:"female_patients"`
	AverageAge     float64 `json:"average_age"`
}

// AgeGroupCount is one row of the demographic histogram. Groups with a zero
// count are not reported.
type AgeGroupCount struct {
	AgeGroup string `json:"age_group"`
	Count    int64  `json:"count"`
}

type PatientRepo interface {
	FindAll(ctx context.Context, page, size int) ([]Patient, error)
	ListAll(ctx context.Context) ([]Patient, error)
	FindByID(ctx context.Context, id int64) (*Patient, error)
	FindByEmail(ctx context.Context, email string) (*Patient, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByGender(ctx context.Context, gender Gender) ([]Patient, error)
	FindByBirthDateBetween(ctx context.Context, start, end time.Time) ([]Patient, error)
	FindByInsurance(ctx context.Context, insurance string) ([]Patient, error)
	FindByCondition(ctx context.Context, condition string) ([]Patient, error)
	FindRecent(ctx context.Context, since time.Time) ([]Patient, error)
	Save(ctx context.Context, patient *Patient) error
	Update(ctx context.Context, patient *Patient) error
	DeleteByID(ctx context.Context, id int64) error
}

type PatientUseCase interface {
	GetAllPatients(ctx context.Context, page, size int) ([]Patient, error)
	GetPatientByID(ctx context.Context, id int64) (*Patient, error)
	CreatePatient(ctx context.Context, patient *Patient) error
	UpdatePatient(ctx context.Context, patient *Patient) error
	DeletePatient(ctx context.Context, id int64) error
	SearchPatients(ctx context.Context, query string) ([]Patient, error)
	GetPatientsByGender(ctx context.Context, gender Gender) ([]Patient, error)
	GetPatientsByAgeRange(ctx context.Context, minAge, maxAge int) ([]Patient, error)
	GetPatientsByInsurance(ctx context.Context, insurance string) ([]Patient, error)
	GetPatientsWithoutInsurance(ctx context.Context) ([]Patient, error)
	GetPatientsByCondition(ctx context.Context, condition string) ([]Patient, error)
	GetRecentPatients(ctx context.Context, days int) ([]Patient, error)
	GetPatientStatistics(ctx context.Context) (*PatientStatistics, error)
	GetAgeGroupHistogram(ctx context.Context) ([]AgeGroupCount, error)
	GetUpcomingBirthdays(ctx context.Context, days int) ([]Patient, error)
}
