package usecase

import (
	"context"
	"time"

	"hospital/domain"
)

type patientUC struct {
	patientRepo domain.PatientRepo
	TimeOut     time.Duration
}

func NewPatientUseCase(repo domain.PatientRepo, timeOut time.Duration) domain.PatientUseCase {
	return &patientUC{
		patientRepo: repo,
		TimeOut:     timeOut,
	}
}

func (pUC *patientUC) GetAllPatients(ctx context.Context, page, size int) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}

	return pUC.patientRepo.FindAll(ctx, page, size)
}

func (pUC *patientUC) GetPatientByID(ctx context.Context, id int64) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	return pUC.patientRepo.FindByID(ctx, id)
}

func (pUC *patientUC) CreatePatient(ctx context.Context, patient *domain.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	existing, err := pUC.patientRepo.FindByEmail(ctx, patient.Email)
	if err != nil {
		return err
	}

	if err := validatePatient(patient, existing, time.Now()); err != nil {
		return err
	}

	return pUC.patientRepo.Save(ctx, patient)
}

func (pUC *patientUC) UpdatePatient(ctx context.Context, patient *domain.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	current, err := pUC.patientRepo.FindByID(ctx, patient.ID)
	if err != nil {
		return err
	}

	// Full-record replace; the creation timestamp is immutable.
	patient.CreatedAt = current.CreatedAt

	existing, err := pUC.patientRepo.FindByEmail(ctx, patient.Email)
	if err != nil {
		return err
	}

	if err := validatePatient(patient, existing, time.Now()); err != nil {
		return err
	}

	return pUC.patientRepo.Update(ctx, patient)
}

func (pUC *patientUC) DeletePatient(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	exists, err := pUC.patientRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	return pUC.patientRepo.DeleteByID(ctx, id)
}

func (pUC *patientUC) SearchPatients(ctx context.Context, query string) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patients, err := pUC.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return searchPatients(patients, query), nil
}

func (pUC *patientUC) GetPatientsByGender(ctx context.Context, gender domain.Gender) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	return pUC.patientRepo.FindByGender(ctx, gender)
}

func (pUC *patientUC) GetPatientsByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	minBirthDate, maxBirthDate := birthDateWindow(minAge, maxAge, time.Now())
	return pUC.patientRepo.FindByBirthDateBetween(ctx, minBirthDate, maxBirthDate)
}

func (pUC *patientUC) GetPatientsByInsurance(ctx context.Context, insurance string) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	return pUC.patientRepo.FindByInsurance(ctx, insurance)
}

func (pUC *patientUC) GetPatientsWithoutInsurance(ctx context.Context) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patients, err := pUC.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return withoutInsurance(patients), nil
}

func (pUC *patientUC) GetPatientsByCondition(ctx context.Context, condition string) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	return pUC.patientRepo.FindByCondition(ctx, condition)
}

func (pUC *patientUC) GetRecentPatients(ctx context.Context, days int) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	since := time.Now().AddDate(0, 0, -days)
	return pUC.patientRepo.FindRecent(ctx, since)
}

func (pUC *patientUC) GetPatientStatistics(ctx context.Context) (*domain.PatientStatistics, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patients, err := pUC.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return computeStatistics(patients, time.Now()), nil
}

func (pUC *patientUC) GetAgeGroupHistogram(ctx context.Context) ([]domain.AgeGroupCount, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patients, err := pUC.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return ageGroupHistogram(patients, time.Now()), nil
}

func (pUC *patientUC) GetUpcomingBirthdays(ctx context.Context, days int) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patients, err := pUC.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return upcomingBirthdays(patients, time.Now(), days), nil
}
