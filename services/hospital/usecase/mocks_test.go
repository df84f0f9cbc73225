package usecase

import (
	"context"
	"errors"
	"time"

	"hospital/domain"
)

// Compile-time check to ensure MockPatientRepo implements domain.PatientRepo.
var _ domain.PatientRepo = (*MockPatientRepo)(nil)

// MockPatientRepo is a function-backed mock of the patient repository.
type MockPatientRepo struct {
	FindAllFunc                func(ctx context.Context, page, size int) ([]domain.Patient, error)
	ListAllFunc                func(ctx context.Context) ([]domain.Patient, error)
	FindByIDFunc               func(ctx context.Context, id int64) (*domain.Patient, error)
	FindByEmailFunc            func(ctx context.Context, email string) (*domain.Patient, error)
	ExistsByIDFunc             func(ctx context.Context, id int64) (bool, error)
	FindByGenderFunc           func(ctx context.Context, gender domain.Gender) ([]domain.Patient, error)
	FindByBirthDateBetweenFunc func(ctx context.Context, start, end time.Time) ([]domain.Patient, error)
	FindByInsuranceFunc        func(ctx context.Context, insurance string) ([]domain.Patient, error)
	FindByConditionFunc        func(ctx context.Context, condition string) ([]domain.Patient, error)
	FindRecentFunc             func(ctx context.Context, since time.Time) ([]domain.Patient, error)
	SaveFunc                   func(ctx context.Context, patient *domain.Patient) error
	UpdateFunc                 func(ctx context.Context, patient *domain.Patient) error
	DeleteByIDFunc             func(ctx context.Context, id int64) error
}

func (m *MockPatientRepo) FindAll(ctx context.Context, page, size int) ([]domain.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, page, size)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockPatientRepo) ListAll(ctx context.Context) ([]domain.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("ListAllFunc not implemented in mock")
}

func (m *MockPatientRepo) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepo) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockPatientRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, errors.New("ExistsByIDFunc not implemented in mock")
}

func (m *MockPatientRepo) FindByGender(ctx context.Context, gender domain.Gender) ([]domain.Patient, error) {
	if m.FindByGenderFunc != nil {
		return m.FindByGenderFunc(ctx, gender)
	}
	return nil, errors.New("FindByGenderFunc not implemented in mock")
}

func (m *MockPatientRepo) FindByBirthDateBetween(ctx context.Context, start, end time.Time) ([]domain.Patient, error) {
	if m.FindByBirthDateBetweenFunc != nil {
		return m.FindByBirthDateBetweenFunc(ctx, start, end)
	}
	return nil, errors.New("FindByBirthDateBetweenFunc not implemented in mock")
}

func (m *MockPatientRepo) FindByInsurance(ctx context.Context, insurance string) ([]domain.Patient, error) {
	if m.FindByInsuranceFunc != nil {
		return m.FindByInsuranceFunc(ctx, insurance)
	}
	return nil, errors.New("FindByInsuranceFunc not implemented in mock")
}

func (m *MockPatientRepo) FindByCondition(ctx context.Context, condition string) ([]domain.Patient, error) {
	if m.FindByConditionFunc != nil {
		return m.FindByConditionFunc(ctx, condition)
	}
	return nil, errors.New("FindByConditionFunc not implemented in mock")
}

func (m *MockPatientRepo) FindRecent(ctx context.Context, since time.Time) ([]domain.Patient, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, since)
	}
	return nil, errors.New("FindRecentFunc not implemented in mock")
}

func (m *MockPatientRepo) Save(ctx context.Context, patient *domain.Patient) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, patient)
	}
	return errors.New("SaveFunc not implemented in mock")
}

func (m *MockPatientRepo) Update(ctx context.Context, patient *domain.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepo) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return errors.New("DeleteByIDFunc not implemented in mock")
}
