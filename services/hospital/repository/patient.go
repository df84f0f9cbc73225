package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const patientColumns = `id, first_name, last_name, email, phone, date_of_birth, gender, address, emergency_contact, medical_history, insurance, created_at, updated_at`

type patientRepository struct {
	db *pgxpool.Pool
}

func NewPatientRepository(database *pgxpool.Pool) domain.PatientRepo {
	return &patientRepository{
		db: database,
	}
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var p domain.Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.DateOfBirth, &p.Gender,
		&p.Address, &p.EmergencyContact, &p.MedicalHistory, &p.Insurance, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPatients(rows pgx.Rows) ([]domain.Patient, error) {
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan patient: %v", err)
		}
		patients = append(patients, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return patients, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (pr *patientRepository) FindAll(ctx context.Context, page, size int) ([]domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`

	rows, err := pr.db.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("could not get patients page: %v", err)
	}

	return collectPatients(rows)
}

func (pr *patientRepository) ListAll(ctx context.Context) ([]domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		ORDER BY id;
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get all patients: %v", err)
	}

	return collectPatients(rows)
}

func (pr *patientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE id = $1;
	`

	p, err := scanPatient(pr.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not get patient: %v", err)
	}

	return p, nil
}

// FindByEmail returns nil without an error when no patient holds the email;
// absence is a normal answer for the uniqueness pre-check.
func (pr *patientRepository) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE email = $1;
	`

	p, err := scanPatient(pr.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not get patient by email: %v", err)
	}

	return p, nil
}

func (pr *patientRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1);`

	var exists bool
	if err := pr.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("could not check patient existence: %v", err)
	}

	return exists, nil
}

func (pr *patientRepository) FindByGender(ctx context.Context, gender domain.Gender) ([]domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE gender = $1
		ORDER BY id;
	`

	rows, err := pr.db.Query(ctx, query, gender)
	if err != nil {
		return nil, fmt.Errorf("could not get patients by gender: %v", err)
	}

	return collectPatients(rows)
}

func (pr *patientRepository) FindByBirthDateBetween(ctx context.Context, start, end time.Time) ([]domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE date_of_birth BETWEEN $1 AND $2
		ORDER BY id;
	`

	rows, err := pr.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not get patients by birth date range: %v", err)
	}

	return collectPatients(rows)
}

func (pr *patientRepository) FindByInsurance(ctx context.Context, insurance string) ([]domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE insurance ILIKE '%' || $1 || '%'
		ORDER BY id;
	`

	rows, err := pr.db.Query(ctx, query, insurance)
	if err != nil {
		return nil, fmt.Errorf("could not get patients by insurance: %v", err)
	}

	return collectPatients(rows)
}

func (pr *patientRepository) FindByCondition(ctx context.Context, condition string) ([]domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE medical_history ILIKE '%' || $1 || '%'
		ORDER BY id;
	`

	rows, err := pr.db.Query(ctx, query, condition)
	if err != nil {
		return nil, fmt.Errorf("could not get patients by condition: %v", err)
	}

	return collectPatients(rows)
}

func (pr *patientRepository) FindRecent(ctx context.Context, since time.Time) ([]domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE created_at >= $1
		ORDER BY created_at DESC;
	`

	rows, err := pr.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("could not get recently registered patients: %v", err)
	}

	return collectPatients(rows)
}

func (pr *patientRepository) Save(ctx context.Context, patient *domain.Patient) error {
	insertQuery := `
		INSERT INTO patients (first_name, last_name, email, phone, date_of_birth, gender, address, emergency_contact, medical_history, insurance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`

	now := time.Now()

	var id int64
	err := pr.db.QueryRow(ctx, insertQuery,
		patient.FirstName, patient.LastName, patient.Email, patient.Phone, patient.DateOfBirth,
		patient.Gender, patient.Address, patient.EmergencyContact, patient.MedicalHistory, patient.Insurance,
		now, now).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("could not insert patient: %v", err)
	}

	patient.ID = id
	patient.CreatedAt = now
	patient.UpdatedAt = now

	return nil
}

func (pr *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	query := `
		UPDATE patients
		SET first_name = $1, last_name = $2, email = $3, phone = $4, date_of_birth = $5, gender = $6,
			address = $7, emergency_contact = $8, medical_history = $9, insurance = $10, updated_at = $11
		WHERE id = $12;
	`

	now := time.Now()
	tag, err := pr.db.Exec(ctx, query,
		patient.FirstName, patient.LastName, patient.Email, patient.Phone, patient.DateOfBirth,
		patient.Gender, patient.Address, patient.EmergencyContact, patient.MedicalHistory, patient.Insurance,
		now, patient.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("could not update patient: %v", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	patient.UpdatedAt = now
	return nil
}

func (pr *patientRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM patients WHERE id = $1;`

	tag, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete patient: %v", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
