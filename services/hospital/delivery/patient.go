package delivery

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hospital/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

type patientHandler struct {
	puc domain.PatientUseCase
	log *logrus.Logger
}

func NewPatientDelivery(app *fiber.App, uc domain.PatientUseCase, log *logrus.Logger) {
	handler := &patientHandler{
		puc: uc,
		log: log,
	}

	route := app.Group("/api/patients")

	route.Get("/statistics", handler.deliveryGetStatistics)
	route.Get("/age-groups", handler.deliveryGetAgeGroups)
	route.Get("/search", handler.deliverySearchPatients)
	route.Get("/age-range", handler.deliveryGetPatientsByAgeRange)
	route.Get("/gender/:gender", handler.deliveryGetPatientsByGender)
	route.Get("/insurance/:insurance", handler.deliveryGetPatientsByInsurance)
	route.Get("/without-insurance", handler.deliveryGetPatientsWithoutInsurance)
	route.Get("/upcoming-birthdays", handler.deliveryGetUpcomingBirthdays)
	route.Get("/condition/:condition", handler.deliveryGetPatientsByCondition)
	route.Get("/recent", handler.deliveryGetRecentPatients)
	route.Get("/", handler.deliveryGetAllPatients)
	route.Get("/:id", handler.deliveryGetPatientByID)
	route.Post("/", handler.deliveryCreatePatient)
	route.Put("/:id", handler.deliveryUpdatePatient)
	route.Delete("/:id", handler.deliveryDeletePatient)
}

// statusForError maps domain error kinds onto HTTP status codes.
func statusForError(err error) int {
	var missing *domain.MissingFieldError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrFutureBirthDate),
		errors.As(err, &missing):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (ph *patientHandler) fail(c *fiber.Ctx, err error, message string) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		ph.log.Errorf("%s: %v", message, err)
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func validatePayload(req *domain.PatientPayload) error {
	if _, err := govalidator.ValidateStruct(req); err != nil {
		return err
	}

	// govalidator's matches() cannot hold this pattern (the tag parser splits
	// on the comma inside the repetition bound), so the phone check runs here.
	if req.Phone != nil && *req.Phone != "" && !phonePattern.MatchString(*req.Phone) {
		return errors.New("Phone number should be valid")
	}

	return nil
}

func payloadToPatient(req *domain.PatientPayload) (*domain.Patient, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, errors.New("Date of birth must be a valid YYYY-MM-DD date")
	}

	return &domain.Patient{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		DateOfBirth:      dob,
		Gender:           domain.Gender(req.Gender),
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		MedicalHistory:   req.MedicalHistory,
		Insurance:        req.Insurance,
	}, nil
}

func (ph *patientHandler) deliveryGetAllPatients(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)

	patients, err := ph.puc.GetAllPatients(c.Context(), page, size)
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve patients")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetPatientByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient ID",
			"error":   err.Error(),
		})
	}

	patient, err := ph.puc.GetPatientByID(c.Context(), id)
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve patient")
	}

	return ok(c, "Patient retrieved successfully", patient)
}

func (ph *patientHandler) deliveryCreatePatient(c *fiber.Ctx) error {
	var req domain.PatientPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := validatePayload(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient data",
			"error":   err.Error(),
		})
	}

	patient, err := payloadToPatient(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient data",
			"error":   err.Error(),
		})
	}

	if err := ph.puc.CreatePatient(c.Context(), patient); err != nil {
		return ph.fail(c, err, "Failed to create patient")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Patient created successfully",
		"data":    patient,
	})
}

func (ph *patientHandler) deliveryUpdatePatient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient ID",
			"error":   err.Error(),
		})
	}

	var req domain.PatientPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := validatePayload(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient data",
			"error":   err.Error(),
		})
	}

	patient, err := payloadToPatient(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient data",
			"error":   err.Error(),
		})
	}
	patient.ID = id

	if err := ph.puc.UpdatePatient(c.Context(), patient); err != nil {
		return ph.fail(c, err, "Failed to update patient")
	}

	return ok(c, "Patient updated successfully", patient)
}

func (ph *patientHandler) deliveryDeletePatient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient ID",
			"error":   err.Error(),
		})
	}

	if err := ph.puc.DeletePatient(c.Context(), id); err != nil {
		return ph.fail(c, err, "Failed to delete patient")
	}

	return ok(c, "Patient deleted successfully", nil)
}

func (ph *patientHandler) deliverySearchPatients(c *fiber.Ctx) error {
	query := c.Query("query")

	patients, err := ph.puc.SearchPatients(c.Context(), query)
	if err != nil {
		return ph.fail(c, err, "Failed to search patients")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetPatientsByGender(c *fiber.Ctx) error {
	gender, valid := domain.ParseGender(strings.ToUpper(c.Params("gender")))
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gender",
			"error":   "gender must be one of MALE, FEMALE, OTHER",
		})
	}

	patients, err := ph.puc.GetPatientsByGender(c.Context(), gender)
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve patients by gender")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetPatientsByAgeRange(c *fiber.Ctx) error {
	if c.Query("min") == "" || c.Query("max") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid age range",
			"error":   "min and max query parameters are required",
		})
	}

	minAge := c.QueryInt("min", 0)
	maxAge := c.QueryInt("max", 0)

	if minAge < 0 || maxAge < minAge {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid age range",
			"error":   "min must be >= 0 and max must be >= min",
		})
	}

	patients, err := ph.puc.GetPatientsByAgeRange(c.Context(), minAge, maxAge)
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve patients by age range")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetPatientsByInsurance(c *fiber.Ctx) error {
	patients, err := ph.puc.GetPatientsByInsurance(c.Context(), c.Params("insurance"))
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve patients by insurance")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetPatientsWithoutInsurance(c *fiber.Ctx) error {
	patients, err := ph.puc.GetPatientsWithoutInsurance(c.Context())
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve uninsured patients")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetPatientsByCondition(c *fiber.Ctx) error {
	patients, err := ph.puc.GetPatientsByCondition(c.Context(), c.Params("condition"))
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve patients by condition")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetRecentPatients(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	patients, err := ph.puc.GetRecentPatients(c.Context(), days)
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve recently registered patients")
	}

	return ok(c, "Patients retrieved successfully", patients)
}

func (ph *patientHandler) deliveryGetStatistics(c *fiber.Ctx) error {
	stats, err := ph.puc.GetPatientStatistics(c.Context())
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve patient statistics")
	}

	return ok(c, "Statistics retrieved successfully", stats)
}

func (ph *patientHandler) deliveryGetAgeGroups(c *fiber.Ctx) error {
	histogram, err := ph.puc.GetAgeGroupHistogram(c.Context())
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve age group distribution")
	}

	return ok(c, "Age group distribution retrieved successfully", histogram)
}

func (ph *patientHandler) deliveryGetUpcomingBirthdays(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	patients, err := ph.puc.GetUpcomingBirthdays(c.Context(), days)
	if err != nil {
		return ph.fail(c, err, "Failed to retrieve upcoming birthdays")
	}

	return ok(c, "Patients retrieved successfully", patients)
}
