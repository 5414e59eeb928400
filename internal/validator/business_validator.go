package validator

import (
	"fmt"
	"time"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

// BusinessValidator handles cross-field business rule validation on top of
// the struct tags.
type BusinessValidator struct {
	validator *Validator
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator(v *Validator) *BusinessValidator {
	return &BusinessValidator{validator: v}
}

// ValidateBulkEnroll validates an enrollment batch before any insert runs.
func (bv *BusinessValidator) ValidateBulkEnroll(req *BulkEnrollRequest) ValidationErrors {
	errors := bv.validator.Validate(req)

	seen := make(map[string]bool, len(req.CourseIDs))
	for _, courseID := range req.CourseIDs {
		if seen[courseID] {
			errors = append(errors, ValidationError{
				Field:   "course_ids",
				Message: fmt.Sprintf("course %s listed more than once", courseID),
				Value:   courseID,
				Rule:    "unique_courses",
			})
		}
		seen[courseID] = true
	}

	return errors
}

// ValidateGradeSubmit requires at least one component to be present.
func (bv *BusinessValidator) ValidateGradeSubmit(req *GradeSubmitRequest) ValidationErrors {
	errors := bv.validator.Validate(req)

	if req.P1 == nil && req.P2 == nil && req.Exam == nil {
		errors = append(errors, ValidationError{
			Field:   "grades",
			Message: "at least one of p1, p2, exam must be provided",
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateAttendanceSheet rejects sheets listing a student twice and
// sheets dated in the far future.
func (bv *BusinessValidator) ValidateAttendanceSheet(req *AttendanceSubmitRequest) ValidationErrors {
	errors := bv.validator.Validate(req)

	seen := make(map[string]bool, len(req.Records))
	for _, record := range req.Records {
		if seen[record.StudentID] {
			errors = append(errors, ValidationError{
				Field:   "records",
				Message: fmt.Sprintf("student %s listed more than once", record.StudentID),
				Value:   record.StudentID,
				Rule:    "unique_students",
			})
		}
		seen[record.StudentID] = true
	}

	if date, err := time.Parse("2006-01-02", req.Date); err == nil {
		if date.After(time.Now().AddDate(0, 0, 1)) {
			errors = append(errors, ValidationError{
				Field:   "date",
				Message: "attendance cannot be recorded for a future date",
				Value:   req.Date,
				Rule:    "business_logic",
			})
		}
	}

	return errors
}

// ValidateApplicationTransition validates scholarship application status moves.
func (bv *BusinessValidator) ValidateApplicationTransition(current, next models.ApplicationStatus) ValidationErrors {
	allowed := map[models.ApplicationStatus][]models.ApplicationStatus{
		models.ApplicationPending:  {models.ApplicationApproved, models.ApplicationRejected},
		models.ApplicationApproved: {models.ApplicationRejected},
		models.ApplicationRejected: {models.ApplicationApproved},
	}

	for _, status := range allowed[current] {
		if next == status {
			return nil
		}
	}

	return ValidationErrors{{
		Field:   "status",
		Message: fmt.Sprintf("cannot transition from %s to %s", current, next),
		Value:   next,
		Rule:    "status_transition",
	}}
}

// ValidateRoleFields checks that role-specific fields match the role being
// created: student identifiers on students, profession on professors.
func (bv *BusinessValidator) ValidateRoleFields(req *UserCreateRequest) ValidationErrors {
	var errors ValidationErrors

	if req.Role != models.RoleStudent {
		if req.Carnet != nil || req.MinedCode != nil || req.CareerID != nil {
			errors = append(errors, ValidationError{
				Field:   "role",
				Message: "carnet, mined_code and career_id only apply to students",
				Value:   req.Role,
				Rule:    "business_logic",
			})
		}
	}

	if req.Role != models.RoleProfessor && req.Profession != nil {
		errors = append(errors, ValidationError{
			Field:   "profession",
			Message: "profession only applies to professors",
			Value:   *req.Profession,
			Rule:    "business_logic",
		})
	}

	return errors
}
