package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

// ValidationError describes a single failed rule on a request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule"`
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// HasErrors reports whether any rule failed.
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Validator wraps go-playground validation with the domain's custom tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with all custom tags registered.
func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerCustomTags()

	return v
}

// Validate runs struct validation and converts failures to the domain shape.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// Var validates a single value against a tag expression.
func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

var termPattern = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func (v *Validator) registerCustomTags() {
	// grade_score: integer component score, 0..100
	_ = v.validate.RegisterValidation("grade_score", func(fl validator.FieldLevel) bool {
		score := fl.Field().Int()
		return score >= 0 && score <= 100
	})

	// term_format: academic period like "2024-1"
	_ = v.validate.RegisterValidation("term_format", func(fl validator.FieldLevel) bool {
		return termPattern.MatchString(fl.Field().String())
	})

	// date_format: calendar day like "2024-03-15"
	_ = v.validate.RegisterValidation("date_format", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	})

	_ = v.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.IsValidRole(models.UserRole(fl.Field().String()))
	})

	_ = v.validate.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		return models.IsValidAttendanceStatus(models.AttendanceStatus(fl.Field().String()))
	})

	_ = v.validate.RegisterValidation("notification_type", func(fl validator.FieldLevel) bool {
		return models.IsValidNotificationType(models.NotificationType(fl.Field().String()))
	})

	_ = v.validate.RegisterValidation("resource_type", func(fl validator.FieldLevel) bool {
		t := models.ResourceType(fl.Field().String())
		return t == models.ResourceLink || t == models.ResourceFile
	})

	_ = v.validate.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
		switch models.ApplicationStatus(fl.Field().String()) {
		case models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected:
			return true
		}
		return false
	})

	_ = v.validate.RegisterValidation("enrollment_status", func(fl validator.FieldLevel) bool {
		switch models.EnrollmentStatus(fl.Field().String()) {
		case models.EnrollmentActive, models.EnrollmentCompleted, models.EnrollmentDropped:
			return true
		}
		return false
	})
}

// ToValidationErrors converts go-playground errors to the domain shape.
func ToValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var out ValidationErrors

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{
			Field:   "request",
			Message: err.Error(),
			Rule:    "struct",
		}}
	}

	for _, fe := range fieldErrors {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}

	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "grade_score":
		return "score must be between 0 and 100"
	case "term_format":
		return "term must look like 2024-1"
	case "date_format":
		return "date must look like 2024-03-15"
	case "user_role":
		return "role must be ADMIN, PROFESSOR or STUDENT"
	case "attendance_status":
		return "status must be PRESENT, LATE, ABSENT or EXCUSED"
	case "notification_type":
		return "type must be INFO, WARNING, SUCCESS or TASK"
	case "resource_type":
		return "type must be LINK or FILE"
	case "application_status":
		return "status must be PENDING, APPROVED or REJECTED"
	case "enrollment_status":
		return "status must be ACTIVE, COMPLETED or DROPPED"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed rule %s", fe.Tag())
	}
}
