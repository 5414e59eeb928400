package validator

import (
	"testing"

	"github.com/UNI-F-2025/campus-service/internal/models"
)

func TestVar_CustomTags(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		value   string
		tag     string
		wantErr bool
	}{
		{"valid term", "2025-1", "term_format", false},
		{"valid term two digit", "2025-12", "term_format", false},
		{"term without year", "1-2025", "term_format", true},
		{"term free text", "spring", "term_format", true},
		{"valid date", "2025-08-20", "date_format", false},
		{"date slashes", "20/08/2025", "date_format", true},
		{"date missing day", "2025-08", "date_format", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if (err != nil) != tt.wantErr {
				t.Errorf("Var(%q, %q) error = %v, wantErr %v", tt.value, tt.tag, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_GradeScoreBounds(t *testing.T) {
	v := New()

	over := 101
	errs := v.Validate(GradeSubmitRequest{P1: &over})
	if !errs.HasErrors() {
		t.Error("score above 100 passed validation")
	}

	negative := -1
	errs = v.Validate(GradeSubmitRequest{P2: &negative})
	if !errs.HasErrors() {
		t.Error("negative score passed validation")
	}

	edge := 100
	zero := 0
	if errs := v.Validate(GradeSubmitRequest{P1: &edge, P2: &zero}); errs.HasErrors() {
		t.Errorf("boundary scores rejected: %v", errs)
	}
}

func TestValidateRoleFields(t *testing.T) {
	bv := NewBusinessValidator(New())

	carnet := "C-2025-001"
	profession := "Mathematics"

	// Student fields on a student pass
	errs := bv.ValidateRoleFields(&UserCreateRequest{
		Name: "n", Email: "a@b.c", Password: "longenough", Role: models.RoleStudent, CampusID: "c1",
		Carnet: &carnet,
	})
	if errs.HasErrors() {
		t.Errorf("student with carnet rejected: %v", errs)
	}

	// Student fields on a professor fail
	errs = bv.ValidateRoleFields(&UserCreateRequest{
		Name: "n", Email: "a@b.c", Password: "longenough", Role: models.RoleProfessor, CampusID: "c1",
		Carnet: &carnet,
	})
	if !errs.HasErrors() {
		t.Error("professor with carnet passed")
	}

	// Profession on a student fails
	errs = bv.ValidateRoleFields(&UserCreateRequest{
		Name: "n", Email: "a@b.c", Password: "longenough", Role: models.RoleStudent, CampusID: "c1",
		Profession: &profession,
	})
	if !errs.HasErrors() {
		t.Error("student with profession passed")
	}
}

func TestValidateBulkEnroll_DuplicateCourses(t *testing.T) {
	bv := NewBusinessValidator(New())

	errs := bv.ValidateBulkEnroll(&BulkEnrollRequest{
		StudentID: "s1",
		CourseIDs: []string{"c1", "c2", "c1"},
		Term:      "2025-1",
	})
	if !errs.HasErrors() {
		t.Error("duplicate course ids passed")
	}

	errs = bv.ValidateBulkEnroll(&BulkEnrollRequest{
		StudentID: "s1",
		CourseIDs: []string{"c1", "c2"},
		Term:      "2025-1",
	})
	if errs.HasErrors() {
		t.Errorf("distinct course ids rejected: %v", errs)
	}
}

func TestValidateApplicationTransition(t *testing.T) {
	bv := NewBusinessValidator(New())

	if errs := bv.ValidateApplicationTransition(models.ApplicationPending, models.ApplicationApproved); errs.HasErrors() {
		t.Errorf("pending to approved rejected: %v", errs)
	}
	if errs := bv.ValidateApplicationTransition(models.ApplicationApproved, models.ApplicationPending); !errs.HasErrors() {
		t.Error("approved back to pending passed")
	}
}
