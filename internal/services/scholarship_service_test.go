package services

import (
	"context"
	"errors"
	"testing"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

func newScholarshipTestRepo(scholarship *models.Scholarship, hasApplied bool) *fakeRepository {
	return &fakeRepository{
		scholarships: &fakeScholarshipRepo{
			getByID: func(id string) (*models.Scholarship, error) {
				return scholarship, nil
			},
			hasApplication: func(studentID, scholarshipID string) (bool, error) {
				return hasApplied, nil
			},
			createApplication: func(app *models.ScholarshipApplication) error {
				return nil
			},
		},
	}
}

func TestUpdate_TogglesActive(t *testing.T) {
	var gotID string
	var gotUpdate repositories.ScholarshipUpdate
	repo := &fakeRepository{
		scholarships: &fakeScholarshipRepo{
			update: func(id string, update repositories.ScholarshipUpdate) error {
				gotID, gotUpdate = id, update
				return nil
			},
			getByID: func(id string) (*models.Scholarship, error) {
				return &models.Scholarship{ID: id, Name: "Merit", Active: false, CampusID: "campus-1"}, nil
			},
		},
	}
	svc := NewScholarshipService(repo, newTestLogger(), newTestValidator())

	inactive := false
	scholarship, err := svc.Update(context.Background(), adminSession("campus-1"), "sch-1", UpdateScholarshipRequest{
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if gotID != "sch-1" {
		t.Errorf("updated id = %s, want sch-1", gotID)
	}
	if gotUpdate.Active == nil || *gotUpdate.Active {
		t.Error("active flag was not turned off")
	}
	if gotUpdate.Name != nil || gotUpdate.Amount != nil {
		t.Error("untouched fields leaked into the update")
	}
	if scholarship.Active {
		t.Error("returned scholarship still active")
	}
}

func TestUpdate_AdminOnly(t *testing.T) {
	svc := NewScholarshipService(&fakeRepository{}, newTestLogger(), newTestValidator())

	name := "Bigger Merit"
	_, err := svc.Update(context.Background(), professorSession("prof-1", "campus-1"), "sch-1", UpdateScholarshipRequest{
		Name: &name,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestApply_FilesPendingApplication(t *testing.T) {
	scholarship := &models.Scholarship{ID: "sch-1", Active: true, CampusID: "campus-1"}
	repo := newScholarshipTestRepo(scholarship, false)
	svc := NewScholarshipService(repo, newTestLogger(), newTestValidator())

	app, err := svc.Apply(context.Background(), studentSession("student-1", "campus-1"), ApplyScholarshipRequest{
		ScholarshipID: "sch-1",
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if app.Status != models.ApplicationPending {
		t.Errorf("status = %s, want PENDING", app.Status)
	}
	if app.StudentID != "student-1" {
		t.Errorf("student = %s, want student-1", app.StudentID)
	}
	if app.Date.IsZero() {
		t.Error("application date not set")
	}
}

func TestApply_StudentOnly(t *testing.T) {
	svc := NewScholarshipService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.Apply(context.Background(), professorSession("prof-1", "campus-1"), ApplyScholarshipRequest{
		ScholarshipID: "sch-1",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestApply_InactiveScholarship(t *testing.T) {
	scholarship := &models.Scholarship{ID: "sch-1", Active: false, CampusID: "campus-1"}
	repo := newScholarshipTestRepo(scholarship, false)
	svc := NewScholarshipService(repo, newTestLogger(), newTestValidator())

	_, err := svc.Apply(context.Background(), studentSession("student-1", "campus-1"), ApplyScholarshipRequest{
		ScholarshipID: "sch-1",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestApply_OtherCampus(t *testing.T) {
	scholarship := &models.Scholarship{ID: "sch-1", Active: true, CampusID: "campus-2"}
	repo := newScholarshipTestRepo(scholarship, false)
	svc := NewScholarshipService(repo, newTestLogger(), newTestValidator())

	_, err := svc.Apply(context.Background(), studentSession("student-1", "campus-1"), ApplyScholarshipRequest{
		ScholarshipID: "sch-1",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestApply_SecondApplicationConflicts(t *testing.T) {
	scholarship := &models.Scholarship{ID: "sch-1", Active: true, CampusID: "campus-1"}
	repo := newScholarshipTestRepo(scholarship, true)
	svc := NewScholarshipService(repo, newTestLogger(), newTestValidator())

	_, err := svc.Apply(context.Background(), studentSession("student-1", "campus-1"), ApplyScholarshipRequest{
		ScholarshipID: "sch-1",
	})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestSetApplicationStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current models.ApplicationStatus
		next    models.ApplicationStatus
		wantErr bool
	}{
		{"pending to approved", models.ApplicationPending, models.ApplicationApproved, false},
		{"pending to rejected", models.ApplicationPending, models.ApplicationRejected, false},
		{"approved to rejected", models.ApplicationApproved, models.ApplicationRejected, false},
		{"rejected to approved", models.ApplicationRejected, models.ApplicationApproved, false},
		{"approved back to pending", models.ApplicationApproved, models.ApplicationPending, true},
		{"rejected back to pending", models.ApplicationRejected, models.ApplicationPending, true},
		{"pending to pending", models.ApplicationPending, models.ApplicationPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{
				scholarships: &fakeScholarshipRepo{
					getApplicationByID: func(id string) (*models.ScholarshipApplication, error) {
						return &models.ScholarshipApplication{ID: id, Status: tt.current}, nil
					},
					updateApplicationStatus: func(id string, status models.ApplicationStatus) error {
						return nil
					},
				},
			}
			svc := NewScholarshipService(repo, newTestLogger(), newTestValidator())

			app, err := svc.SetApplicationStatus(context.Background(), adminSession("campus-1"), "app-1", UpdateApplicationStatusRequest{
				Status: tt.next,
			})
			if tt.wantErr {
				if !errors.Is(err, ErrValidationFailed) {
					t.Errorf("error = %v, want ErrValidationFailed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetApplicationStatus() error = %v", err)
			}
			if app.Status != tt.next {
				t.Errorf("status = %s, want %s", app.Status, tt.next)
			}
		})
	}
}

func TestSetApplicationStatus_AdminOnly(t *testing.T) {
	svc := NewScholarshipService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.SetApplicationStatus(context.Background(), professorSession("prof-1", "campus-1"), "app-1", UpdateApplicationStatusRequest{
		Status: models.ApplicationApproved,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestListApplications_StudentsSeeOnlyTheirOwn(t *testing.T) {
	var gotFilters repositories.ApplicationFilters
	repo := &fakeRepository{
		scholarships: &fakeScholarshipRepo{
			listApplications: func(filters repositories.ApplicationFilters) ([]*models.ScholarshipApplication, int64, error) {
				gotFilters = filters
				return nil, 0, nil
			},
		},
	}
	svc := NewScholarshipService(repo, newTestLogger(), newTestValidator())

	other := "student-other"
	_, err := svc.ListApplications(context.Background(), studentSession("student-1", "campus-1"), repositories.ApplicationFilters{
		StudentID: &other,
	})
	if err != nil {
		t.Fatalf("ListApplications() error = %v", err)
	}

	// The requested filter is overridden with the caller's own id
	if gotFilters.StudentID == nil || *gotFilters.StudentID != "student-1" {
		t.Errorf("StudentID filter = %v, want student-1", gotFilters.StudentID)
	}
}

func TestCreate_ScopedToOwnCampus(t *testing.T) {
	svc := NewScholarshipService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.Create(context.Background(), adminSession("campus-1"), CreateScholarshipRequest{
		Name:     "Merit award",
		Amount:   1000,
		CampusID: "campus-2",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}
