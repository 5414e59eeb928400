package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

func newEnrollTestRepo(studentCampus string, courses map[string]*models.Course, createErr map[string]error) *fakeRepository {
	return &fakeRepository{
		users: &fakeUserRepo{
			getByID: func(id string) (*models.User, error) {
				return &models.User{ID: id, Role: models.RoleStudent, CampusID: studentCampus}, nil
			},
		},
		courses: &fakeCourseRepo{
			getByID: func(id string) (*models.Course, error) {
				course, ok := courses[id]
				if !ok {
					return nil, gorm.ErrRecordNotFound
				}
				return course, nil
			},
		},
		enrollments: &fakeEnrollmentRepo{
			create: func(enrollment *models.Enrollment) error {
				return createErr[enrollment.CourseID]
			},
		},
	}
}

func TestBulkEnroll_MixedOutcome(t *testing.T) {
	courses := map[string]*models.Course{
		"course-ok":        {ID: "course-ok", CampusID: "campus-1"},
		"course-dup":       {ID: "course-dup", CampusID: "campus-1"},
		"course-elsewhere": {ID: "course-elsewhere", CampusID: "campus-2"},
	}
	createErr := map[string]error{
		"course-dup": gorm.ErrDuplicatedKey,
	}

	repo := newEnrollTestRepo("campus-1", courses, createErr)
	svc := NewEnrollmentService(repo, newTestLogger(), newTestValidator())

	result, err := svc.BulkEnroll(context.Background(), adminSession("campus-1"), BulkEnrollRequest{
		StudentID: "student-1",
		CourseIDs: []string{"course-ok", "course-dup", "course-missing", "course-elsewhere"},
		Term:      "2025-1",
	})
	if err != nil {
		t.Fatalf("BulkEnroll() error = %v", err)
	}

	if len(result.Enrolled) != 1 {
		t.Fatalf("enrolled = %d, want 1", len(result.Enrolled))
	}
	if result.Enrolled[0].CourseID != "course-ok" {
		t.Errorf("enrolled course = %s, want course-ok", result.Enrolled[0].CourseID)
	}
	if result.Enrolled[0].Status != models.EnrollmentActive {
		t.Errorf("status = %s, want ACTIVE", result.Enrolled[0].Status)
	}

	if len(result.Conflicts) != 3 {
		t.Fatalf("conflicts = %d, want 3", len(result.Conflicts))
	}
	reasons := make(map[string]string, len(result.Conflicts))
	for _, conflict := range result.Conflicts {
		reasons[conflict.CourseID] = conflict.Reason
	}
	if reasons["course-dup"] != "already enrolled for this term" {
		t.Errorf("course-dup reason = %q", reasons["course-dup"])
	}
	if reasons["course-missing"] != "course not found" {
		t.Errorf("course-missing reason = %q", reasons["course-missing"])
	}
	if reasons["course-elsewhere"] != "course belongs to another campus" {
		t.Errorf("course-elsewhere reason = %q", reasons["course-elsewhere"])
	}
}

func TestBulkEnroll_StudentSelfEnroll(t *testing.T) {
	courses := map[string]*models.Course{
		"course-1": {ID: "course-1", CampusID: "campus-1"},
	}
	repo := newEnrollTestRepo("campus-1", courses, nil)
	svc := NewEnrollmentService(repo, newTestLogger(), newTestValidator())

	// A student may enroll themselves
	result, err := svc.BulkEnroll(context.Background(), studentSession("student-1", "campus-1"), BulkEnrollRequest{
		StudentID: "student-1",
		CourseIDs: []string{"course-1"},
		Term:      "2025-1",
	})
	if err != nil {
		t.Fatalf("BulkEnroll() self error = %v", err)
	}
	if len(result.Enrolled) != 1 {
		t.Errorf("enrolled = %d, want 1", len(result.Enrolled))
	}

	// But nobody else
	_, err = svc.BulkEnroll(context.Background(), studentSession("student-2", "campus-1"), BulkEnrollRequest{
		StudentID: "student-1",
		CourseIDs: []string{"course-1"},
		Term:      "2025-1",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestBulkEnroll_ProfessorForbidden(t *testing.T) {
	svc := NewEnrollmentService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.BulkEnroll(context.Background(), professorSession("prof-1", "campus-1"), BulkEnrollRequest{
		StudentID: "student-1",
		CourseIDs: []string{"course-1"},
		Term:      "2025-1",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestBulkEnroll_RejectsDuplicateCourseIDs(t *testing.T) {
	svc := NewEnrollmentService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.BulkEnroll(context.Background(), adminSession("campus-1"), BulkEnrollRequest{
		StudentID: "student-1",
		CourseIDs: []string{"course-1", "course-1"},
		Term:      "2025-1",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestBulkEnroll_RejectsBadTerm(t *testing.T) {
	svc := NewEnrollmentService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.BulkEnroll(context.Background(), adminSession("campus-1"), BulkEnrollRequest{
		StudentID: "student-1",
		CourseIDs: []string{"course-1"},
		Term:      "spring",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestBulkEnroll_RejectsNonStudent(t *testing.T) {
	repo := &fakeRepository{
		users: &fakeUserRepo{
			getByID: func(id string) (*models.User, error) {
				return &models.User{ID: id, Role: models.RoleProfessor, CampusID: "campus-1"}, nil
			},
		},
	}
	svc := NewEnrollmentService(repo, newTestLogger(), newTestValidator())

	_, err := svc.BulkEnroll(context.Background(), adminSession("campus-1"), BulkEnrollRequest{
		StudentID: "prof-1",
		CourseIDs: []string{"course-1"},
		Term:      "2025-1",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestGetKardex_OwnerAndAdmin(t *testing.T) {
	repo := &fakeRepository{
		enrollments: &fakeEnrollmentRepo{
			getHistoryByStudent: func(studentID string) ([]*repositories.KardexEntry, error) {
				return []*repositories.KardexEntry{
					{EnrollmentID: "enr-1", CourseID: "course-1", Term: "2025-1", Status: models.EnrollmentCompleted, FinalGrade: ptrInt(88)},
				}, nil
			},
		},
	}
	svc := NewEnrollmentService(repo, newTestLogger(), newTestValidator())

	// Owner reads their own
	kardex, err := svc.GetKardex(context.Background(), studentSession("student-1", "campus-1"), "student-1")
	if err != nil {
		t.Fatalf("GetKardex() owner error = %v", err)
	}
	if len(kardex.Entries) != 1 {
		t.Errorf("entries = %d, want 1", len(kardex.Entries))
	}

	// Admin reads anyone's
	if _, err := svc.GetKardex(context.Background(), adminSession("campus-1"), "student-1"); err != nil {
		t.Errorf("GetKardex() admin error = %v", err)
	}

	// Another student may not
	if _, err := svc.GetKardex(context.Background(), studentSession("student-2", "campus-1"), "student-1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestGetRoster_AssignedProfessorOnly(t *testing.T) {
	assigned := "prof-1"
	repo := &fakeRepository{
		courses: &fakeCourseRepo{
			getByID: func(id string) (*models.Course, error) {
				return &models.Course{ID: id, CampusID: "campus-1", ProfessorID: &assigned}, nil
			},
		},
	}
	svc := NewEnrollmentService(repo, newTestLogger(), newTestValidator())

	// Wrong professor is rejected before the roster query runs
	_, err := svc.GetRoster(context.Background(), professorSession("prof-other", "campus-1"), "course-1", nil)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestGetAvailableCourses_ValidatesTerm(t *testing.T) {
	svc := NewEnrollmentService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.GetAvailableCourses(context.Background(), studentSession("student-1", "campus-1"), "not-a-term")
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestGetAvailableCourses_ScopesToSession(t *testing.T) {
	var gotCampus, gotStudent, gotTerm string
	repo := &fakeRepository{
		courses: &fakeCourseRepo{
			getAvailable: func(campusID, studentID, term string) ([]*models.Course, error) {
				gotCampus, gotStudent, gotTerm = campusID, studentID, term
				return []*models.Course{{ID: "course-1"}}, nil
			},
		},
	}
	svc := NewEnrollmentService(repo, newTestLogger(), newTestValidator())

	courses, err := svc.GetAvailableCourses(context.Background(), studentSession("student-1", "campus-9"), "2025-2")
	if err != nil {
		t.Fatalf("GetAvailableCourses() error = %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("courses = %d, want 1", len(courses))
	}
	if gotCampus != "campus-9" || gotStudent != "student-1" || gotTerm != "2025-2" {
		t.Errorf("query scoped to (%s, %s, %s)", gotCampus, gotStudent, gotTerm)
	}
}
