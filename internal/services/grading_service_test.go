package services

import (
	"context"
	"errors"
	"testing"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

func TestComputeFinal(t *testing.T) {
	tests := []struct {
		name string
		p1   *int
		p2   *int
		exam *int
		want int
	}{
		{"all components", ptrInt(80), ptrInt(90), ptrInt(70), 79},
		{"only p1 set", ptrInt(100), nil, nil, 30},
		{"only exam set", nil, nil, ptrInt(100), 40},
		{"nothing set", nil, nil, nil, 0},
		{"perfect score", ptrInt(100), ptrInt(100), ptrInt(100), 100},
		{"rounds up", ptrInt(85), ptrInt(84), ptrInt(83), 84},
		{"rounds half up", ptrInt(85), ptrInt(80), ptrInt(75), 80},
		{"all zeros", ptrInt(0), ptrInt(0), ptrInt(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeFinal(tt.p1, tt.p2, tt.exam); got != tt.want {
				t.Errorf("computeFinal() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSubmitComponentGrades_MergesWithStored(t *testing.T) {
	professorID := "prof-1"
	var captured repositories.GradeUpdate

	repo := &fakeRepository{
		enrollments: &fakeEnrollmentRepo{
			getByID: func(id string) (*models.Enrollment, error) {
				return &models.Enrollment{
					ID:        id,
					StudentID: "student-1",
					CourseID:  "course-1",
					Term:      "2025-1",
					Status:    models.EnrollmentActive,
					GradeP1:   ptrInt(80),
				}, nil
			},
			updateGrades: func(id string, update repositories.GradeUpdate) error {
				captured = update
				return nil
			},
		},
		courses: &fakeCourseRepo{
			getByID: func(id string) (*models.Course, error) {
				return &models.Course{ID: id, CampusID: "campus-1", ProfessorID: &professorID}, nil
			},
		},
	}

	svc := NewGradingService(repo, newTestLogger(), newTestValidator())
	session := professorSession(professorID, "campus-1")

	enrollment, err := svc.SubmitComponentGrades(context.Background(), session, "enr-1", SubmitGradesRequest{
		P2:   ptrInt(90),
		Exam: ptrInt(70),
	})
	if err != nil {
		t.Fatalf("SubmitComponentGrades() error = %v", err)
	}

	// Stored P1 survives, submitted components land, final is derived
	if captured.P1 == nil || *captured.P1 != 80 {
		t.Errorf("P1 = %v, want 80", captured.P1)
	}
	if captured.P2 == nil || *captured.P2 != 90 {
		t.Errorf("P2 = %v, want 90", captured.P2)
	}
	if captured.Exam == nil || *captured.Exam != 70 {
		t.Errorf("Exam = %v, want 70", captured.Exam)
	}
	if captured.Final == nil || *captured.Final != 79 {
		t.Errorf("Final = %v, want 79", captured.Final)
	}

	if enrollment.FinalGrade == nil || *enrollment.FinalGrade != 79 {
		t.Errorf("returned FinalGrade = %v, want 79", enrollment.FinalGrade)
	}
}

func TestSubmitComponentGrades_RequiresComponent(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewGradingService(repo, newTestLogger(), newTestValidator())

	_, err := svc.SubmitComponentGrades(context.Background(), adminSession("campus-1"), "enr-1", SubmitGradesRequest{})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestSubmitComponentGrades_NotAssignedProfessor(t *testing.T) {
	assigned := "prof-assigned"

	repo := &fakeRepository{
		enrollments: &fakeEnrollmentRepo{
			getByID: func(id string) (*models.Enrollment, error) {
				return &models.Enrollment{ID: id, CourseID: "course-1"}, nil
			},
		},
		courses: &fakeCourseRepo{
			getByID: func(id string) (*models.Course, error) {
				return &models.Course{ID: id, ProfessorID: &assigned}, nil
			},
		},
	}

	svc := NewGradingService(repo, newTestLogger(), newTestValidator())
	session := professorSession("prof-other", "campus-1")

	_, err := svc.SubmitComponentGrades(context.Background(), session, "enr-1", SubmitGradesRequest{P1: ptrInt(50)})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestSubmitComponentGrades_StudentForbidden(t *testing.T) {
	repo := &fakeRepository{
		enrollments: &fakeEnrollmentRepo{
			getByID: func(id string) (*models.Enrollment, error) {
				return &models.Enrollment{ID: id, CourseID: "course-1"}, nil
			},
		},
	}

	svc := NewGradingService(repo, newTestLogger(), newTestValidator())

	_, err := svc.SubmitComponentGrades(context.Background(), studentSession("student-1", "campus-1"), "enr-1", SubmitGradesRequest{P1: ptrInt(50)})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestOverrideFinalGrade(t *testing.T) {
	var writtenGrade int

	repo := &fakeRepository{
		enrollments: &fakeEnrollmentRepo{
			getByID: func(id string) (*models.Enrollment, error) {
				return &models.Enrollment{ID: id, GradeP1: ptrInt(10), FinalGrade: ptrInt(10)}, nil
			},
			updateFinalGrade: func(id string, grade int) error {
				writtenGrade = grade
				return nil
			},
		},
	}

	svc := NewGradingService(repo, newTestLogger(), newTestValidator())

	enrollment, err := svc.OverrideFinalGrade(context.Background(), adminSession("campus-1"), "enr-1", OverrideGradeRequest{Grade: 95})
	if err != nil {
		t.Fatalf("OverrideFinalGrade() error = %v", err)
	}
	if writtenGrade != 95 {
		t.Errorf("written grade = %d, want 95", writtenGrade)
	}
	if enrollment.FinalGrade == nil || *enrollment.FinalGrade != 95 {
		t.Errorf("returned FinalGrade = %v, want 95", enrollment.FinalGrade)
	}
	// Components stay untouched
	if enrollment.GradeP1 == nil || *enrollment.GradeP1 != 10 {
		t.Errorf("GradeP1 = %v, want 10", enrollment.GradeP1)
	}
}

func TestOverrideFinalGrade_AdminOnly(t *testing.T) {
	svc := NewGradingService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.OverrideFinalGrade(context.Background(), professorSession("prof-1", "campus-1"), "enr-1", OverrideGradeRequest{Grade: 95})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func BenchmarkComputeFinal(b *testing.B) {
	p1, p2, exam := ptrInt(85), ptrInt(90), ptrInt(78)
	for i := 0; i < b.N; i++ {
		computeFinal(p1, p2, exam)
	}
}
