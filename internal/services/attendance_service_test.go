package services

import (
	"context"
	"errors"
	"testing"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/validator"
)

func newAttendanceTestRepo(professorID string, deletes *[]string, inserted *[]*models.AttendanceRecord) *fakeRepository {
	return &fakeRepository{
		courses: &fakeCourseRepo{
			getByID: func(id string) (*models.Course, error) {
				return &models.Course{ID: id, CampusID: "campus-1", ProfessorID: &professorID}, nil
			},
		},
		attendance: &fakeAttendanceRepo{
			deleteByCourseDate: func(courseID, date string) error {
				*deletes = append(*deletes, courseID+"/"+date)
				return nil
			},
			createBatch: func(records []*models.AttendanceRecord) error {
				*inserted = append(*inserted, records...)
				return nil
			},
		},
	}
}

func TestRecordSheet_ReplacesDay(t *testing.T) {
	var deletes []string
	var inserted []*models.AttendanceRecord

	repo := newAttendanceTestRepo("prof-1", &deletes, &inserted)
	svc := NewAttendanceService(repo, newTestLogger(), newTestValidator())

	sheet, err := svc.RecordSheet(context.Background(), professorSession("prof-1", "campus-1"), SubmitAttendanceRequest{
		CourseID: "course-1",
		Date:     "2025-08-20",
		Records: []validator.AttendanceEntryRequest{
			{StudentID: "student-1", Status: models.AttendancePresent},
			{StudentID: "student-2", Status: models.AttendanceLate},
		},
	})
	if err != nil {
		t.Fatalf("RecordSheet() error = %v", err)
	}

	// The day is cleared before the new rows land
	if len(deletes) != 1 || deletes[0] != "course-1/2025-08-20" {
		t.Errorf("deletes = %v, want one for course-1/2025-08-20", deletes)
	}
	if len(inserted) != 2 {
		t.Fatalf("inserted = %d, want 2", len(inserted))
	}
	if inserted[0].CourseID != "course-1" || inserted[0].Date != "2025-08-20" {
		t.Errorf("record carries (%s, %s)", inserted[0].CourseID, inserted[0].Date)
	}
	if len(sheet.Records) != 2 {
		t.Errorf("response records = %d, want 2", len(sheet.Records))
	}
}

func TestRecordSheet_EmptyListClearsDay(t *testing.T) {
	var deletes []string
	var inserted []*models.AttendanceRecord

	repo := newAttendanceTestRepo("prof-1", &deletes, &inserted)
	svc := NewAttendanceService(repo, newTestLogger(), newTestValidator())

	sheet, err := svc.RecordSheet(context.Background(), professorSession("prof-1", "campus-1"), SubmitAttendanceRequest{
		CourseID: "course-1",
		Date:     "2025-08-20",
		Records:  nil,
	})
	if err != nil {
		t.Fatalf("RecordSheet() error = %v", err)
	}

	if len(deletes) != 1 {
		t.Errorf("deletes = %d, want 1", len(deletes))
	}
	if len(inserted) != 0 {
		t.Errorf("inserted = %d, want 0", len(inserted))
	}
	if len(sheet.Records) != 0 {
		t.Errorf("response records = %d, want 0", len(sheet.Records))
	}
}

func TestRecordSheet_RejectsDuplicateStudent(t *testing.T) {
	svc := NewAttendanceService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.RecordSheet(context.Background(), adminSession("campus-1"), SubmitAttendanceRequest{
		CourseID: "course-1",
		Date:     "2025-08-20",
		Records: []validator.AttendanceEntryRequest{
			{StudentID: "student-1", Status: models.AttendancePresent},
			{StudentID: "student-1", Status: models.AttendanceAbsent},
		},
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestRecordSheet_RejectsFutureDate(t *testing.T) {
	svc := NewAttendanceService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.RecordSheet(context.Background(), adminSession("campus-1"), SubmitAttendanceRequest{
		CourseID: "course-1",
		Date:     "2099-01-01",
		Records:  nil,
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestRecordSheet_NotAssignedProfessor(t *testing.T) {
	var deletes []string
	var inserted []*models.AttendanceRecord

	repo := newAttendanceTestRepo("prof-assigned", &deletes, &inserted)
	svc := NewAttendanceService(repo, newTestLogger(), newTestValidator())

	_, err := svc.RecordSheet(context.Background(), professorSession("prof-other", "campus-1"), SubmitAttendanceRequest{
		CourseID: "course-1",
		Date:     "2025-08-20",
		Records:  nil,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
	if len(deletes) != 0 {
		t.Error("sheet was cleared for a rejected caller")
	}
}

func TestGetSheet_ValidatesDate(t *testing.T) {
	svc := NewAttendanceService(&fakeRepository{}, newTestLogger(), newTestValidator())

	_, err := svc.GetSheet(context.Background(), adminSession("campus-1"), "course-1", "20/08/2025")
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestGetStudentAttendance_Visibility(t *testing.T) {
	repo := &fakeRepository{
		attendance: &fakeAttendanceRepo{
			getByStudent: func(studentID string, courseID *string) ([]*models.AttendanceRecord, error) {
				return []*models.AttendanceRecord{
					{ID: "att-1", StudentID: studentID, Status: models.AttendancePresent},
				}, nil
			},
		},
	}
	svc := NewAttendanceService(repo, newTestLogger(), newTestValidator())

	// Student reads their own
	records, err := svc.GetStudentAttendance(context.Background(), studentSession("student-1", "campus-1"), "student-1", nil)
	if err != nil {
		t.Fatalf("GetStudentAttendance() owner error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("records = %d, want 1", len(records))
	}

	// Staff read anyone's
	if _, err := svc.GetStudentAttendance(context.Background(), professorSession("prof-1", "campus-1"), "student-1", nil); err != nil {
		t.Errorf("GetStudentAttendance() staff error = %v", err)
	}

	// Another student may not
	if _, err := svc.GetStudentAttendance(context.Background(), studentSession("student-2", "campus-1"), "student-1", nil); !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}
