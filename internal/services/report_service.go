package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// GradeSheetXLSX renders a course roster with component and final grades as
// a spreadsheet. Returns the file bytes and a suggested filename.
func (s *reportService) GradeSheetXLSX(ctx context.Context, session *models.Session, courseID string, term *string) ([]byte, string, error) {
	course, err := s.repo.Course().GetByID(ctx, nil, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, "", NewNotFoundError("course", courseID)
		}
		return nil, "", NewStorageError("export grade sheet", err)
	}

	if !session.IsAdmin() {
		if session.Role != models.RoleProfessor || course.ProfessorID == nil || *course.ProfessorID != session.UserID {
			return nil, "", NewPermissionError(session.UserID, courseID, "grade sheet", "export", "not the assigned professor")
		}
	}

	entries, err := s.repo.Enrollment().GetRosterByCourse(ctx, nil, courseID, term)
	if err != nil {
		return nil, "", NewStorageError("export grade sheet", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Grades"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student", "Carnet", "Term", "Status", "P1", "P2", "Exam", "Final"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range entries {
		values := []interface{}{
			entry.StudentName,
			derefString(entry.Carnet),
			entry.Term,
			string(entry.Status),
			derefInt(entry.GradeP1),
			derefInt(entry.GradeP2),
			derefInt(entry.GradeExam),
			derefInt(entry.FinalGrade),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render grade sheet: %w", err)
	}

	filename := fmt.Sprintf("grades_%s.xlsx", course.Code)
	s.logger.Info("Grade sheet exported", "course_id", courseID, "rows", len(entries), "exported_by", session.UserID)

	return buf.Bytes(), filename, nil
}

// KardexXLSX renders a student's academic history as a spreadsheet.
func (s *reportService) KardexXLSX(ctx context.Context, session *models.Session, studentID string) ([]byte, string, error) {
	if session.UserID != studentID && !session.IsAdmin() {
		return nil, "", NewPermissionError(session.UserID, studentID, "kardex", "export", "not the record owner")
	}

	student, err := s.repo.User().GetByID(ctx, nil, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, "", NewNotFoundError("student", studentID)
		}
		return nil, "", NewStorageError("export kardex", err)
	}

	entries, err := s.repo.Enrollment().GetHistoryByStudent(ctx, nil, studentID)
	if err != nil {
		return nil, "", NewStorageError("export kardex", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Kardex"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Course", "Code", "Credits", "Semester", "Term", "Status", "P1", "P2", "Exam", "Final"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range entries {
		values := []interface{}{
			entry.CourseName,
			entry.CourseCode,
			entry.Credits,
			entry.Semester,
			entry.Term,
			string(entry.Status),
			derefInt(entry.GradeP1),
			derefInt(entry.GradeP2),
			derefInt(entry.GradeExam),
			derefInt(entry.FinalGrade),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render kardex: %w", err)
	}

	filename := fmt.Sprintf("kardex_%s.xlsx", studentID)
	s.logger.Info("Kardex exported", "student_id", student.ID, "rows", len(entries), "exported_by", session.UserID)

	return buf.Bytes(), filename, nil
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) interface{} {
	if p == nil {
		return ""
	}
	return *p
}
