package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/UNI-F-2025/campus-service/internal/repositories"
)

// handleDBError is a package-level helper for wrapping database errors.
// gorm.ErrRecordNotFound and gorm.ErrDuplicatedKey stay in the chain so
// callers can classify with errors.Is.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}

// applyPaginationAndSort applies pagination and sorting with SQL injection
// protection. Only keys present in sortKeyToColumn are accepted; anything
// else falls back to created_at.
func applyPaginationAndSort(query *gorm.DB, sortKeyToColumn map[string]string, sortBy, sortOrder string, limit, offset int) *gorm.DB {
	column, ok := sortKeyToColumn[sortBy]
	if !ok {
		column = sortKeyToColumn["created_at"]
		if column == "" {
			column = "created_at"
		}
	}

	order := "DESC"
	if sortOrder == "asc" || sortOrder == "ASC" {
		order = "ASC"
	}

	// Only the mapped SQL column name and a constant order reach the query
	query = query.Order(fmt.Sprintf("%s %s", column, order))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}

func applyUserFilters(query *gorm.DB, filters repositories.UserFilters) *gorm.DB {
	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}
	if filters.CampusID != nil {
		query = query.Where("campus_id = ?", *filters.CampusID)
	}
	if filters.CareerID != nil {
		query = query.Where("career_id = ?", *filters.CareerID)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	return query
}

func applyCourseFilters(query *gorm.DB, filters repositories.CourseFilters) *gorm.DB {
	if filters.CampusID != nil {
		query = query.Where("campus_id = ?", *filters.CampusID)
	}
	if filters.CareerID != nil {
		query = query.Where("career_id = ?", *filters.CareerID)
	}
	if filters.ProfessorID != nil {
		query = query.Where("professor_id = ?", *filters.ProfessorID)
	}
	if filters.Semester != nil {
		query = query.Where("semester = ?", *filters.Semester)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	return query
}

func applyEnrollmentFilters(query *gorm.DB, filters repositories.EnrollmentFilters) *gorm.DB {
	if filters.StudentID != nil {
		query = query.Where("student_id = ?", *filters.StudentID)
	}
	if filters.CourseID != nil {
		query = query.Where("course_id = ?", *filters.CourseID)
	}
	if filters.Term != nil {
		query = query.Where("term = ?", *filters.Term)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	return query
}
