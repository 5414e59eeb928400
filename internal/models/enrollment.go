package models

import "time"

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
)

type GradeComponent string

const (
	ComponentP1   GradeComponent = "P1"
	ComponentP2   GradeComponent = "P2"
	ComponentExam GradeComponent = "EXAM"
)

// Grade component weights used to derive the final grade.
const (
	WeightP1   = 0.30
	WeightP2   = 0.30
	WeightExam = 0.40
)

// Enrollment ties a student to a course offering for one term.
// A student can hold at most one enrollment per (course, term).
type Enrollment struct {
	ID        string           `json:"id" gorm:"primaryKey;size:64"`
	StudentID string           `json:"student_id" gorm:"not null;size:64;uniqueIndex:idx_enrollment_student_course_term;index"`
	CourseID  string           `json:"course_id" gorm:"not null;size:64;uniqueIndex:idx_enrollment_student_course_term;index"`
	Term      string           `json:"term" gorm:"not null;size:20;uniqueIndex:idx_enrollment_student_course_term"`
	Status    EnrollmentStatus `json:"status" gorm:"not null;size:20;default:ACTIVE"`

	// Component grades, 0..100, unset until submitted
	GradeP1   *int `json:"grade_p1"`
	GradeP2   *int `json:"grade_p2"`
	GradeExam *int `json:"grade_exam"`

	// Derived weighted grade; an admin override may leave it out of
	// step with the components
	FinalGrade *int `json:"final_grade"`

	Student *User   `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course  *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
