package repositories

import (
	"github.com/UNI-F-2025/campus-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type UserFilters struct {
	Role      *models.UserRole `json:"role"`
	CampusID  *string          `json:"campus_id"`
	CareerID  *string          `json:"career_id"`
	Search    string           `json:"search"` // matches name or email
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
	SortBy    string           `json:"sort_by"`    // "created_at", "name", "email"
	SortOrder string           `json:"sort_order"` // "asc", "desc"
}

type CourseFilters struct {
	CampusID    *string `json:"campus_id"`
	CareerID    *string `json:"career_id"`
	ProfessorID *string `json:"professor_id"`
	Semester    *int    `json:"semester"`
	Search      string  `json:"search"`
	Limit       int     `json:"limit"`
	Offset      int     `json:"offset"`
	SortBy      string  `json:"sort_by"`
	SortOrder   string  `json:"sort_order"`
}

type EnrollmentFilters struct {
	StudentID *string                  `json:"student_id"`
	CourseID  *string                  `json:"course_id"`
	Term      *string                  `json:"term"`
	Status    *models.EnrollmentStatus `json:"status"`
	Limit     int                      `json:"limit"`
	Offset    int                      `json:"offset"`
}

type ApplicationFilters struct {
	StudentID     *string                   `json:"student_id"`
	ScholarshipID *string                   `json:"scholarship_id"`
	CampusID      *string                   `json:"campus_id"`
	Status        *models.ApplicationStatus `json:"status"`
	Limit         int                       `json:"limit"`
	Offset        int                       `json:"offset"`
}

type NotificationFilters struct {
	RecipientID *string `json:"recipient_id"`
	SenderID    *string `json:"sender_id"`
	UnreadOnly  bool    `json:"unread_only"`
	Limit       int     `json:"limit"`
	Offset      int     `json:"offset"`
}

// ===== TYPED PARTIAL UPDATES =====
//
// Partial updates are expressed as structs with optional fields; the
// persistence layer turns the non-nil fields into one parameterized
// UPDATE, so only provided fields are touched.

type CampusUpdate struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Code     *string `json:"code"`
	LogoURL  *string `json:"logo_url"`
}

type UserProfileUpdate struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	AvatarURL  *string `json:"avatar_url"`
	Notes      *string `json:"notes"`
	Carnet     *string `json:"carnet"`
	MinedCode  *string `json:"mined_code"`
	CareerID   *string `json:"career_id"`
	Profession *string `json:"profession"`
}

type CourseUpdate struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Credits     *int    `json:"credits"`
	Semester    *int    `json:"semester"`
	CareerID    *string `json:"career_id"`
	ProfessorID *string `json:"professor_id"`
	Schedule    *string `json:"schedule"`
	Room        *string `json:"room"`
}

type ScholarshipUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Amount       *int    `json:"amount"`
	Active       *bool   `json:"active"`
}

// ===== SHARED HELPER STRUCTS =====

// GradeUpdate carries component scores plus the derived final so that a
// grading write lands in a single UPDATE.
type GradeUpdate struct {
	P1    *int `json:"p1"`
	P2    *int `json:"p2"`
	Exam  *int `json:"exam"`
	Final *int `json:"final"`
}

// KardexEntry is one line of a student's academic history.
type KardexEntry struct {
	EnrollmentID string                  `json:"enrollment_id"`
	CourseID     string                  `json:"course_id"`
	CourseName   string                  `json:"course_name"`
	CourseCode   string                  `json:"course_code"`
	Credits      int                     `json:"credits"`
	Semester     int                     `json:"semester"`
	Term         string                  `json:"term"`
	Status       models.EnrollmentStatus `json:"status"`
	GradeP1      *int                    `json:"grade_p1"`
	GradeP2      *int                    `json:"grade_p2"`
	GradeExam    *int                    `json:"grade_exam"`
	FinalGrade   *int                    `json:"final_grade"`
}

// RosterEntry is one student row of a course roster.
type RosterEntry struct {
	EnrollmentID string                  `json:"enrollment_id"`
	StudentID    string                  `json:"student_id"`
	StudentName  string                  `json:"student_name"`
	Carnet       *string                 `json:"carnet"`
	Term         string                  `json:"term"`
	Status       models.EnrollmentStatus `json:"status"`
	GradeP1      *int                    `json:"grade_p1"`
	GradeP2      *int                    `json:"grade_p2"`
	GradeExam    *int                    `json:"grade_exam"`
	FinalGrade   *int                    `json:"final_grade"`
}

// ===== SHARED STATISTICS STRUCTS =====

type CampusStats struct {
	TotalStudents   int64 `json:"total_students"`
	TotalProfessors int64 `json:"total_professors"`
	ActiveCareers   int64 `json:"active_careers"`
	TotalCourses    int64 `json:"total_courses"`
}

type ProfessorStats struct {
	Classes  int64 `json:"classes"`
	Students int64 `json:"students"`
}

type StudentStats struct {
	AverageGrade  float64 `json:"average_grade"`
	ActiveCourses int64   `json:"active_courses"`
	TotalCredits  int64   `json:"total_credits"`
}

// ScholarshipAnalysis holds the campus-level eligibility figures.
type ScholarshipAnalysis struct {
	TotalBudget            int64 `json:"total_budget"`
	ActiveScholarshipCount int64 `json:"active_scholarship_count"`
	EligibleStudentsCount  int64 `json:"eligible_students_count"`
}
