package validator

import "github.com/UNI-F-2025/campus-service/internal/models"

// LoginRequest authenticates a user within one campus.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	CampusID string `json:"campus_id" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=100"`
}

// CampusCreateRequest creates a campus together with its admin account.
type CampusCreateRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Location string  `json:"location" validate:"omitempty,max=200"`
	Code     string  `json:"code" validate:"required,max=20"`
	LogoURL  *string `json:"logo_url"`

	AdminName     string `json:"admin_name" validate:"required,max=100"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=100"`
}

// CampusUpdateRequest carries only the fields to change.
type CampusUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Location *string `json:"location" validate:"omitempty,max=200"`
	Code     *string `json:"code" validate:"omitempty,max=20"`
	LogoURL  *string `json:"logo_url"`
}

type UserCreateRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8,max=100"`
	Role     models.UserRole `json:"role" validate:"required,user_role"`
	CampusID string          `json:"campus_id" validate:"required"`

	// Student fields
	Carnet    *string `json:"carnet" validate:"omitempty,max=30"`
	MinedCode *string `json:"mined_code" validate:"omitempty,max=30"`
	CareerID  *string `json:"career_id"`

	// Professor fields
	Profession *string `json:"profession" validate:"omitempty,max=100"`
}

// UserProfileUpdateRequest carries only the fields to change; nil fields
// are left untouched.
type UserProfileUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
	AvatarURL *string `json:"avatar_url"`
	Notes     *string `json:"notes"`

	Carnet     *string `json:"carnet" validate:"omitempty,max=30"`
	MinedCode  *string `json:"mined_code" validate:"omitempty,max=30"`
	CareerID   *string `json:"career_id"`
	Profession *string `json:"profession" validate:"omitempty,max=100"`
}

type CareerCreateRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	CampusID string `json:"campus_id" validate:"required"`
	Faculty  string `json:"faculty" validate:"omitempty,max=200"`
}

type CareerUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=200"`
	Faculty *string `json:"faculty" validate:"omitempty,max=200"`
}

type CourseCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Code        string  `json:"code" validate:"required,max=30"`
	CampusID    string  `json:"campus_id" validate:"required"`
	Credits     int     `json:"credits" validate:"omitempty,min=1,max=12"`
	Semester    int     `json:"semester" validate:"required,min=1,max=12"`
	CareerID    *string `json:"career_id"`
	ProfessorID *string `json:"professor_id"`
	Schedule    string  `json:"schedule" validate:"omitempty,max=200"`
	Room        string  `json:"room" validate:"omitempty,max=50"`
}

type CourseUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Code        *string `json:"code" validate:"omitempty,max=30"`
	Credits     *int    `json:"credits" validate:"omitempty,min=1,max=12"`
	Semester    *int    `json:"semester" validate:"omitempty,min=1,max=12"`
	CareerID    *string `json:"career_id"`
	ProfessorID *string `json:"professor_id"`
	Schedule    *string `json:"schedule" validate:"omitempty,max=200"`
	Room        *string `json:"room" validate:"omitempty,max=50"`
}

type ResourceCreateRequest struct {
	CourseID string              `json:"course_id" validate:"required"`
	Title    string              `json:"title" validate:"required,max=200"`
	Type     models.ResourceType `json:"type" validate:"required,resource_type"`
	URL      string              `json:"url" validate:"required"`
}

// BulkEnrollRequest enrolls one student into several courses for a term.
type BulkEnrollRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	CourseIDs []string `json:"course_ids" validate:"required,min=1,dive,required"`
	Term      string   `json:"term" validate:"required,term_format"`
}

// GradeSubmitRequest carries the component scores being recorded. Absent
// components keep their stored value.
type GradeSubmitRequest struct {
	P1   *int `json:"p1" validate:"omitempty,grade_score"`
	P2   *int `json:"p2" validate:"omitempty,grade_score"`
	Exam *int `json:"exam" validate:"omitempty,grade_score"`
}

type GradeOverrideRequest struct {
	Grade int `json:"grade" validate:"grade_score"`
}

type EnrollmentStatusRequest struct {
	Status models.EnrollmentStatus `json:"status" validate:"required,enrollment_status"`
}

type AttendanceEntryRequest struct {
	StudentID string                  `json:"student_id" validate:"required"`
	Status    models.AttendanceStatus `json:"status" validate:"required,attendance_status"`
}

// AttendanceSubmitRequest replaces the whole sheet for (course, date).
// An empty record list clears the day.
type AttendanceSubmitRequest struct {
	CourseID string                   `json:"course_id" validate:"required"`
	Date     string                   `json:"date" validate:"required,date_format"`
	Records  []AttendanceEntryRequest `json:"records" validate:"dive"`
}

type ScholarshipCreateRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Amount       int    `json:"amount" validate:"min=0"`
	Active       *bool  `json:"active"`
	CampusID     string `json:"campus_id" validate:"required"`
}

type ScholarshipUpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=200"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Amount       *int    `json:"amount" validate:"omitempty,min=0"`
	Active       *bool   `json:"active"`
}

type ScholarshipApplyRequest struct {
	ScholarshipID string `json:"scholarship_id" validate:"required"`
}

type ApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,application_status"`
}

type NotificationCreateRequest struct {
	RecipientID string                  `json:"recipient_id" validate:"required"`
	Title       string                  `json:"title" validate:"required,max=200"`
	Message     string                  `json:"message" validate:"required"`
	Type        models.NotificationType `json:"type" validate:"omitempty,notification_type"`
}
