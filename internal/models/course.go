package models

import "time"

type ResourceType string

const (
	ResourceLink ResourceType = "LINK"
	ResourceFile ResourceType = "FILE"
)

// Course represents one offering of a subject on a campus.
type Course struct {
	ID          string  `json:"id" gorm:"primaryKey;size:64"`
	Name        string  `json:"name" gorm:"not null;size:200"`
	Code        string  `json:"code" gorm:"not null;size:30;index"`
	CampusID    string  `json:"campus_id" gorm:"not null;size:64;index"`
	Credits     int     `json:"credits" gorm:"not null;default:3"`
	Semester    int     `json:"semester" gorm:"not null;default:1"`
	CareerID    *string `json:"career_id" gorm:"size:64;index"`
	ProfessorID *string `json:"professor_id" gorm:"size:64;index"`
	Schedule    string  `json:"schedule" gorm:"size:200"`
	Room        string  `json:"room" gorm:"size:50"`

	Campus    *Campus `json:"campus,omitempty" gorm:"foreignKey:CampusID;constraint:OnDelete:CASCADE"`
	Career    *Career `json:"career,omitempty" gorm:"foreignKey:CareerID;constraint:OnDelete:SET NULL"`
	Professor *User   `json:"professor,omitempty" gorm:"foreignKey:ProfessorID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseResource is an opaque link or embedded file attached to a course.
type CourseResource struct {
	ID       string       `json:"id" gorm:"primaryKey;size:64"`
	CourseID string       `json:"course_id" gorm:"not null;size:64;index"`
	Title    string       `json:"title" gorm:"not null;size:200"`
	Type     ResourceType `json:"type" gorm:"not null;size:10"`
	URL      string       `json:"url" gorm:"type:text"`
	Date     time.Time    `json:"date"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (CourseResource) TableName() string {
	return "course_resources"
}
