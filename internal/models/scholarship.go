package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

type Scholarship struct {
	ID           string `json:"id" gorm:"primaryKey;size:64"`
	Name         string `json:"name" gorm:"not null;size:200"`
	Description  string `json:"description" gorm:"type:text"`
	Requirements string `json:"requirements" gorm:"type:text"`
	Amount       int    `json:"amount" gorm:"not null;default:0"`
	Active       bool   `json:"active" gorm:"not null;default:true"`
	CampusID     string `json:"campus_id" gorm:"not null;size:64;index"`

	Campus *Campus `json:"campus,omitempty" gorm:"foreignKey:CampusID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}

type ScholarshipApplication struct {
	ID            string            `json:"id" gorm:"primaryKey;size:64"`
	StudentID     string            `json:"student_id" gorm:"not null;size:64;index"`
	ScholarshipID string            `json:"scholarship_id" gorm:"not null;size:64;index"`
	Status        ApplicationStatus `json:"status" gorm:"not null;size:20;default:PENDING"`
	Date          time.Time         `json:"date"`

	Student     *User        `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Scholarship *Scholarship `json:"scholarship,omitempty" gorm:"foreignKey:ScholarshipID;constraint:OnDelete:CASCADE"`
}

func (ScholarshipApplication) TableName() string {
	return "scholarship_applications"
}
