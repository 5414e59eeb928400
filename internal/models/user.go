package models

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleProfessor UserRole = "PROFESSOR"
	RoleStudent   UserRole = "STUDENT"
)

type User struct {
	ID       string   `json:"id" gorm:"primaryKey;size:64"`
	Name     string   `json:"name" gorm:"not null;size:100"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password string   `json:"-" gorm:"not null;size:255"`
	Role     UserRole `json:"role" gorm:"not null;size:20;index"`
	CampusID string   `json:"campus_id" gorm:"not null;size:64;index"`

	// Profile fields, editable by the owning user
	Phone     *string `json:"phone" gorm:"size:30"`
	Address   *string `json:"address" gorm:"size:300"`
	AvatarURL *string `json:"avatar_url" gorm:"type:text"`
	Notes     *string `json:"notes" gorm:"type:text"`

	// Student fields
	Carnet    *string `json:"carnet" gorm:"size:30;index"`
	MinedCode *string `json:"mined_code" gorm:"size:30"`
	CareerID  *string `json:"career_id" gorm:"size:64;index"`

	// Professor fields
	Profession *string `json:"profession" gorm:"size:100"`

	Campus *Campus `json:"campus,omitempty" gorm:"foreignKey:CampusID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsValidRole reports whether the role is one of the sealed set.
func IsValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleProfessor, RoleStudent:
		return true
	}
	return false
}
