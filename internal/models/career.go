package models

import "time"

// Career is a degree program scoped to one campus.
type Career struct {
	ID       string `json:"id" gorm:"primaryKey;size:64"`
	Name     string `json:"name" gorm:"not null;size:200"`
	CampusID string `json:"campus_id" gorm:"not null;size:64;index"`
	Faculty  string `json:"faculty" gorm:"size:200"`

	Campus *Campus `json:"campus,omitempty" gorm:"foreignKey:CampusID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Career) TableName() string {
	return "careers"
}
