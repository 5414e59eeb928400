package models

import "time"

// Campus is the tenancy boundary: almost every other entity carries a campus id.
type Campus struct {
	ID       string  `json:"id" gorm:"primaryKey;size:64"`
	Name     string  `json:"name" gorm:"not null;size:200"`
	Location string  `json:"location" gorm:"size:200"`
	Code     string  `json:"code" gorm:"uniqueIndex;not null;size:20"`
	LogoURL  *string `json:"logo_url" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Campus) TableName() string {
	return "campuses"
}
