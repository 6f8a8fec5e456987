package models

import "time"

// TeamMember represents one person on the team page. LinkContact is stored as
// entered; it may be a mailto:, tel: or https: URL.
type TeamMember struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProfileImage *string   `json:"profile_image" db:"profile_image" gorm:"type:text"`
	Firstname    string    `json:"firstname" db:"firstname" gorm:"type:text;not null"`
	Lastname     string    `json:"lastname" db:"lastname" gorm:"type:text;not null"`
	Position     string    `json:"position" db:"position" gorm:"type:text;not null"`
	LinkContact  string    `json:"link_contact" db:"link_contact" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team"
}
