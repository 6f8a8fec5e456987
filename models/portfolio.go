package models

import "time"

// Portfolio represents one portfolio showcase item
type Portfolio struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Thumbnail   *string   `json:"thumbnail" db:"thumbnail" gorm:"type:text"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Link        string    `json:"link" db:"link" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}

func (Portfolio) TableName() string {
	return "portfolio"
}
