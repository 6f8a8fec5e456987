package models

import "time"

// Article represents a published article shown on the public site
type Article struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Thumbnail   *string   `json:"thumbnail" db:"thumbnail" gorm:"type:text"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Content     string    `json:"content" db:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}
