package models

import "time"

// Service represents one entry of the services section
type Service struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Icon        string    `json:"icon" db:"icon" gorm:"type:text"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}

// KnownServiceIcons is the set of icon names the frontend ships artwork for.
// Unrecognized icons are stored as-is and render with a default glyph.
var KnownServiceIcons = map[string]bool{
	"code":     true,
	"mobile":   true,
	"database": true,
	"cloud":    true,
	"security": true,
	"rocket":   true,
	"design":   true,
	"support":  true,
}

// HasKnownIcon reports whether the service's icon maps to shipped artwork.
func (s Service) HasKnownIcon() bool {
	return KnownServiceIcons[s.Icon]
}
