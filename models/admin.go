package models

// Admin represents a panel credential. Password holds the bcrypt hash and is
// never serialized.
type Admin struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
	Email    string `json:"email" db:"email" gorm:"type:text"`
}

func (Admin) TableName() string {
	return "admins"
}
