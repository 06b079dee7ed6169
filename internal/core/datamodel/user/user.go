package user

import "time"

// User is the persistence model for an account. Settings is a JSON document;
// an empty string means the user never saved settings and defaults apply.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Phone        string    `json:"phone" gorm:"column:phone"`
	Settings     string    `json:"-" gorm:"column:settings;default:''"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
