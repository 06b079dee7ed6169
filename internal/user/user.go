package user

import (
	"time"

	"github.com/danakita/expense-tracker/internal"
	userDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/user"
)

// User is the public profile view. Password material never appears here.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Settings are per-user client preferences, persisted as a JSON document.
type Settings struct {
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	BiometricsEnabled    bool   `json:"biometricsEnabled"`
	Currency             string `json:"currency"`
	ThemeMode            string `json:"themeMode"`
}

// DefaultSettings are returned for users who never saved settings.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		BiometricsEnabled:    false,
		Currency:             "USD",
		ThemeMode:            "Light",
	}
}

var (
	ErrNotFound   = internal.NewNotFoundError("User not found", internal.ErrCodeUserNotFound)
	ErrEmailTaken = internal.NewConflictError("Email already in use", internal.ErrCodeEmailTaken)
)

func FromDataModel(record *userDatamodel.User) *User {
	return &User{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		Phone:     record.Phone,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
