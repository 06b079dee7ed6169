package postgres

import (
	"gorm.io/gorm"

	userDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/user"
	"github.com/danakita/expense-tracker/internal/user"
)

// UserRepository implements user.Repository using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id string) (*userDatamodel.User, error) {
	var record userDatamodel.User
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *UserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	var record userDatamodel.User
	err := r.db.Where("email = ?", email).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *UserRepository) Update(record *userDatamodel.User) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"name":       record.Name,
			"email":      record.Email,
			"phone":      record.Phone,
			"updated_at": record.UpdatedAt,
		}).Error
}

func (r *UserRepository) SaveSettings(id, settings string) error {
	result := r.db.Model(&userDatamodel.User{}).
		Where("id = ?", id).
		Update("settings", settings)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}
