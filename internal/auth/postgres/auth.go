package postgres

import (
	"gorm.io/gorm"

	"github.com/danakita/expense-tracker/internal/auth"
	userDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/user"
)

// AuthUserRepository implements auth.UserRepository using GORM.
type AuthUserRepository struct {
	db *gorm.DB
}

func NewAuthUserRepository(db *gorm.DB) auth.UserRepository {
	return &AuthUserRepository{db: db}
}

func (r *AuthUserRepository) Create(user *userDatamodel.User) error {
	return r.db.Create(user).Error
}

func (r *AuthUserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	var user userDatamodel.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *AuthUserRepository) GetByID(id string) (*userDatamodel.User, error) {
	var user userDatamodel.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
