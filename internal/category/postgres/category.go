package postgres

import (
	"gorm.io/gorm"

	"github.com/danakita/expense-tracker/internal/category"
	categoryDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/category"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll() ([]*categoryDatamodel.Category, error) {
	var categories []*categoryDatamodel.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

// ReplaceAll deletes every stored category and inserts the given set in one
// transaction, so readers never observe a partially replaced list.
func (r *CategoryRepository) ReplaceAll(categories []*categoryDatamodel.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&categoryDatamodel.Category{}).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		return tx.Create(&categories).Error
	})
}
