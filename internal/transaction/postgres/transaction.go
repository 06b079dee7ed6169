package postgres

import (
	"time"

	"gorm.io/gorm"

	txDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/transaction"
	"github.com/danakita/expense-tracker/internal/transaction"
)

// TransactionRepository implements transaction.Repository using GORM.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) transaction.Repository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(record *txDatamodel.Transaction) error {
	return r.db.Create(record).Error
}

// GetByIDAndOwner looks up a record by id and owner in one predicate so that a
// record belonging to someone else reads as not found.
func (r *TransactionRepository) GetByIDAndOwner(id, ownerID string) (*txDatamodel.Transaction, error) {
	var record txDatamodel.Transaction
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, transaction.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListByOwner returns the owner's records newest financial event first, most
// recently recorded as secondary key. Nil bounds are unbounded.
func (r *TransactionRepository) ListByOwner(ownerID string, start, end *time.Time) ([]*txDatamodel.Transaction, error) {
	query := r.db.Where("user_id = ?", ownerID)
	if start != nil {
		query = query.Where("occurred_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("occurred_at <= ?", *end)
	}

	var records []*txDatamodel.Transaction
	err := query.
		Order("occurred_at DESC").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *TransactionRepository) Update(record *txDatamodel.Transaction) error {
	result := r.db.Model(&txDatamodel.Transaction{}).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Updates(map[string]interface{}{
			"kind":        record.Kind,
			"amount":      record.Amount,
			"category":    record.Category,
			"note":        record.Note,
			"occurred_at": record.OccurredAt,
			"updated_at":  record.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return transaction.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) DeleteByIDAndOwner(id, ownerID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&txDatamodel.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return transaction.ErrNotFound
	}
	return nil
}
