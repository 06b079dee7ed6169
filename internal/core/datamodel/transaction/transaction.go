package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence model for a ledger record. Ownership is part
// of the row, never derived: every query against this table filters on user_id.
type Transaction struct {
	ID         string          `json:"id" gorm:"primaryKey;type:uuid"`
	UserID     string          `json:"user_id" gorm:"column:user_id;type:uuid;not null;index:idx_transactions_user_occurred,priority:1"`
	Kind       string          `json:"kind" gorm:"column:kind;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(20,2);not null"`
	Category   string          `json:"category" gorm:"column:category;not null"`
	Note       string          `json:"note" gorm:"column:note;default:''"`
	OccurredAt time.Time       `json:"occurred_at" gorm:"column:occurred_at;not null;index:idx_transactions_user_occurred,priority:2"`
	CreatedAt  time.Time       `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"column:updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
