package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/danakita/expense-tracker/internal"
	txDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/transaction"
)

func init() {
	// Amounts serialize as JSON numbers; clients parse them as plain numerics.
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind is the closed set of transaction directions. No other value ever
// persists.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single ledger record owned by exactly one user. ID and
// OwnerID are immutable after creation.
type Transaction struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"ownerId"`
	Kind       Kind            `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Note       string          `json:"note"`
	OccurredAt time.Time       `json:"occurredAt"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

var (
	ErrNotFound          = internal.NewNotFoundError("Transaction not found", internal.ErrCodeTransactionNotFound)
	ErrMissingFields     = internal.NewValidationError("missing required fields", internal.ErrCodeMissingFields)
	ErrAmountNotPositive = internal.NewValidationError("amount must be positive", internal.ErrCodeInvalidAmount)
	ErrInvalidKind       = internal.NewValidationError("kind must be income or expense", internal.ErrCodeInvalidKind)
	ErrMissingDateRange  = internal.NewValidationError("startDate and endDate are required", internal.ErrCodeInvalidDateRange)
	ErrInvalidDate       = internal.NewValidationError("invalid date format", internal.ErrCodeInvalidDateRange)
	ErrEmptyCategory     = internal.NewValidationError("category cannot be empty", internal.ErrCodeValidationFailed)
)

func ToDataModel(t *Transaction) *txDatamodel.Transaction {
	return &txDatamodel.Transaction{
		ID:         t.ID,
		UserID:     t.OwnerID,
		Kind:       string(t.Kind),
		Amount:     t.Amount,
		Category:   t.Category,
		Note:       t.Note,
		OccurredAt: t.OccurredAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func FromDataModel(t *txDatamodel.Transaction) *Transaction {
	return &Transaction{
		ID:         t.ID,
		OwnerID:    t.UserID,
		Kind:       Kind(t.Kind),
		Amount:     t.Amount,
		Category:   t.Category,
		Note:       t.Note,
		OccurredAt: t.OccurredAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func FromDataModelSlice(records []*txDatamodel.Transaction) []*Transaction {
	result := make([]*Transaction, len(records))
	for i, t := range records {
		result[i] = FromDataModel(t)
	}
	return result
}
