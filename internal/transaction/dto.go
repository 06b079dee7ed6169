package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionDTO is the request payload for creating a transaction.
// The owner never comes from the payload; it is bound from the authenticated
// identity by the service.
type CreateTransactionDTO struct {
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Note       string          `json:"note"`
	OccurredAt *time.Time      `json:"occurredAt"`
}

// Validate checks the payload in a fixed order: required fields first, then
// amount positivity, then the kind value.
func (dto CreateTransactionDTO) Validate() error {
	if dto.Kind == "" || dto.Amount.IsZero() || strings.TrimSpace(dto.Category) == "" {
		return ErrMissingFields
	}
	if dto.Amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	if !Kind(dto.Kind).Valid() {
		return ErrInvalidKind
	}
	return nil
}

// UpdateTransactionDTO is a partial update: only non-nil fields change.
type UpdateTransactionDTO struct {
	Kind       *string          `json:"kind"`
	Amount     *decimal.Decimal `json:"amount"`
	Category   *string          `json:"category"`
	Note       *string          `json:"note"`
	OccurredAt *time.Time       `json:"occurredAt"`
}

func (dto UpdateTransactionDTO) Validate() error {
	if dto.Amount != nil && dto.Amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	if dto.Kind != nil && !Kind(*dto.Kind).Valid() {
		return ErrInvalidKind
	}
	if dto.Category != nil && strings.TrimSpace(*dto.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// DateRangeFilter restricts a listing or summary by occurredAt. Both bounds
// are inclusive; either may be nil.
type DateRangeFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
