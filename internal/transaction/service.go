package transaction

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	txDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/transaction"
)

// Repository defines the data access methods for transactions. Every lookup
// that takes an owner carries the ownership check inside the query predicate:
// a record under another owner is indistinguishable from a missing one.
type Repository interface {
	Create(record *txDatamodel.Transaction) error
	GetByIDAndOwner(id, ownerID string) (*txDatamodel.Transaction, error)
	ListByOwner(ownerID string, start, end *time.Time) ([]*txDatamodel.Transaction, error)
	Update(record *txDatamodel.Transaction) error
	DeleteByIDAndOwner(id, ownerID string) error
}

// Service owns the lifecycle of per-user ledger records and derives summaries
// on demand.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new transaction bound to ownerID. The owner
// always comes from the authenticated identity, never from the payload.
func (s *Service) Create(ownerID string, dto CreateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("transaction validation failed", "error", err, "owner_id", ownerID)
		return nil, err
	}

	now := time.Now()
	occurredAt := now
	if dto.OccurredAt != nil {
		occurredAt = *dto.OccurredAt
	}

	t := &Transaction{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Kind:       Kind(dto.Kind),
		Amount:     dto.Amount,
		Category:   strings.TrimSpace(dto.Category),
		Note:       strings.TrimSpace(dto.Note),
		OccurredAt: occurredAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ToDataModel(t)); err != nil {
		s.logger.Error("failed to create transaction", "error", err, "owner_id", ownerID)
		return nil, err
	}

	s.logger.Info("transaction created",
		"transaction_id", t.ID,
		"owner_id", ownerID,
		"kind", t.Kind,
		"amount", t.Amount)

	return t, nil
}

// List returns the owner's transactions ordered by occurredAt descending,
// createdAt descending as tiebreak. A missing range bound is unbounded.
func (s *Service) List(ownerID string, filter *DateRangeFilter) ([]*Transaction, error) {
	var start, end *time.Time
	if filter != nil {
		start, end = filter.StartDate, filter.EndDate
	}

	records, err := s.repo.ListByOwner(ownerID, start, end)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err, "owner_id", ownerID)
		return nil, err
	}

	return FromDataModelSlice(records), nil
}

// ListByDateRange is List with both bounds mandatory.
func (s *Service) ListByDateRange(ownerID string, start, end *time.Time) ([]*Transaction, error) {
	if start == nil || end == nil {
		return nil, ErrMissingDateRange
	}
	return s.List(ownerID, &DateRangeFilter{StartDate: start, EndDate: end})
}

func (s *Service) GetByID(ownerID, id string) (*Transaction, error) {
	record, err := s.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	return FromDataModel(record), nil
}

// Update applies a partial patch to an owner-scoped record. Omitted fields
// keep their values; updatedAt is bumped even for an empty patch.
func (s *Service) Update(ownerID, id string, dto UpdateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("transaction update validation failed", "error", err, "owner_id", ownerID, "transaction_id", id)
		return nil, err
	}

	record, err := s.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}

	t := FromDataModel(record)
	if dto.Kind != nil {
		t.Kind = Kind(*dto.Kind)
	}
	if dto.Amount != nil {
		t.Amount = *dto.Amount
	}
	if dto.Category != nil {
		t.Category = strings.TrimSpace(*dto.Category)
	}
	if dto.Note != nil {
		t.Note = strings.TrimSpace(*dto.Note)
	}
	if dto.OccurredAt != nil {
		t.OccurredAt = *dto.OccurredAt
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ToDataModel(t)); err != nil {
		s.logger.Error("failed to update transaction", "error", err, "transaction_id", id)
		return nil, err
	}

	s.logger.Info("transaction updated", "transaction_id", id, "owner_id", ownerID)
	return t, nil
}

// Delete removes an owner-scoped record permanently. No tombstone.
func (s *Service) Delete(ownerID, id string) error {
	if err := s.repo.DeleteByIDAndOwner(id, ownerID); err != nil {
		return err
	}

	s.logger.Info("transaction deleted", "transaction_id", id, "owner_id", ownerID)
	return nil
}

// Summarize selects transactions as List does and reduces them into a Summary.
func (s *Service) Summarize(ownerID string, filter *DateRangeFilter) (*Summary, error) {
	transactions, err := s.List(ownerID, filter)
	if err != nil {
		return nil, err
	}
	return Summarize(transactions), nil
}
