package category

import (
	"log/slog"

	categoryDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	GetAll() ([]*categoryDatamodel.Category, error)
	ReplaceAll(categories []*categoryDatamodel.Category) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListAll returns the full stored reference list in natural storage order.
func (s *Service) ListAll() ([]*Category, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, err
	}

	return FromDataModelSlice(records), nil
}

// ResetToDefaults atomically replaces the entire stored set with the fixed
// default list. Destructive: previously added custom categories are lost.
func (s *Service) ResetToDefaults() ([]*Category, error) {
	defaults := Defaults()
	records := make([]*categoryDatamodel.Category, len(defaults))
	for i, c := range defaults {
		records[i] = ToDataModel(c)
	}

	if err := s.repo.ReplaceAll(records); err != nil {
		s.logger.Error("failed to reset categories", "error", err)
		return nil, err
	}

	s.logger.Info("categories reset to defaults", "count", len(records))
	return FromDataModelSlice(records), nil
}
