package user

import (
	"encoding/json"
	"log/slog"
	"time"

	userDatamodel "github.com/danakita/expense-tracker/internal/core/datamodel/user"
)

type Repository interface {
	GetByID(id string) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)
	Update(record *userDatamodel.User) error
	SaveSettings(id, settings string) error
}

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

func (s *Service) GetProfile(id string) (*User, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(record), nil
}

// UpdateProfile applies a partial patch to the profile. A changed email must
// stay unique across accounts.
func (s *Service) UpdateProfile(id string, dto UpdateProfileDTO) (*User, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil && *dto.Email != record.Email {
		existing, err := s.repo.GetByEmail(*dto.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrEmailTaken
		}
		record.Email = *dto.Email
	}
	if dto.Name != nil {
		record.Name = *dto.Name
	}
	if dto.Phone != nil {
		record.Phone = *dto.Phone
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", id)
		return nil, err
	}

	return FromDataModel(record), nil
}

// GetSettings returns the stored settings document, or defaults when the user
// never saved one.
func (s *Service) GetSettings(id string) (Settings, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return Settings{}, err
	}

	if record.Settings == "" {
		return DefaultSettings(), nil
	}

	var settings Settings
	if err := json.Unmarshal([]byte(record.Settings), &settings); err != nil {
		s.logger.Warn("stored settings unreadable, serving defaults", "error", err, "user_id", id)
		return DefaultSettings(), nil
	}
	return settings, nil
}

func (s *Service) UpdateSettings(id string, settings Settings) (Settings, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return Settings{}, err
	}

	if err := s.repo.SaveSettings(id, string(raw)); err != nil {
		s.logger.Error("failed to save settings", "error", err, "user_id", id)
		return Settings{}, err
	}

	return settings, nil
}
