package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"
)

// UpdateSettingsRequest changes the weekly study goal.
type UpdateSettingsRequest struct {
	UserID     string `json:"-"`
	WeeklyGoal int    `json:"weekly_goal"`
}

// SettingsService owns per-user study preferences
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
	logger       *slog.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings returns the user's settings, falling back to defaults when
// nothing was ever saved.
func (s *SettingsService) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return &models.UserSettings{UserID: userID, WeeklyGoal: models.DefaultWeeklyGoal}, nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings sets the weekly study goal (1..7 days)
func (s *SettingsService) UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*models.UserSettings, error) {
	if req.WeeklyGoal < 1 || req.WeeklyGoal > config.MaxWeeklyGoal {
		return nil, fmt.Errorf("%w: weekly_goal must be between 1 and %d", domain.ErrValidation, config.MaxWeeklyGoal)
	}

	settings := &models.UserSettings{
		UserID:     req.UserID,
		WeeklyGoal: req.WeeklyGoal,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
