package service

import (
	"context"
	"fmt"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
	"github.com/Yurisurdi/flats/internal/repository"
)

// SettingsService reads and updates per-user preferences.
type SettingsService struct {
	repo repository.Settings
}

// NewSettingsService constructs a settings service.
func NewSettingsService(repo repository.Settings) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context, userID string) (model.Settings, error) {
	return s.repo.GetSettings(ctx, userID)
}

// Update shallow-merges the set fields and returns the resulting settings.
func (s *SettingsService) Update(ctx context.Context, userID string, upd model.SettingsUpdate) (model.Settings, error) {
	if upd.Theme != nil && *upd.Theme != model.ThemeLight && *upd.Theme != model.ThemeDark {
		return model.Settings{}, fmt.Errorf("%w: unknown theme %q", errs.ErrValidation, *upd.Theme)
	}
	if upd.DefaultCommission != nil && *upd.DefaultCommission < 0 {
		return model.Settings{}, fmt.Errorf("%w: comissaoPadrao must not be negative", errs.ErrValidation)
	}
	return s.repo.UpdateSettings(ctx, userID, upd)
}
