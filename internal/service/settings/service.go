package settings

import (
	"context"
	"fmt"

	domainreport "github.com/acceso-labs/acceso-backend-go/internal/domain/report"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
	rules        domainreport.Rules
}

func NewSettingsService(settingsRepo settings.SettingsRepository, rules domainreport.Rules) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo, rules: rules}
}

// Config implements settings.SettingsService.
func (s *SettingsServiceImpl) Config(ctx context.Context) (settings.ConfigResponse, error) {
	stored, err := s.settingsRepo.List(ctx)
	if err != nil {
		return settings.ConfigResponse{}, fmt.Errorf("failed to list settings: %w", err)
	}
	if stored == nil {
		stored = []settings.Setting{}
	}
	return settings.ConfigResponse{
		Settings: stored,
		Engine:   s.rules.Snapshot(),
	}, nil
}
