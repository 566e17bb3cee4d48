package settings

import (
	"context"
)

// ConfigResponse is the configuration endpoint payload: the stored settings
// rows plus the engine rules resolved at startup.
type ConfigResponse struct {
	Settings []Setting      `json:"settings"`
	Engine   map[string]any `json:"engine"`
}

// SettingsService exposes the stored configuration.
type SettingsService interface {
	Config(ctx context.Context) (ConfigResponse, error)
}
