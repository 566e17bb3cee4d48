package settings

import (
	"context"
)

type SettingsRepository interface {
	// List retrieves all stored settings ordered by key.
	List(ctx context.Context) ([]Setting, error)

	// GetByKey retrieves one setting. Returns ErrSettingNotFound when no
	// row matches.
	GetByKey(ctx context.Context, key string) (Setting, error)
}
