package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/settings"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// List implements settings.SettingsRepository.
func (r *settingsRepository) List(ctx context.Context) ([]settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT clave, valor, descripcion, tipo_dato
		FROM configuracion
		ORDER BY clave
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var stored []settings.Setting
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Description, &s.DataType); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		stored = append(stored, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return stored, nil
}

// GetByKey implements settings.SettingsRepository.
func (r *settingsRepository) GetByKey(ctx context.Context, key string) (settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT clave, valor, descripcion, tipo_dato
		FROM configuracion
		WHERE clave = $1
	`

	var s settings.Setting
	err := q.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.Description, &s.DataType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Setting{}, settings.ErrSettingNotFound
		}
		return settings.Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}
	return s, nil
}
