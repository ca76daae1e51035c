package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	app_errors "github.com/NotRyken/AdvancedChatLog/internal/errors"
)

const keyCleanSave = "clean_save"

// Settings holds the runtime settings stored in the database.
type Settings struct {
	CleanSave bool `json:"clean_save"`
}

// SettingsService persists runtime settings and serves the current clean-save
// flag to the sanitizer without touching the database.
type SettingsService struct {
	db        *sql.DB
	cleanSave atomic.Bool
}

func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

// CleanSave implements sanitize.Policy.
func (s *SettingsService) CleanSave() bool {
	return s.cleanSave.Load()
}

// InitAndGet returns the stored settings, seeding them from defaults on first run.
func (s *SettingsService) InitAndGet(ctx context.Context, defaults Settings) (*Settings, error) {
	settings, err := s.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, app_errors.ErrNotFound) {
		return nil, err
	}

	slog.Info("No settings found in database. Initializing from configuration.", "clean_save", defaults.CleanSave)
	if err := s.Save(ctx, &defaults); err != nil {
		return nil, fmt.Errorf("failed to save initial settings: %w", err)
	}
	return &defaults, nil
}

// Get reads the settings and refreshes the cached clean-save flag.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	found := false
	var settings Settings
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case keyCleanSave:
			v, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid %s setting %q: %w", keyCleanSave, value, err)
			}
			settings.CleanSave = v
			found = true
		default:
			slog.Debug("Ignoring unknown setting", "key", key)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.ErrNotFound
	}

	s.cleanSave.Store(settings.CleanSave)
	return &settings, nil
}

// Save stores settings and makes them effective immediately.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are required", app_errors.ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return fmt.Errorf("failed to prepare settings statement: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, keyCleanSave, strconv.FormatBool(settings.CleanSave)); err != nil {
		return fmt.Errorf("failed to save %s: %w", keyCleanSave, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}

	s.cleanSave.Store(settings.CleanSave)
	slog.Info("Settings updated.", "clean_save", settings.CleanSave)
	return nil
}
