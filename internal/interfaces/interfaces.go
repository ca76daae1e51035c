package interfaces

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/NotRyken/AdvancedChatLog/internal/model"
	"github.com/NotRyken/AdvancedChatLog/internal/service"
)

// The API layer depends on these interfaces rather than on the concrete
// services so handlers can be tested against mocks.

// ChatLogService defines the contract for recording and reading chat logs.
type ChatLogService interface {
	Record(ctx context.Context, rec model.LogRecord) (*service.RecordResult, error)
	LoadDay(ctx context.Context, date civil.Date) (*service.DayLog, error)
	ListDays(ctx context.Context) ([]string, error)
	DeleteDay(ctx context.Context, date civil.Date) error
}

// SettingsService defines the contract for managing runtime settings.
type SettingsService interface {
	InitAndGet(ctx context.Context, defaults service.Settings) (*service.Settings, error)
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}
