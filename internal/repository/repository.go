package repository

import (
	"context"

	"github.com/NotRyken/AdvancedChatLog/internal/model"
)

// Repository is the log store: documents grouped by the date of the log they
// belong to, kept in insertion order.
type Repository interface {
	AppendEntry(ctx context.Context, entry *model.StoredEntry) error
	ListEntries(ctx context.Context, logDate string) ([]model.StoredEntry, error)
	ListDates(ctx context.Context) ([]string, error)
	DeleteDate(ctx context.Context, logDate string) error
}
