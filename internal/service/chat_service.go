package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"

	"github.com/NotRyken/AdvancedChatLog/internal/codec"
	app_errors "github.com/NotRyken/AdvancedChatLog/internal/errors"
	"github.com/NotRyken/AdvancedChatLog/internal/model"
	"github.com/NotRyken/AdvancedChatLog/internal/repository"
)

// RecordResult describes how a chat line was persisted.
type RecordResult struct {
	ID       string        `json:"id,omitempty"`
	Position int           `json:"position"`
	Outcome  codec.Outcome `json:"outcome"`
	Warnings []string      `json:"warnings,omitempty"`
}

// LoadedEntry is a stored chat line read back from the log.
type LoadedEntry struct {
	ID       string
	Position int
	Record   model.LogRecord
}

// DayLog is every readable chat line of one log date.
type DayLog struct {
	Date    civil.Date
	Entries []LoadedEntry
	// Skipped counts stored lines that could not be loaded.
	Skipped int
}

type ChatLogService struct {
	repo  repository.Repository
	codec *codec.Codec
}

func NewChatLogService(repo repository.Repository, c *codec.Codec) *ChatLogService {
	return &ChatLogService{repo: repo, codec: c}
}

// Record serializes rec and appends it to the log of its date. A line that
// cannot be serialized at all is not stored and ErrUnprocessable is returned
// together with the warnings explaining why.
func (s *ChatLogService) Record(ctx context.Context, rec model.LogRecord) (*RecordResult, error) {
	res := s.codec.Save(rec)
	result := &RecordResult{Outcome: res.Outcome, Warnings: res.Warnings}
	if res.Outcome == codec.OutcomeFailed {
		return result, fmt.Errorf("%w: chat line could not be serialized", app_errors.ErrUnprocessable)
	}

	entry := &model.StoredEntry{LogDate: rec.Date.String(), Document: res.Document}
	if err := s.repo.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("could not store log entry: %w", err)
	}

	result.ID = entry.ID
	result.Position = entry.Position
	return result, nil
}

// LoadDay loads every stored line of date. Lines that fail to load are logged
// and skipped rather than failing the whole day.
func (s *ChatLogService) LoadDay(ctx context.Context, date civil.Date) (*DayLog, error) {
	entries, err := s.repo.ListEntries(ctx, date.String())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("log %s: %w", date, app_errors.ErrNotFound)
		}
		return nil, fmt.Errorf("could not list log entries: %w", err)
	}

	day := &DayLog{Date: date, Entries: make([]LoadedEntry, 0, len(entries))}
	for _, entry := range entries {
		rec, err := s.codec.Load(entry.Document)
		if err != nil {
			slog.Warn("Skipping unreadable chat log entry", "log_date", entry.LogDate, "id", entry.ID, "error", err)
			day.Skipped++
			continue
		}
		day.Entries = append(day.Entries, LoadedEntry{ID: entry.ID, Position: entry.Position, Record: *rec})
	}
	return day, nil
}

// ListDays returns every log date that has stored lines, newest first.
func (s *ChatLogService) ListDays(ctx context.Context) ([]string, error) {
	return s.repo.ListDates(ctx)
}

// DeleteDay removes the whole log of date.
func (s *ChatLogService) DeleteDay(ctx context.Context, date civil.Date) error {
	if err := s.repo.DeleteDate(ctx, date.String()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("log %s: %w", date, app_errors.ErrNotFound)
		}
		return err
	}
	return nil
}
