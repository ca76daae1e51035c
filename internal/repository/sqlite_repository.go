package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NotRyken/AdvancedChatLog/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

// AppendEntry stores entry at the end of its log date. ID, Position and
// CreatedAt are filled in when empty.
func (r *sqliteRepository) AppendEntry(ctx context.Context, entry *model.StoredEntry) error {
	if entry.Document.IsEmpty() {
		return ErrEmptyDocument
	}
	document, err := json.Marshal(entry.Document)
	if err != nil {
		return fmt.Errorf("could not marshal document: %w", err)
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	// Ensure transaction is rolled back on error
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), -1) + 1 FROM log_entries WHERE log_date = ?", entry.LogDate).Scan(&position)
	if err != nil {
		return fmt.Errorf("could not determine entry position: %w", err)
	}

	insertQuery := `
		INSERT INTO log_entries (id, log_date, position, document, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery, entry.ID, entry.LogDate, position, string(document), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit log entry: %w", err)
	}
	entry.Position = position
	return nil
}

func (r *sqliteRepository) ListEntries(ctx context.Context, logDate string) ([]model.StoredEntry, error) {
	query := `
		SELECT id, log_date, position, document, created_at
		FROM log_entries
		WHERE log_date = ?
		ORDER BY position ASC
	`
	rows, err := r.db.QueryContext(ctx, query, logDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.StoredEntry
	for rows.Next() {
		var entry model.StoredEntry
		var document string
		if err := rows.Scan(&entry.ID, &entry.LogDate, &entry.Position, &document, &entry.CreatedAt); err != nil {
			return nil, err
		}
		// A row that is not even JSON keeps an empty document; the codec
		// reports it when the entry is loaded.
		if err := json.Unmarshal([]byte(document), &entry.Document); err != nil {
			slog.Warn("Stored log entry is not a valid document", "id", entry.ID, "log_date", entry.LogDate, "error", err)
			entry.Document = model.Document{}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}

func (r *sqliteRepository) ListDates(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT log_date FROM log_entries ORDER BY log_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

func (r *sqliteRepository) DeleteDate(ctx context.Context, logDate string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM log_entries WHERE log_date = ?", logDate)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
