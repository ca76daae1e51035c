package model

import (
	"encoding/json"
	"time"

	"cloud.google.com/go/civil"

	"github.com/NotRyken/AdvancedChatLog/internal/text"
)

// ChatRecord is a single captured chat line.
type ChatRecord struct {
	Time         civil.Time
	Stacks       uint8 // Number of identical consecutive lines collapsed into this one.
	DisplayText  *text.Text
	OriginalText *text.Text
}

// LogRecord is a ChatRecord paired with the date of the log file it belongs to.
type LogRecord struct {
	Chat ChatRecord
	Date civil.Date
}

// DateTime combines Date and Chat.Time into one local instant.
func (r LogRecord) DateTime() civil.DateTime {
	return civil.DateTime{Date: r.Date, Time: r.Chat.Time}
}

// Document is the persisted JSON form of a LogRecord. The zero value is the
// empty document `{}` written when a record could not be serialized.
type Document struct {
	Time     string          `json:"time,omitempty"`
	Stacks   *int            `json:"stacks,omitempty"`
	Display  json.RawMessage `json:"display,omitempty"`
	Original json.RawMessage `json:"original,omitempty"`
}

// IsEmpty reports whether d carries no fields at all.
func (d Document) IsEmpty() bool {
	return d.Time == "" && d.Stacks == nil && len(d.Display) == 0 && len(d.Original) == 0
}

// StoredEntry is a document as kept by the log store.
type StoredEntry struct {
	ID        string    `json:"id"`
	LogDate   string    `json:"log_date"`
	Position  int       `json:"position"`
	Document  Document  `json:"document"`
	CreatedAt time.Time `json:"created_at"`
}
