// Package codec converts chat-log records to persisted JSON documents and back.
//
// Saving is best effort: if a record cannot be serialized as-is, it is retried
// with all interactive metadata stripped, and if that fails too the empty
// document is returned. Loading is strict and fails on any malformed field.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NotRyken/AdvancedChatLog/internal/model"
	"github.com/NotRyken/AdvancedChatLog/internal/sanitize"
	"github.com/NotRyken/AdvancedChatLog/internal/wire"
)

var (
	// ErrParse is returned by Load for any malformed document field.
	ErrParse = errors.New("codec: malformed document")
	// ErrRange is returned alongside ErrParse when stacks does not fit in 8 bits.
	ErrRange = errors.New("codec: value out of range")
)

// Outcome is how a Save finished.
type Outcome int

const (
	// OutcomeOK means the record was saved as-is (subject to the clean-save policy).
	OutcomeOK Outcome = iota
	// OutcomeRecovered means the record was saved with interaction stripped.
	OutcomeRecovered
	// OutcomeFailed means the record could not be saved and the document is empty.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeRecovered:
		return "recovered"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// SaveResult is the document produced by Save and the warnings raised on the way.
type SaveResult struct {
	Document model.Document
	Outcome  Outcome
	Warnings []string
}

// Codec saves and loads log records through one wire format.
type Codec struct {
	format    wire.Format
	sanitizer *sanitize.Sanitizer
	logger    *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger warnings are written to. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(format wire.Format, sanitizer *sanitize.Sanitizer, opts ...Option) *Codec {
	if sanitizer == nil {
		sanitizer = sanitize.New(nil)
	}
	c := &Codec{
		format:    format,
		sanitizer: sanitizer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Format returns the wire format used by c.
func (c *Codec) Format() wire.Format {
	return c.format
}

func (c *Codec) formatName() string {
	if c.format == nil {
		return "none"
	}
	return c.format.Name()
}

// Save serializes rec. It never fails: on error the record is retried with
// interaction stripped, and if that fails the empty document is returned.
func (c *Codec) Save(rec model.LogRecord) SaveResult {
	doc, err := c.build(rec, false)
	if err == nil {
		return SaveResult{Document: doc, Outcome: OutcomeOK}
	}

	plain := rec.Chat.OriginalText.String()
	debug := rec.Chat.OriginalText.Inspect()
	c.logger.Warn("Error serializing chat message, retrying with interaction stripped",
		"text", plain, "debug", debug, "error", err, "format", c.formatName())
	first := fmt.Sprintf("error serializing %q (%s): %v", plain, debug, err)

	doc, err = c.build(rec, true)
	if err == nil {
		return SaveResult{Document: doc, Outcome: OutcomeRecovered, Warnings: []string{first}}
	}

	c.logger.Warn("Error serializing chat message with interaction stripped, skipping",
		"text", plain, "error", err, "format", c.formatName())
	second := fmt.Sprintf("error serializing %q with interaction stripped: %v", plain, err)

	return SaveResult{Outcome: OutcomeFailed, Warnings: []string{first, second}}
}

func (c *Codec) build(rec model.LogRecord, forced bool) (doc model.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = model.Document{}, fmt.Errorf("%w: panic: %v", wire.ErrEncode, r)
		}
	}()

	display, err := c.format.Serialize(c.sanitizer.Transfer(rec.Chat.DisplayText, forced))
	if err != nil {
		return model.Document{}, fmt.Errorf("display: %w", err)
	}
	original, err := c.format.Serialize(c.sanitizer.Transfer(rec.Chat.OriginalText, forced))
	if err != nil {
		return model.Document{}, fmt.Errorf("original: %w", err)
	}

	stacks := int(rec.Chat.Stacks)
	return model.Document{
		Time:     FormatTime(rec.DateTime()),
		Stacks:   &stacks,
		Display:  display,
		Original: original,
	}, nil
}

// Load reconstructs a record from doc. The date comes from the document's time.
func (c *Codec) Load(doc model.Document) (*model.LogRecord, error) {
	if doc.Time == "" {
		return nil, fmt.Errorf("%w: missing time", ErrParse)
	}
	dt, err := ParseTime(doc.Time)
	if err != nil {
		return nil, err
	}

	if doc.Stacks == nil {
		return nil, fmt.Errorf("%w: missing stacks", ErrParse)
	}
	stacks := *doc.Stacks
	if stacks < 0 || stacks > 255 {
		return nil, fmt.Errorf("%w: stacks %d: %w", ErrParse, stacks, ErrRange)
	}

	display, err := c.format.Deserialize(doc.Display)
	if err != nil {
		return nil, fmt.Errorf("%w: display: %w", ErrParse, err)
	}
	original, err := c.format.Deserialize(doc.Original)
	if err != nil {
		return nil, fmt.Errorf("%w: original: %w", ErrParse, err)
	}

	return &model.LogRecord{
		Chat: model.ChatRecord{
			Time:         dt.Time,
			Stacks:       uint8(stacks),
			DisplayText:  display,
			OriginalText: original,
		},
		Date: dt.Date,
	}, nil
}

// Encode saves rec and marshals the resulting document.
func (c *Codec) Encode(rec model.LogRecord) ([]byte, SaveResult) {
	res := c.Save(rec)
	data, err := json.Marshal(res.Document)
	if err != nil {
		c.logger.Warn("Error marshaling chat log document", "error", err)
		res = SaveResult{Outcome: OutcomeFailed, Warnings: append(res.Warnings, err.Error())}
		return []byte("{}"), res
	}
	return data, res
}

// Decode unmarshals a document and loads it.
func (c *Codec) Decode(data []byte) (*model.LogRecord, error) {
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return c.Load(doc)
}
