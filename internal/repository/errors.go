package repository

import "errors"

// ErrNotFound is returned when a log date has no stored entries. The service
// layer translates it into app_errors.ErrNotFound.
var ErrNotFound = errors.New("repository: not found")

// ErrEmptyDocument is returned when asked to store the empty document `{}`,
// which marks a chat line that could not be serialized.
var ErrEmptyDocument = errors.New("repository: refusing to store empty document")
