package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cloud.google.com/go/civil"

	"github.com/NotRyken/AdvancedChatLog/internal/codec"
	app_errors "github.com/NotRyken/AdvancedChatLog/internal/errors"
	"github.com/NotRyken/AdvancedChatLog/internal/service"
	"github.com/NotRyken/AdvancedChatLog/internal/text"
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response for operations that
// don't return a resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// RecordMessageRequest is a chat line to append to the log of the date in the URL.
type RecordMessageRequest struct {
	Time     string     `json:"time" validate:"required,timeofday" example:"14:32:07.123"`
	Stacks   *int       `json:"stacks,omitempty" validate:"omitempty,min=0,max=255" example:"1"`
	Display  *text.Text `json:"display" validate:"required" swaggertype:"object"`
	Original *text.Text `json:"original" validate:"required" swaggertype:"object"`
}

// SettingsRequest updates the runtime settings.
type SettingsRequest struct {
	CleanSave *bool `json:"clean_save" validate:"required" example:"true"`
}

// DaysResponse lists the dates that have a log.
type DaysResponse struct {
	Dates []string `json:"dates"`
}

// LogEntryResponse is one loaded chat line.
type LogEntryResponse struct {
	ID           string     `json:"id"`
	Position     int        `json:"position"`
	Time         string     `json:"time" example:"2025-01-15T14:32:07.123"`
	Stacks       uint8      `json:"stacks"`
	DisplayText  string     `json:"display_text"`
	OriginalText string     `json:"original_text"`
	Display      *text.Text `json:"display" swaggertype:"object"`
	Original     *text.Text `json:"original" swaggertype:"object"`
}

// DayLogResponse is every readable line of one log date.
type DayLogResponse struct {
	Date    string             `json:"date"`
	Entries []LogEntryResponse `json:"entries"`
	Skipped int                `json:"skipped"`
}

func newDayLogResponse(day *service.DayLog) DayLogResponse {
	resp := DayLogResponse{
		Date:    day.Date.String(),
		Entries: make([]LogEntryResponse, 0, len(day.Entries)),
		Skipped: day.Skipped,
	}
	for _, e := range day.Entries {
		chat := e.Record.Chat
		resp.Entries = append(resp.Entries, LogEntryResponse{
			ID:           e.ID,
			Position:     e.Position,
			Time:         codec.FormatTime(civil.DateTime{Date: e.Record.Date, Time: chat.Time}),
			Stacks:       chat.Stacks,
			DisplayText:  chat.DisplayText.String(),
			OriginalText: chat.OriginalText.String(),
			Display:      chat.DisplayText,
			Original:     chat.OriginalText,
		})
	}
	return resp
}

// respondWithError maps service-layer errors to HTTP status codes and writes a
// standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages are already descriptive and safe to show.
		message = err.Error()
	case errors.Is(err, app_errors.ErrUnprocessable):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "You do not have permission to perform this action."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The detailed error is logged while the client gets the generic message.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
