package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	app_errors "github.com/NotRyken/AdvancedChatLog/internal/errors"
	"github.com/NotRyken/AdvancedChatLog/internal/interfaces"
	"github.com/NotRyken/AdvancedChatLog/internal/model"
	"github.com/NotRyken/AdvancedChatLog/internal/service"
)

// ChatLogHandler handles HTTP requests for chat logs and settings.
type ChatLogHandler struct {
	service  interfaces.ChatLogService
	settings interfaces.SettingsService
}

func NewChatLogHandler(svc interfaces.ChatLogService, settings interfaces.SettingsService) *ChatLogHandler {
	return &ChatLogHandler{service: svc, settings: settings}
}

func parseLogDate(r *http.Request) (civil.Date, error) {
	raw := chi.URLParam(r, "date")
	date, err := civil.ParseDate(raw)
	if err != nil || !date.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: invalid log date %q, expected YYYY-MM-DD", app_errors.ErrValidation, raw)
	}
	return date, nil
}

// GetSettings godoc
// @Summary      Get settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/settings [get]
func (h *ChatLogHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update settings
// @Description  Toggles clean save. Takes effect for the next recorded line.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      SettingsRequest  true  "New settings"
// @Success      200       {object}  service.Settings
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /v1/settings [put]
func (h *ChatLogHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body: %v", app_errors.ErrValidation, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	settings := &service.Settings{CleanSave: *req.CleanSave}
	if err := h.settings.Save(r.Context(), settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// ListDays godoc
// @Summary      List log dates
// @Tags         Logs
// @Produce      json
// @Success      200  {object}  DaysResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/logs [get]
func (h *ChatLogHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.ListDays(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if dates == nil {
		dates = []string{}
	}
	respondWithJSON(w, http.StatusOK, DaysResponse{Dates: dates})
}

// GetDay godoc
// @Summary      Read a day's log
// @Description  Returns every readable line of the log. Unreadable lines are counted in "skipped".
// @Tags         Logs
// @Produce      json
// @Param        date  path      string  true  "Log date (YYYY-MM-DD)"
// @Success      200   {object}  DayLogResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /v1/logs/{date} [get]
func (h *ChatLogHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	date, err := parseLogDate(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	day, err := h.service.LoadDay(r.Context(), date)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newDayLogResponse(day))
}

// RecordMessage godoc
// @Summary      Record a chat line
// @Description  Appends a chat line to the log of the given date. Lines that cannot be stored even with interaction stripped are rejected with 422.
// @Tags         Logs
// @Accept       json
// @Produce      json
// @Param        date     path      string                true  "Log date (YYYY-MM-DD)"
// @Param        message  body      RecordMessageRequest  true  "Chat line"
// @Success      201      {object}  service.RecordResult
// @Failure      400      {object}  ErrorResponse
// @Failure      422      {object}  service.RecordResult
// @Failure      500      {object}  ErrorResponse
// @Router       /v1/logs/{date}/messages [post]
func (h *ChatLogHandler) RecordMessage(w http.ResponseWriter, r *http.Request) {
	date, err := parseLogDate(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req RecordMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body: %v", app_errors.ErrValidation, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	// Already checked by the "timeofday" tag.
	tod, _ := civil.ParseTime(req.Time)
	stacks := 1
	if req.Stacks != nil {
		stacks = *req.Stacks
	}

	rec := model.LogRecord{
		Date: date,
		Chat: model.ChatRecord{
			Time:         tod,
			Stacks:       uint8(stacks),
			DisplayText:  req.Display,
			OriginalText: req.Original,
		},
	}

	res, err := h.service.Record(r.Context(), rec)
	if err != nil {
		if errors.Is(err, app_errors.ErrUnprocessable) && res != nil {
			respondWithJSON(w, http.StatusUnprocessableEntity, res)
			return
		}
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

// DeleteDay godoc
// @Summary      Delete a day's log
// @Tags         Logs
// @Produce      json
// @Param        date  path      string  true  "Log date (YYYY-MM-DD)"
// @Success      200   {object}  StatusResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /v1/logs/{date} [delete]
func (h *ChatLogHandler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	date, err := parseLogDate(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.DeleteDay(r.Context(), date); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
