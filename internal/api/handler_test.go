package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NotRyken/AdvancedChatLog/internal/api"
	"github.com/NotRyken/AdvancedChatLog/internal/codec"
	app_errors "github.com/NotRyken/AdvancedChatLog/internal/errors"
	"github.com/NotRyken/AdvancedChatLog/internal/interfaces/mocks"
	"github.com/NotRyken/AdvancedChatLog/internal/model"
	"github.com/NotRyken/AdvancedChatLog/internal/service"
	"github.com/NotRyken/AdvancedChatLog/internal/text"
)

var logDate = civil.Date{Year: 2025, Month: 1, Day: 15}

func setupChatLogHandler(t *testing.T) (*api.ChatLogHandler, *mocks.MockChatLogService, *mocks.MockSettingsService) {
	mockLogSvc := mocks.NewMockChatLogService(t)
	mockSettingsSvc := mocks.NewMockSettingsService(t)
	return api.NewChatLogHandler(mockLogSvc, mockSettingsSvc), mockLogSvc, mockSettingsSvc
}

// addChiURLParams injects URL parameters the way the chi router would.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestChatLogHandler_RecordMessage(t *testing.T) {
	body := `{
		"time": "14:32:07.123",
		"stacks": 3,
		"display": {"text":"","extra":[{"text":"<Steve> ","color":"yellow"},{"text":"hello"}]},
		"original": "hello"
	}`

	t.Run("Success", func(t *testing.T) {
		handler, mockLogSvc, _ := setupChatLogHandler(t)
		mockLogSvc.On("Record", mock.Anything, mock.MatchedBy(func(rec model.LogRecord) bool {
			return rec.Date == logDate &&
				rec.Chat.Time == civil.Time{Hour: 14, Minute: 32, Second: 7, Nanosecond: 123000000} &&
				rec.Chat.Stacks == 3 &&
				rec.Chat.DisplayText.String() == "<Steve> hello" &&
				rec.Chat.OriginalText.String() == "hello"
		})).Return(&service.RecordResult{ID: "entry-1", Outcome: codec.OutcomeOK}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/logs/2025-01-15/messages", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"date": "2025-01-15"})
		rr := httptest.NewRecorder()
		handler.RecordMessage(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":"entry-1","position":0,"outcome":"ok"}`, rr.Body.String())
	})

	t.Run("Success - Stacks default to one", func(t *testing.T) {
		handler, mockLogSvc, _ := setupChatLogHandler(t)
		mockLogSvc.On("Record", mock.Anything, mock.MatchedBy(func(rec model.LogRecord) bool {
			return rec.Chat.Stacks == 1
		})).Return(&service.RecordResult{ID: "entry-2"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"time":"08:00:00","display":"a","original":"a"}`))
		req = addChiURLParams(req, map[string]string{"date": "2025-01-15"})
		rr := httptest.NewRecorder()
		handler.RecordMessage(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Unserializable line returns 422 with warnings", func(t *testing.T) {
		handler, mockLogSvc, _ := setupChatLogHandler(t)
		res := &service.RecordResult{Outcome: codec.OutcomeFailed, Warnings: []string{"first", "second"}}
		mockLogSvc.On("Record", mock.Anything, mock.Anything).Return(res, app_errors.ErrUnprocessable).Once()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"date": "2025-01-15"})
		rr := httptest.NewRecorder()
		handler.RecordMessage(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), `"outcome":"failed"`)
		assert.Contains(t, rr.Body.String(), "second")
	})

	t.Run("Failure - Validation", func(t *testing.T) {
		cases := map[string]string{
			"bad time":         `{"time":"2pm","display":"a","original":"a"}`,
			"stacks too large": `{"time":"14:00:00","stacks":300,"display":"a","original":"a"}`,
			"missing display":  `{"time":"14:00:00","original":"a"}`,
			"malformed text":   `{"time":"14:00:00","display":{"color":"red"},"original":"a"}`,
			"not json":         `time=14:00`,
		}
		for name, payload := range cases {
			t.Run(name, func(t *testing.T) {
				handler, _, _ := setupChatLogHandler(t)
				req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
				req = addChiURLParams(req, map[string]string{"date": "2025-01-15"})
				rr := httptest.NewRecorder()
				handler.RecordMessage(rr, req)
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			})
		}
	})

	t.Run("Failure - Invalid date", func(t *testing.T) {
		handler, _, _ := setupChatLogHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"date": "2025-13-40"})
		rr := httptest.NewRecorder()
		handler.RecordMessage(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid log date")
	})
}

func TestChatLogHandler_GetDay(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockLogSvc, _ := setupChatLogHandler(t)
		day := &service.DayLog{
			Date: logDate,
			Entries: []service.LoadedEntry{{
				ID:       "a",
				Position: 0,
				Record: model.LogRecord{
					Date: logDate,
					Chat: model.ChatRecord{
						Time:         civil.Time{Hour: 14, Minute: 32, Second: 7, Nanosecond: 123000000},
						Stacks:       2,
						DisplayText:  text.Empty().Append(text.Literal("hi")),
						OriginalText: text.Empty().Append(text.Literal("hi")),
					},
				},
			}},
			Skipped: 1,
		}
		mockLogSvc.On("LoadDay", mock.Anything, logDate).Return(day, nil).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"date": "2025-01-15"})
		rr := httptest.NewRecorder()
		handler.GetDay(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.DayLogResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "2025-01-15", resp.Date)
		assert.Equal(t, 1, resp.Skipped)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "2025-01-15T14:32:07.123", resp.Entries[0].Time)
		assert.Equal(t, uint8(2), resp.Entries[0].Stacks)
		assert.Equal(t, "hi", resp.Entries[0].DisplayText)
		assert.Equal(t, "hi", resp.Entries[0].Original.String())
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		handler, mockLogSvc, _ := setupChatLogHandler(t)
		mockLogSvc.On("LoadDay", mock.Anything, logDate).Return(nil, app_errors.ErrNotFound).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"date": "2025-01-15"})
		rr := httptest.NewRecorder()
		handler.GetDay(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChatLogHandler_ListDays(t *testing.T) {
	t.Run("Success - Empty list", func(t *testing.T) {
		handler, mockLogSvc, _ := setupChatLogHandler(t)
		mockLogSvc.On("ListDays", mock.Anything).Return(nil, nil).Once()

		rr := httptest.NewRecorder()
		handler.ListDays(rr, httptest.NewRequest(http.MethodGet, "/v1/logs", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"dates":[]}`, rr.Body.String())
	})

	t.Run("Failure - Service returns error", func(t *testing.T) {
		handler, mockLogSvc, _ := setupChatLogHandler(t)
		mockLogSvc.On("ListDays", mock.Anything).Return(nil, errors.New("db gone")).Once()

		rr := httptest.NewRecorder()
		handler.ListDays(rr, httptest.NewRequest(http.MethodGet, "/v1/logs", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "db gone")
	})
}

func TestChatLogHandler_DeleteDay(t *testing.T) {
	handler, mockLogSvc, _ := setupChatLogHandler(t)
	mockLogSvc.On("DeleteDay", mock.Anything, logDate).Return(nil).Once()

	req := addChiURLParams(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"date": "2025-01-15"})
	rr := httptest.NewRecorder()
	handler.DeleteDay(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, rr.Body.String())
}

func TestChatLogHandler_Settings(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		handler, _, mockSettingsSvc := setupChatLogHandler(t)
		mockSettingsSvc.On("Get", mock.Anything).Return(&service.Settings{CleanSave: true}, nil).Once()

		rr := httptest.NewRecorder()
		handler.GetSettings(rr, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"clean_save":true}`, rr.Body.String())
	})

	t.Run("Update", func(t *testing.T) {
		handler, _, mockSettingsSvc := setupChatLogHandler(t)
		mockSettingsSvc.On("Save", mock.Anything, &service.Settings{CleanSave: false}).Return(nil).Once()

		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(`{"clean_save":false}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Update - Missing field", func(t *testing.T) {
		handler, _, _ := setupChatLogHandler(t)

		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "CleanSave")
	})
}

func TestRouter_Healthz(t *testing.T) {
	handler, _, _ := setupChatLogHandler(t)
	router := api.NewRouter(handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
