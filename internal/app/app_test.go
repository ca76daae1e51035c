package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotRyken/AdvancedChatLog/internal/config"
)

func TestNewApp(t *testing.T) {
	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "chatlog.db"),
		LogLevel:     "DEBUG",
		WireFormat:   "string",
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app)
	defer func() { require.NoError(t, app.DB.Close()) }()

	assert.NotNil(t, app.Server)
	assert.Equal(t, ":8000", app.Server.Addr)
	assert.Equal(t, "string", app.Codec.Format().Name())
}

func TestNewApp_UnknownWireFormat(t *testing.T) {
	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "chatlog.db"),
		WireFormat:   "xml",
	}
	_, err := NewApp(cfg)
	assert.Error(t, err)
}

// TestApp_RecordAndRead drives the whole stack through HTTP against a real
// SQLite file.
func TestApp_RecordAndRead(t *testing.T) {
	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "chatlog.db"),
		WireFormat:   "tree",
	}
	app, err := NewApp(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, app.DB.Close()) }()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rr
	}

	rr := do(http.MethodPost, "/api/v1/logs/2025-01-15/messages",
		`{"time":"14:32:07.123","stacks":1,"display":{"text":"","extra":[{"text":"hello"}]},"original":{"text":"","extra":[{"text":"hello"}]}}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = do(http.MethodPost, "/api/v1/logs/2025-01-15/messages",
		`{"time":"14:33:00","display":"x","original":{"text":"","extra":[{"text":"open","clickEvent":{"action":"open_file","value":"a.txt"}}]}}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"outcome":"recovered"`)

	rr = do(http.MethodGet, "/api/v1/logs/2025-01-15", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `"time":"2025-01-15T14:32:07.123"`)
	assert.Contains(t, body, `"original_text":"hello"`)
	assert.Contains(t, body, `"original_text":"open"`)
	assert.NotContains(t, body, "open_file")

	rr = do(http.MethodGet, "/api/v1/logs", "")
	assert.JSONEq(t, `{"dates":["2025-01-15"]}`, rr.Body.String())

	rr = do(http.MethodPut, "/api/v1/settings", `{"clean_save":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(http.MethodDelete, "/api/v1/logs/2025-01-15", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(http.MethodGet, "/api/v1/logs/2025-01-15", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
