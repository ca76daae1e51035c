package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/NotRyken/AdvancedChatLog/internal/api"
	"github.com/NotRyken/AdvancedChatLog/internal/codec"
	"github.com/NotRyken/AdvancedChatLog/internal/config"
	"github.com/NotRyken/AdvancedChatLog/internal/database"
	"github.com/NotRyken/AdvancedChatLog/internal/repository"
	"github.com/NotRyken/AdvancedChatLog/internal/sanitize"
	"github.com/NotRyken/AdvancedChatLog/internal/service"
	"github.com/NotRyken/AdvancedChatLog/internal/wire"
)

// App holds the wired dependencies of a running server.
type App struct {
	DB     *sql.DB
	Server *http.Server
	Codec  *codec.Codec
}

// NewApp opens the database and wires every layer from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	format, err := wire.New(cfg.WireFormat, wire.NewRegistry(cfg.KnownItemList()...))
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	settingsService := service.NewSettingsService(db)
	settings, err := settingsService.InitAndGet(context.Background(), service.Settings{CleanSave: cfg.CleanSave})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}
	slog.Info("Loaded settings", "clean_save", settings.CleanSave, "wire_format", format.Name())

	c := codec.New(format, sanitize.New(settingsService), codec.WithLogger(slog.Default().With("component", "codec")))
	chatLogService := service.NewChatLogService(repository.NewSQLiteRepository(db), c)

	handler := api.NewChatLogHandler(chatLogService, settingsService)
	router := api.NewRouter(handler)

	port := cfg.AppPort
	if port == 0 {
		port = 8000
	}
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server, Codec: c}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	a, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to start application", "error", err)
		return 1
	}
	defer func() {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	slog.Info("Starting server", "addr", a.Server.Addr)
	if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
