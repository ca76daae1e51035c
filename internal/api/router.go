package api

import (
	"net/http"
	"time"

	// Registers the generated Swagger spec with swag.
	_ "github.com/NotRyken/AdvancedChatLog/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates the chi router with all routes of the chat-log API.
func NewRouter(handler *ChatLogHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/settings", handler.GetSettings)
		r.Put("/settings", handler.UpdateSettings)

		r.Get("/logs", handler.ListDays)
		r.Get("/logs/{date}", handler.GetDay)
		r.Delete("/logs/{date}", handler.DeleteDay)
		r.Post("/logs/{date}/messages", handler.RecordMessage)
	})

	return r
}
