package api

import (
	_ "fxconvert/docs"
	"fxconvert/internal/convert/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(convertHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/currencies", convertHandler.ListCurrencies)
	router.Get("/api/v1/convert", convertHandler.Convert)
	router.Get("/api/v1/convert/download", convertHandler.ConvertAndDownload)
	return router
}
