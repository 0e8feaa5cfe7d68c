package main

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /interrogate", app.interrogate)
	mux.HandleFunc("GET /health", app.health)
	mux.HandleFunc("GET /debug/sessions", app.debugSessions)
	mux.HandleFunc("POST /debug/reset-sessions", app.debugResetSessions)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   app.config.corsOriginList(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	base := alice.New(app.recoverPanic, app.logRequest, corsHandler.Handler, app.rateLimit)
	return base.Then(mux)
}
