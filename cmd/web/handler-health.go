package main

import "net/http"

// health is the liveness/readiness probe: it exposes whether the upstream
// credential is present and how many sessions are resident.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, envelope{
		"status":            "ok",
		"timestamp":         isoNow(),
		"openai_configured": app.config.OpenAIAPIKey != "",
		"active_sessions":   app.store.Count(),
	})
}
