package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/alibigame/alibi/internal/errors"
)

// debugSessions exposes the resident sessions for operational introspection.
func (app *application) debugSessions(w http.ResponseWriter, r *http.Request) {
	snapshot := app.store.Snapshot()
	app.writeJSON(w, r, http.StatusOK, envelope{
		"sessions":  snapshot,
		"count":     len(snapshot),
		"timestamp": isoNow(),
	})
}

// debugResetSessions clears one named session, or all of them when no name is
// given. Test harnesses use it to reset state between scenarios.
func (app *application) debugResetSessions(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlayerName string `json:"playerName"`
	}
	// An empty body means "reset everything".
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		app.writeJSON(w, r, http.StatusBadRequest, envelope{
			"error": "request body must be valid JSON",
		})
		return
	}

	if body.PlayerName == "" {
		cleared := app.store.ResetAll()
		app.writeJSON(w, r, http.StatusOK, envelope{
			"status":    "ok",
			"cleared":   cleared,
			"timestamp": isoNow(),
		})
		return
	}

	if !app.store.Reset(body.PlayerName) {
		app.writeJSON(w, r, http.StatusNotFound, envelope{
			"error":      "no session for player",
			"playerName": body.PlayerName,
		})
		return
	}
	app.writeJSON(w, r, http.StatusOK, envelope{
		"status":     "ok",
		"playerName": body.PlayerName,
		"timestamp":  isoNow(),
	})
}
