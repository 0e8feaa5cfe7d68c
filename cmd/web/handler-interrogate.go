package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/alibigame/alibi/internal/ai"
	"github.com/alibigame/alibi/internal/errors"
	"github.com/alibigame/alibi/internal/models"
	"github.com/alibigame/alibi/internal/prompt"
	"github.com/alibigame/alibi/internal/request"
	"github.com/alibigame/alibi/internal/session"
)

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// validationFailure is the 400 body carrying every violation plus the valid
// enumerations so the client can fix all problems in one round trip.
func (app *application) validationFailure(w http.ResponseWriter, r *http.Request, details []request.FieldError) {
	app.writeJSON(w, r, http.StatusBadRequest, envelope{
		"error":             "Validation failed",
		"details":           details,
		"validDifficulties": models.Difficulties,
		"validRoles":        models.Roles,
	})
}

func (app *application) interrogate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var raw request.Raw
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		app.validationFailure(w, r, []request.FieldError{
			{Field: "body", Message: "request body must be valid JSON"},
		})
		return
	}

	norm, details := request.Validate(raw)
	if len(details) > 0 {
		app.validationFailure(w, r, details)
		return
	}

	// Diagnostic requests echo capabilities without touching the session
	// store or the backend.
	if norm.Diagnostic {
		app.writeJSON(w, r, http.StatusOK, envelope{
			"status":            "ok",
			"mode":              "diagnostic",
			"validRoles":        models.Roles,
			"validDifficulties": models.Difficulties,
			"timestamp":         isoNow(),
		})
		return
	}

	sess, created := app.store.Resolve(ctx, session.ResolveParams{
		PlayerName:       norm.PlayerName,
		FirstMessage:     norm.FirstMessage,
		Transcript:       norm.Transcript,
		Difficulty:       norm.Difficulty,
		EvidenceOverride: norm.EvidenceList,
	})

	// A continuation whose session was lost or corrupt is healed by the
	// recreate above; the fresh session starts a new interrogation.
	firstMessage := norm.FirstMessage || created
	if created && !norm.FirstMessage {
		app.logger.LogAttrs(ctx, slog.LevelInfo, "recreated session mid-conversation",
			slog.String("playerName", norm.PlayerName))
	}

	p := prompt.Build(prompt.Input{
		PlayerName:      norm.PlayerName,
		Role:            norm.Role,
		Difficulty:      norm.Difficulty,
		Scenario:        sess.Scenario,
		Evidence:        sess.Evidence,
		Transcript:      sess.Transcript,
		LatestUtterance: norm.LatestUtterance,
		FirstMessage:    firstMessage,
	})

	generated, err := app.aiClient.Complete(ctx, p.System, p.User)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "backend call failed",
			slog.String("playerName", norm.PlayerName), errors.SlogError(err))
		app.writeJSON(w, r, http.StatusInternalServerError, envelope{
			"error":     ai.Classify(err),
			"details":   err.Error(),
			"timestamp": isoNow(),
		})
		return
	}

	var turns []models.ConversationTurn
	if !firstMessage && norm.LatestUtterance != "" {
		turns = append(turns, models.ConversationTurn{Role: models.TurnRolePlayer, Content: norm.LatestUtterance})
	}
	turns = append(turns, models.ConversationTurn{Role: models.TurnRoleDetective, Content: generated})
	app.store.Append(ctx, norm.PlayerName, turns...)

	app.writeJSON(w, r, http.StatusOK, envelope{
		"response":   generated,
		"scenario":   sess.Scenario,
		"evidence":   sess.Evidence,
		"difficulty": norm.Difficulty,
		"timestamp":  isoNow(),
	})
}
