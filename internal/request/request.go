// Package request normalizes the interrogation payload. The game client has
// shipped several generations of field names for the same logical fields, so
// normalization resolves each alias group to one canonical value before
// validation runs.
package request

import (
	"strings"

	"github.com/alibigame/alibi/internal/models"
)

// Raw mirrors the JSON body of POST /interrogate, including every historical
// alias still in the wild.
type Raw struct {
	PlayerName          string                    `json:"playerName"`
	Role                string                    `json:"role"`
	Difficulty          string                    `json:"difficulty"`
	EvidenceList        []string                  `json:"evidenceList"`
	PlayerResponse      string                    `json:"playerResponse"`
	PlayerAnswer        string                    `json:"playerAnswer"`
	ConversationHistory []models.ConversationTurn `json:"conversationHistory"`
	History             []models.ConversationTurn `json:"history"`
	// SessionID is accepted but unused; sessions are keyed by PlayerName.
	SessionID          string `json:"sessionId"`
	StartInterrogation bool   `json:"startInterrogation"`
	Diagnostic         bool   `json:"diagnostic"`
}

// Normalized is the canonical request the rest of the pipeline works with.
type Normalized struct {
	PlayerName      string
	Role            models.Role
	Difficulty      models.Difficulty
	EvidenceList    []string
	LatestUtterance string
	Transcript      []models.ConversationTurn
	FirstMessage    bool
	Diagnostic      bool
}

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Alias tables resolve the first non-empty value among the known names for a
// logical field. New aliases are additive rows, not new branches.
var utteranceAliases = []struct {
	name  string
	value func(Raw) string
}{
	{"playerResponse", func(r Raw) string { return r.PlayerResponse }},
	{"playerAnswer", func(r Raw) string { return r.PlayerAnswer }},
}

var transcriptAliases = []struct {
	name  string
	value func(Raw) []models.ConversationTurn
}{
	{"conversationHistory", func(r Raw) []models.ConversationTurn { return r.ConversationHistory }},
	{"history", func(r Raw) []models.ConversationTurn { return r.History }},
}

// Validate normalizes raw and accumulates every violation instead of failing
// on the first, so a client can fix all of its problems in one round trip.
// The returned Normalized is only meaningful when the error list is empty.
func Validate(raw Raw) (Normalized, []FieldError) {
	var errs []FieldError

	playerName := strings.TrimSpace(raw.PlayerName)
	if playerName == "" {
		errs = append(errs, FieldError{Field: "playerName", Message: "playerName is required"})
	}

	if raw.Role == "" {
		errs = append(errs, FieldError{Field: "role", Message: "role is required"})
	} else if !models.ValidRole(raw.Role) {
		errs = append(errs, FieldError{Field: "role", Message: "unrecognized role: " + raw.Role})
	}

	var difficulty models.Difficulty
	if raw.Difficulty == "" {
		errs = append(errs, FieldError{Field: "difficulty", Message: "difficulty is required"})
	} else {
		var ok bool
		if difficulty, ok = models.ParseDifficulty(raw.Difficulty); !ok {
			errs = append(errs, FieldError{Field: "difficulty", Message: "unrecognized difficulty: " + raw.Difficulty})
		}
	}

	var utterance string
	for _, alias := range utteranceAliases {
		if v := alias.value(raw); v != "" {
			utterance = v
			break
		}
	}

	var transcript []models.ConversationTurn
	for _, alias := range transcriptAliases {
		if v := alias.value(raw); len(v) > 0 {
			transcript = v
			break
		}
	}

	if len(errs) > 0 {
		return Normalized{}, errs
	}

	return Normalized{
		PlayerName:      playerName,
		Role:            models.Role(raw.Role),
		Difficulty:      difficulty,
		EvidenceList:    raw.EvidenceList,
		LatestUtterance: utterance,
		Transcript:      transcript,
		FirstMessage:    raw.StartInterrogation || len(transcript) == 0,
		Diagnostic:      raw.Diagnostic,
	}, nil
}
