package models

import "time"

// Scenario is the ground truth for one interrogation: a crime bound to a
// location, the time it happened, and how the perpetrators got in. It is
// assigned once when a session is created and never mutated afterwards.
type Scenario struct {
	Crime    string `json:"crime"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Method   string `json:"method"`
}

// Complete reports whether all four scenario fields are set. A session whose
// scenario is incomplete is treated as corrupt and replaced on resolve.
func (s Scenario) Complete() bool {
	return s.Crime != "" && s.Location != "" && s.Time != "" && s.Method != ""
}

// Speaker labels used in the conversation transcript.
const (
	TurnRoleDetective = "detective"
	TurnRolePlayer    = "player"
)

// ConversationTurn is a single exchange in the interrogation transcript.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds the server-side state for one suspect, keyed by the
// caller-supplied player name. The scenario is immutable after creation; the
// transcript is append-only.
type Session struct {
	Scenario    Scenario           `json:"scenario"`
	Evidence    []string           `json:"evidence"`
	Transcript  []ConversationTurn `json:"transcript"`
	LastTouched time.Time          `json:"lastTouched"`
}

// Valid reports whether the session passes structural validation. An invalid
// session is silently recreated instead of surfacing an error to the client.
func (s *Session) Valid() bool {
	return s != nil && s.Scenario.Complete()
}

// Difficulty controls evidence volume and how aggressively the detective
// presses the suspect.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
)

// Difficulties lists the valid tiers in ascending order of severity.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}

// ParseDifficulty returns the canonical tier for s, or false if s is not a
// recognized tier.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Role is the part the suspect allegedly played in the heist crew.
type Role string

// Roles lists the valid crew roles.
var Roles = []Role{
	"Driver",
	"Lookout",
	"Hacker",
	"Muscle",
	"Inside Man",
	"Mastermind",
	"Tech Specialist",
	"Demolitions Expert",
}

// ValidRole reports whether s is a recognized crew role.
func ValidRole(s string) bool {
	for _, r := range Roles {
		if string(r) == s {
			return true
		}
	}
	return false
}
