// Package session owns the per-suspect interrogation state. The store is
// deliberately volatile process memory: losing sessions on restart is an
// accepted trade-off for this game's trust model, and sessions are keyed by
// the caller-supplied player name, so two players sharing a display name
// collide into one session.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alibigame/alibi/internal/evidence"
	"github.com/alibigame/alibi/internal/models"
	"github.com/alibigame/alibi/internal/scenario"
)

// Store maps player names to sessions behind a single mutex. The lock is held
// only for map reads and writes, never across the generation backend call.
type Store struct {
	logger    *slog.Logger
	scenarios *scenario.Generator
	evidence  *evidence.Generator
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewStore(
	logger *slog.Logger,
	scenarios *scenario.Generator,
	evidenceGen *evidence.Generator,
	ttl time.Duration,
) *Store {
	return &Store{
		logger:    logger.With("source", "SessionStore"),
		scenarios: scenarios,
		evidence:  evidenceGen,
		ttl:       ttl,
		sessions:  make(map[string]*models.Session),
	}
}

// ResolveParams carries the per-request inputs for Resolve.
type ResolveParams struct {
	PlayerName string
	// FirstMessage forces a brand-new session even when one exists.
	FirstMessage bool
	// Transcript is the caller's copy of the conversation. On continuation it
	// wins over the stored transcript when non-empty.
	Transcript []models.ConversationTurn
	Difficulty models.Difficulty
	// EvidenceOverride replaces the stored evidence list when non-empty.
	EvidenceOverride []string
}

// Resolve returns the session for the player, creating one when the request
// is a first message, no session exists, or the stored session fails
// structural validation. The returned session is a detached copy; mutations
// flow back through Append.
func (s *Store) Resolve(ctx context.Context, p ResolveParams) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.sessions[p.PlayerName]
	if p.FirstMessage || !existing.Valid() {
		if existing != nil && !existing.Valid() {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "recreating structurally invalid session",
				slog.String("playerName", p.PlayerName))
		}
		sc := s.scenarios.Generate()
		ev := p.EvidenceOverride
		if len(ev) == 0 {
			ev = s.evidence.Generate(sc, p.PlayerName, p.Difficulty)
		}
		fresh := &models.Session{
			Scenario:    sc,
			Evidence:    ev,
			Transcript:  nil,
			LastTouched: time.Now(),
		}
		s.sessions[p.PlayerName] = fresh
		return copySession(fresh), true
	}

	if len(p.Transcript) > 0 {
		existing.Transcript = append([]models.ConversationTurn(nil), p.Transcript...)
	}
	if len(p.EvidenceOverride) > 0 {
		existing.Evidence = append([]string(nil), p.EvidenceOverride...)
	}
	existing.LastTouched = time.Now()
	return copySession(existing), false
}

// Append adds turns to the player's transcript and refreshes the inactivity
// timestamp. A session evicted while the backend call was in flight is left
// alone; the next request recreates it.
func (s *Store) Append(ctx context.Context, playerName string, turns ...models.ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[playerName]
	if !ok {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "dropping transcript for evicted session",
			slog.String("playerName", playerName))
		return
	}
	sess.Transcript = append(sess.Transcript, turns...)
	sess.LastTouched = time.Now()
}

// Evict removes every session untouched for longer than the inactivity
// window and returns the number removed.
func (s *Store) Evict() int {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for name, sess := range s.sessions {
		if sess.LastTouched.Before(cutoff) {
			delete(s.sessions, name)
			evicted++
		}
	}
	return evicted
}

// StartSweeper runs Evict on a fixed interval until ctx is cancelled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if evicted := s.Evict(); evicted > 0 {
					s.logger.LogAttrs(ctx, slog.LevelInfo, "evicted stale sessions",
						slog.Int("count", evicted))
				}
			}
		}
	}()
}

// Reset deletes the named session and reports whether it existed.
func (s *Store) Reset(playerName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[playerName]; !ok {
		return false
	}
	delete(s.sessions, playerName)
	return true
}

// ResetAll empties the store and returns the number of sessions removed.
func (s *Store) ResetAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.sessions)
	s.sessions = make(map[string]*models.Session)
	return n
}

// Count returns the number of resident sessions.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Summary is the operational view of a session exposed by the debug surface.
type Summary struct {
	Scenario    models.Scenario `json:"scenario"`
	Turns       int             `json:"turns"`
	Evidence    int             `json:"evidence"`
	LastTouched time.Time       `json:"lastTouched"`
}

// Snapshot returns a summary of every resident session.
func (s *Store) Snapshot() map[string]Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Summary, len(s.sessions))
	for name, sess := range s.sessions {
		out[name] = Summary{
			Scenario:    sess.Scenario,
			Turns:       len(sess.Transcript),
			Evidence:    len(sess.Evidence),
			LastTouched: sess.LastTouched,
		}
	}
	return out
}

func copySession(sess *models.Session) models.Session {
	return models.Session{
		Scenario:    sess.Scenario,
		Evidence:    append([]string(nil), sess.Evidence...),
		Transcript:  append([]models.ConversationTurn(nil), sess.Transcript...),
		LastTouched: sess.LastTouched,
	}
}
