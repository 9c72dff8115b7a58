// Package session manages the chat widget's conversational threads: multiple
// independent sessions, persisted across reloads, with the active selection
// deliberately reset on every fresh load.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"storefront-core/internal/domain"
	"storefront-core/internal/storage"

	"github.com/google/uuid"
)

// StorageKey is the fixed namespace the session collection lives under.
const StorageKey = "storefront.chat.sessions"

// titleLimit bounds the auto-derived session title, in runes.
const titleLimit = 30

// Store holds the session registry. Sessions are ordered newest-first by
// creation. Like the cart store it is confined to one goroutine and persists
// after every mutation; a failed write never rolls back in-memory state.
//
// The active pointer is intentionally not persisted: a fresh load starts
// with no active session, so opening the chat creates a new one instead of
// resuming the last.
type Store struct {
	backend storage.Store
	logger  *log.Logger
	now     func() time.Time
	newID   func() string

	sessions []domain.ChatSession
	activeID string
}

type snapshot struct {
	Sessions []domain.ChatSession `json:"sessions"`
}

// NewStore rehydrates the session collection from the backend. Unreadable
// snapshots are discarded with a log line, not surfaced.
func NewStore(ctx context.Context, backend storage.Store, logger *log.Logger) *Store {
	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	data, err := backend.Get(ctx, StorageKey)
	switch {
	case err == nil:
		var snap snapshot
		if jsonErr := json.Unmarshal(data, &snap); jsonErr != nil {
			logger.Printf("session: discarding unreadable snapshot: %v", jsonErr)
		} else {
			s.sessions = snap.Sessions
		}
	case errors.Is(err, domain.ErrNotFound):
		// first load
	default:
		logger.Printf("session: load snapshot: %v", err)
	}
	return s
}

// CreateSession allocates a new session seeded with one assistant message,
// prepends it to the registry and makes it active. Returns the new id.
func (s *Store) CreateSession(ctx context.Context, seedText string) string {
	now := s.now()
	sess := domain.ChatSession{
		ID:    s.newID(),
		Title: "New conversation",
		Messages: []domain.ChatMessage{{
			ID:         s.newID(),
			Role:       domain.RoleAssistant,
			Text:       seedText,
			ObservedAt: now,
		}},
		CreatedAt:    now,
		LastActivity: now,
	}
	s.sessions = append([]domain.ChatSession{sess}, s.sessions...)
	s.activeID = sess.ID
	s.persist(ctx)
	return sess.ID
}

// EnsureActiveSession returns the active session id, creating a new session
// when the pointer is unset or no longer resolves to a live entry. Callers
// appending messages go through this first.
func (s *Store) EnsureActiveSession(ctx context.Context, seedText string) string {
	if s.activeID != "" && s.indexOf(s.activeID) >= 0 {
		return s.activeID
	}
	return s.CreateSession(ctx, seedText)
}

// AppendMessage appends to the active session. The session's title is
// derived from its first user message, truncated at titleLimit runes with
// an ellipsis marker. Without an active session this is a no-op; the caller
// contract is to call EnsureActiveSession first.
func (s *Store) AppendMessage(ctx context.Context, role domain.Role, text string) {
	idx := s.indexOf(s.activeID)
	if s.activeID == "" || idx < 0 {
		return
	}
	sess := &s.sessions[idx]
	now := s.now()

	if role == domain.RoleUser && !hasUserMessage(*sess) {
		sess.Title = deriveTitle(text)
	}
	sess.Messages = append(sess.Messages, domain.ChatMessage{
		ID:         s.newID(),
		Role:       role,
		Text:       text,
		ObservedAt: now,
	})
	sess.LastActivity = now
	s.persist(ctx)
}

// SwitchSession activates the given session if it exists; unknown ids are a
// no-op.
func (s *Store) SwitchSession(id string) {
	if s.indexOf(id) >= 0 {
		s.activeID = id
	}
}

// DeleteSession removes the session. When the active session is deleted the
// pointer fails over to the most recent remaining session, or to none.
func (s *Store) DeleteSession(ctx context.Context, id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	if s.activeID == id {
		if len(s.sessions) > 0 {
			s.activeID = s.sessions[0].ID
		} else {
			s.activeID = ""
		}
	}
	s.persist(ctx)
}

// UpdateSessionSeedMessage rewrites the active session's seed assistant
// message in place, used when the UI locale changes after the session was
// created. Only the first message's text changes.
func (s *Store) UpdateSessionSeedMessage(ctx context.Context, text string) {
	idx := s.indexOf(s.activeID)
	if s.activeID == "" || idx < 0 {
		return
	}
	sess := &s.sessions[idx]
	if len(sess.Messages) == 0 || sess.Messages[0].Role != domain.RoleAssistant {
		return
	}
	sess.Messages[0].Text = text
	s.persist(ctx)
}

// ReplaceMessages swaps the session's message list wholesale with the
// authoritative remote list. This is the store-side primitive of the
// reconciliation protocol; the count comparison lives with the caller.
func (s *Store) ReplaceMessages(ctx context.Context, id string, remote []domain.ChatMessage) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	sess := &s.sessions[idx]
	sess.Messages = make([]domain.ChatMessage, len(remote))
	copy(sess.Messages, remote)
	sess.LastActivity = s.now()
	s.persist(ctx)
}

// ActiveSession returns a copy of the active session, or false when none is
// set.
func (s *Store) ActiveSession() (domain.ChatSession, bool) {
	idx := s.indexOf(s.activeID)
	if s.activeID == "" || idx < 0 {
		return domain.ChatSession{}, false
	}
	return copySession(s.sessions[idx]), true
}

// Sessions returns copies of all sessions, newest-first.
func (s *Store) Sessions() []domain.ChatSession {
	out := make([]domain.ChatSession, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = copySession(sess)
	}
	return out
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(snapshot{Sessions: s.sessions})
	if err != nil {
		s.logger.Printf("session: encode snapshot: %v", err)
		return
	}
	if err := s.backend.Set(ctx, StorageKey, data); err != nil {
		s.logger.Printf("session: persist snapshot: %v", err)
	}
}

func hasUserMessage(sess domain.ChatSession) bool {
	for _, m := range sess.Messages {
		if m.Role == domain.RoleUser {
			return true
		}
	}
	return false
}

func deriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleLimit {
		return text
	}
	return string(runes[:titleLimit]) + "..."
}

func copySession(sess domain.ChatSession) domain.ChatSession {
	out := sess
	out.Messages = make([]domain.ChatMessage, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	return out
}
