// Package store provides the in-memory session store. Thread-safe; sessions
// are lost on restart by design.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/careerprep-ai/careerprep-api/internal/interview"
	"github.com/careerprep-ai/careerprep-api/internal/models"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for ids that were never issued or whose
// session has already completed.
var ErrSessionNotFound = errors.New("store: session not found")

// SessionStore is a mutex-guarded map of live interview sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.InterviewSession
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.InterviewSession)}
}

// Create builds a fresh session at the first stage, assigns it a new id and
// stores it.
func (s *SessionStore) Create(jobRole, resumeText string) *models.InterviewSession {
	sess := &models.InterviewSession{
		ID:         uuid.NewString(),
		JobRole:    jobRole,
		ResumeText: resumeText,
		Stage:      interview.First(),
		History:    []models.QA{},
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns a copy of the session with the given id.
func (s *SessionStore) Get(id string) (models.InterviewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return models.InterviewSession{}, ErrSessionNotFound
	}
	cp := *sess
	cp.History = append([]models.QA(nil), sess.History...)
	return cp, nil
}

// Update runs fn on the live session under the write lock, serializing
// concurrent mutations of the same session.
func (s *SessionStore) Update(id string, fn func(*models.InterviewSession)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	fn(sess)
	return nil
}

// Delete removes the session. Deleting an unknown id is a no-op.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
