package memory

import (
	"context"
	"sync"
)

// SessionStore is an in-memory implementation of app.SessionStore, used in
// tests and redis-less runs. State appears on first use and is never deleted.
type SessionStore struct {
	mu    sync.Mutex
	users map[string]*userState
}

type userState struct {
	question string
	answer   string
	active   bool
	total    int64
	correct  int64
}

func NewSessionStore() *SessionStore {
	return &SessionStore{users: make(map[string]*userState)}
}

func (s *SessionStore) state(userID string) *userState {
	if st, ok := s.users[userID]; ok {
		return st
	}
	st := &userState{}
	s.users[userID] = st
	return st
}

func (s *SessionStore) GetActive(_ context.Context, userID string) (string, string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	if !st.active {
		return "", "", false, nil
	}
	return st.question, st.answer, true, nil
}

func (s *SessionStore) SetActive(_ context.Context, userID, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	st.question = question
	st.answer = answer
	st.active = true
	return nil
}

func (s *SessionStore) ClearActive(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	st.question = ""
	st.answer = ""
	st.active = false
	return nil
}

func (s *SessionStore) IncrTotal(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	st.total++
	return st.total, nil
}

func (s *SessionStore) IncrCorrect(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	st.correct++
	return st.correct, nil
}

func (s *SessionStore) Score(_ context.Context, userID string) (int64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	return st.correct, st.total, nil
}
