package handler

import (
	"sync"

	"cash-audit/internal/domain"
	"cash-audit/internal/usecase"
)

// SessionStore keeps the audit sessions of a running server in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*usecase.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*usecase.Session)}
}

func (st *SessionStore) Put(s *usecase.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *SessionStore) Get(id string) (*usecase.Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}
