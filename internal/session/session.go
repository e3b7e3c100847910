package session

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps the authenticated sessions of one process
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session // key: token -> value: session
}

// NewMemoryStore creates an empty session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*model.Session),
	}
}

// Open starts a session for client and returns it
func (s *MemoryStore) Open(client *model.Client) *model.Session {
	sess := &model.Session{
		Token:     utils.GenerateID(),
		Client:    client,
		StartedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return sess
}

// Get returns the session for token
func (s *MemoryStore) Get(token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("get session: %w", auctionerrors.ErrSessionNotFound)
	}
	return sess, nil
}

// Close ends the session for token
func (s *MemoryStore) Close(token string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("close session: %w", auctionerrors.ErrSessionNotFound)
	}
	delete(s.sessions, token)
	return sess, nil
}
