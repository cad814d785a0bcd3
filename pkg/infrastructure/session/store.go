// Package session holds the signed-in user for each session. The user is
// kept as a JSON snapshot and rehydrated verbatim on read, with no expiry
// check; sessions are process-local and vanish on restart.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/cafeops/pkg/domain/entities"
)

// Store keeps serialized users keyed by session id
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		records: make(map[string][]byte),
	}
}

// Create serializes the user under a fresh session id
func (s *Store) Create(user entities.User) (string, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to serialize session user: %w", err)
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.records[id] = raw
	s.mu.Unlock()
	return id, nil
}

// Get rehydrates the user for a session id. The second return is false when
// the session does not exist.
func (s *Store) Get(sessionID string) (entities.User, bool) {
	s.mu.RLock()
	raw, exists := s.records[sessionID]
	s.mu.RUnlock()
	if !exists {
		return entities.User{}, false
	}

	var user entities.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return entities.User{}, false
	}
	return user, true
}

// Delete forgets a session; deleting an unknown session is a no-op
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.records, sessionID)
	s.mu.Unlock()
}
