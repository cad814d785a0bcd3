package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// CredentialRepository provides in-memory credential storage keyed by email
type CredentialRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*repositories.Credential
}

// NewCredentialRepository creates a new in-memory credential repository
func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{
		byEmail: make(map[string]*repositories.Credential),
	}
}

// Verify interface compliance
var _ repositories.CredentialRepository = (*CredentialRepository)(nil)

// GetByEmail returns the credential for the given email, case-insensitive
func (r *CredentialRepository) GetByEmail(email string) (*repositories.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, fmt.Errorf("credential for %s: %w", email, repositories.ErrNotFound)
	}
	cred := *stored
	cred.PasswordHash = append([]byte(nil), stored.PasswordHash...)
	return &cred, nil
}

// Insert stores a credential, replacing any existing one for the same email
func (r *CredentialRepository) Insert(cred *repositories.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cred
	stored.PasswordHash = append([]byte(nil), cred.PasswordHash...)
	r.byEmail[strings.ToLower(cred.User.Email)] = &stored
	return nil
}
