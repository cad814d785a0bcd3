package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
	"github.com/vsinha/cafeops/pkg/infrastructure/session"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so a failed login never reveals which one it was
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService verifies credentials against stored bcrypt hashes and hands
// out session ids. The resulting role only gates what the dashboard shows;
// no core operation checks it.
type AuthService struct {
	credentials repositories.CredentialRepository
	sessions    *session.Store
}

// NewAuthService creates an auth service
func NewAuthService(credentials repositories.CredentialRepository, sessions *session.Store) *AuthService {
	return &AuthService{
		credentials: credentials,
		sessions:    sessions,
	}
}

// Login verifies the password and opens a session for the user
func (s *AuthService) Login(email, password string) (entities.User, string, error) {
	cred, err := s.credentials.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.User{}, "", ErrInvalidCredentials
		}
		return entities.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(cred.User)
	if err != nil {
		return entities.User{}, "", err
	}
	return cred.User, sessionID, nil
}

// Current returns the signed-in user for a session id
func (s *AuthService) Current(sessionID string) (entities.User, bool) {
	return s.sessions.Get(sessionID)
}

// Logout closes a session; closing an unknown session is a no-op
func (s *AuthService) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}
