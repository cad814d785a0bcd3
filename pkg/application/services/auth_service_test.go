package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
	"github.com/vsinha/cafeops/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/cafeops/pkg/infrastructure/session"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	creds := memory.NewCredentialRepository()
	if err := creds.Insert(&repositories.Credential{
		User: entities.User{
			ID:    "u1",
			Name:  "Manager",
			Email: "manager@cafe.com",
			Role:  entities.RoleManager,
		},
		PasswordHash: hash,
	}); err != nil {
		t.Fatalf("Failed to insert credential: %v", err)
	}

	return NewAuthService(creds, session.NewStore())
}

func TestAuthService_LoginSuccess(t *testing.T) {
	auth := newAuthService(t)

	user, sessionID, err := auth.Login("manager@cafe.com", "manager123")
	if err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}
	if sessionID == "" {
		t.Fatalf("Expected a session id")
	}
	if user.Role != entities.RoleManager {
		t.Errorf("Expected manager role, got %s", user.Role)
	}

	current, ok := auth.Current(sessionID)
	if !ok {
		t.Fatalf("Expected session to resolve")
	}
	if current.Email != "manager@cafe.com" {
		t.Errorf("Expected session user manager@cafe.com, got %s", current.Email)
	}
}

func TestAuthService_LoginFailuresLookAlike(t *testing.T) {
	auth := newAuthService(t)

	_, _, wrongPassword := auth.Login("manager@cafe.com", "nope")
	_, _, unknownEmail := auth.Login("ghost@cafe.com", "manager123")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("Expected indistinguishable failures, got %q and %q", wrongPassword, unknownEmail)
	}
}

func TestAuthService_Logout(t *testing.T) {
	auth := newAuthService(t)

	_, sessionID, err := auth.Login("manager@cafe.com", "manager123")
	if err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}

	auth.Logout(sessionID)
	if _, ok := auth.Current(sessionID); ok {
		t.Errorf("Expected session to be gone after logout")
	}

	// Unknown session ids are a no-op.
	auth.Logout("missing")
}
