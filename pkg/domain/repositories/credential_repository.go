package repositories

import "github.com/vsinha/cafeops/pkg/domain/entities"

// Credential pairs a user identity with its password hash. The hash is
// opaque to the core; only the auth service compares against it.
type Credential struct {
	User         entities.User
	PasswordHash []byte
}

// CredentialRepository provides lookup of sign-in credentials by email
type CredentialRepository interface {
	GetByEmail(email string) (*Credential, error)
	Insert(cred *Credential) error
}
