package domain

import (
	"context"
	"time"
)

// Credential is the single stored hash of the shared login password.
type Credential struct {
	Hash      string
	Salt      string
	UpdatedAt time.Time
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	// Compare returns ErrPasswordMismatch when password does not match hash.
	Compare(hash, salt, password string) error
}

// CredentialRepository defines the interface for credential storage.
type CredentialRepository interface {
	// Get returns the stored credential. ErrNotFound when it was never initialized.
	Get(ctx context.Context) (*Credential, error)
	// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
	GetForUpdate(ctx context.Context) (*Credential, error)
	// CreateIfMissing stores c unless a credential already exists. Reports whether it was stored.
	CreateIfMissing(ctx context.Context, c *Credential) (bool, error)
	Update(ctx context.Context, c *Credential) error
}

// AuthService is the shared-password login gate.
type AuthService interface {
	// Authenticate reports whether password matches the stored credential. A mismatch is not an error.
	Authenticate(ctx context.Context, password string) (bool, error)
	// ChangePassword replaces the credential when oldPassword matches; false leaves it untouched.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (bool, error)
	// EnsureCredential stores defaultPassword when no credential exists yet.
	EnsureCredential(ctx context.Context, defaultPassword string) error
}
