package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teamcalendar/internal/domain"
)

type authService struct {
	credentialRepo domain.CredentialRepository
	txManager      domain.TransactionManager
	hasher         domain.PasswordHasher
	contextTimeout time.Duration
	now            func() time.Time
}

// NewAuthService creates an AuthService that checks passwords against the single stored credential.
func NewAuthService(credentialRepo domain.CredentialRepository, txManager domain.TransactionManager, hasher domain.PasswordHasher, timeout time.Duration) domain.AuthService {
	return &authService{
		credentialRepo: credentialRepo,
		txManager:      txManager,
		hasher:         hasher,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *authService) Authenticate(ctx context.Context, password string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cred, err := s.credentialRepo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load credential: %w", err)
	}
	return s.matches(cred, password)
}

func (s *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if newPassword == "" {
		return false, fmt.Errorf("%w: new password is required", domain.ErrInvalidInput)
	}

	changed := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cred, err := s.credentialRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		ok, err := s.matches(cred, oldPassword)
		if err != nil || !ok {
			return err
		}
		next, err := s.newCredential(newPassword)
		if err != nil {
			return err
		}
		if err := s.credentialRepo.Update(ctx, next); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("change password: %w", err)
	}
	return changed, nil
}

func (s *authService) EnsureCredential(ctx context.Context, defaultPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if defaultPassword == "" {
		return fmt.Errorf("%w: default password is required", domain.ErrInvalidInput)
	}
	cred, err := s.newCredential(defaultPassword)
	if err != nil {
		return err
	}
	if _, err := s.credentialRepo.CreateIfMissing(ctx, cred); err != nil {
		return fmt.Errorf("store default credential: %w", err)
	}
	return nil
}

func (s *authService) matches(cred *domain.Credential, password string) (bool, error) {
	err := s.hasher.Compare(cred.Hash, cred.Salt, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrPasswordMismatch):
		return false, nil
	default:
		return false, fmt.Errorf("compare password: %w", err)
	}
}

func (s *authService) newCredential(password string) (*domain.Credential, error) {
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}
	return &domain.Credential{Hash: hash, Salt: salt, UpdatedAt: s.now().UTC()}, nil
}
