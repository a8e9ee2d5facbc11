package accounts

import (
	"context"
	"errors"
	"fmt"

	"pet-registry/internal/ports/auth"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidKey         = errors.New("invalid auth key")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// IssueKey canjea email+password por la API key del usuario.
// Usuario inexistente y password incorrecto devuelven el mismo error.
func (s *Service) IssueKey(ctx context.Context, email, password string) (string, error) {
	stored, err := s.repo.PasswordFor(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup credentials: %w", err)
	}
	if stored != password {
		return "", ErrInvalidCredentials
	}

	key, err := s.repo.KeyFor(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// usuario sin key: se trata igual que credenciales inválidas
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup key: %w", err)
	}
	return key, nil
}

// Verify implementa auth.Verifier.
func (s *Service) Verify(ctx context.Context, key string) (auth.Claims, error) {
	if key == "" {
		return auth.Claims{}, ErrInvalidKey
	}
	email, err := s.repo.EmailForKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.Claims{}, ErrInvalidKey
		}
		return auth.Claims{}, fmt.Errorf("resolve key: %w", err)
	}
	return auth.Claims{UserID: email}, nil
}

var _ auth.Verifier = (*Service)(nil)
