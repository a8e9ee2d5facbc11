package memory

import (
	"context"
	"fmt"
	"sync"

	"pet-registry/internal/domain/accounts"
)

// AccountsRepo guarda credenciales y API keys en memoria.
// byKey es el índice inverso key -> email para resolver keys sin recorrer la tabla.
type AccountsRepo struct {
	mu        sync.RWMutex
	passwords map[string]string
	keys      map[string]string
	byKey     map[string]string
}

func NewAccountsRepo(seeds ...accounts.Seed) *AccountsRepo {
	r := &AccountsRepo{
		passwords: make(map[string]string),
		keys:      make(map[string]string),
		byKey:     make(map[string]string),
	}
	for _, s := range seeds {
		r.Add(s)
	}
	return r
}

// Add registra (o reemplaza) un usuario con su key.
func (r *AccountsRepo) Add(s accounts.Seed) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.keys[s.Email]; ok {
		delete(r.byKey, old)
	}
	r.passwords[s.Email] = s.Password
	r.keys[s.Email] = s.Key
	r.byKey[s.Key] = s.Email
}

func (r *AccountsRepo) PasswordFor(ctx context.Context, email string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pw, ok := r.passwords[email]
	if !ok {
		return "", fmt.Errorf("credential %q: %w", email, accounts.ErrNotFound)
	}
	return pw, nil
}

func (r *AccountsRepo) KeyFor(ctx context.Context, email string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.keys[email]
	if !ok {
		return "", fmt.Errorf("api key for %q: %w", email, accounts.ErrNotFound)
	}
	return key, nil
}

func (r *AccountsRepo) EmailForKey(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email, ok := r.byKey[key]
	if !ok {
		return "", fmt.Errorf("api key: %w", accounts.ErrNotFound)
	}
	return email, nil
}

var _ accounts.Repository = (*AccountsRepo)(nil)
