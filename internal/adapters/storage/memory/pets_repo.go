package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pet-registry/internal/domain/pets"
)

// petRepo guarda las mascotas en un slice para preservar el orden de inserción.
type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		items: make([]pets.Pet, 0),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if r.indexOf(p.ID) >= 0 {
		return fmt.Errorf("pet %s already exists", p.ID)
	}
	r.items = append(r.items, p)
	return nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, userID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *petRepo) UpdateOwned(ctx context.Context, id, userID string, apply func(*pets.Pet)) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOwned(id, userID)
	if i < 0 {
		return pets.Pet{}, fmt.Errorf("pet %s: %w", id, pets.ErrNotFound)
	}

	p := r.items[i]
	apply(&p)

	// id, dueño y fecha de alta no se pueden cambiar desde apply
	p.ID = r.items[i].ID
	p.UserID = r.items[i].UserID
	p.CreatedAt = r.items[i].CreatedAt

	r.items[i] = p
	return p, nil
}

func (r *petRepo) DeleteOwned(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOwned(id, userID)
	if i < 0 {
		return fmt.Errorf("pet %s: %w", id, pets.ErrNotFound)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *petRepo) indexOf(id string) int {
	for i, p := range r.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Un id ajeno y uno inexistente son indistinguibles para el llamador.
func (r *petRepo) indexOwned(id, userID string) int {
	i := r.indexOf(id)
	if i < 0 || r.items[i].UserID != userID {
		return -1
	}
	return i
}
