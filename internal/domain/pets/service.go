package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name       string
	AnimalType string
	Age        int
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(userID) == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:         uuid.NewString(),
		Name:       in.Name,
		AnimalType: in.AnimalType,
		Age:        in.Age,
		CreatedAt:  s.now(),
		UserID:     userID,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// List devuelve las mascotas del usuario si filter == "my_pets"; con
// cualquier otro valor (incluido vacío) devuelve todas, de todos los dueños.
func (s *Service) List(ctx context.Context, userID, filter string) ([]Pet, error) {
	if filter == FilterMyPets {
		return s.repo.ListByOwner(ctx, userID)
	}
	return s.repo.List(ctx)
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name       *string
	AnimalType *string
	Age        *int
}

func (s *Service) Update(ctx context.Context, id, userID string, in UpdateInput) (Pet, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(userID) == "" {
		return Pet{}, ErrNotFound
	}

	return s.repo.UpdateOwned(ctx, id, userID, func(p *Pet) {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.AnimalType != nil {
			p.AnimalType = *in.AnimalType
		}
		if in.Age != nil {
			p.Age = *in.Age
		}
	})
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(userID) == "" {
		return ErrNotFound
	}
	return s.repo.DeleteOwned(ctx, id, userID)
}
