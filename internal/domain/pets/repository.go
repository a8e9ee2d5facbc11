package pets

import "context"

// Repository mantiene el orden de inserción en List y ListByOwner.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, userID string) ([]Pet, error)

	// UpdateOwned aplica apply sobre la mascota con ese id y dueño, de forma atómica.
	UpdateOwned(ctx context.Context, id, userID string, apply func(*Pet)) (Pet, error)
	DeleteOwned(ctx context.Context, id, userID string) error
}
