package accounts

import "context"

type Repository interface {
	PasswordFor(ctx context.Context, email string) (string, error)
	KeyFor(ctx context.Context, email string) (string, error)
	EmailForKey(ctx context.Context, key string) (string, error)
}
