package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	passwords map[string]string
	keys      map[string]string
	err       error
}

func newTestRepo(seeds ...Seed) *testRepo {
	r := &testRepo{passwords: map[string]string{}, keys: map[string]string{}}
	for _, s := range seeds {
		r.passwords[s.Email] = s.Password
		r.keys[s.Email] = s.Key
	}
	return r
}

func (r *testRepo) PasswordFor(ctx context.Context, email string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	pw, ok := r.passwords[email]
	if !ok {
		return "", ErrNotFound
	}
	return pw, nil
}

func (r *testRepo) KeyFor(ctx context.Context, email string) (string, error) {
	k, ok := r.keys[email]
	if !ok {
		return "", ErrNotFound
	}
	return k, nil
}

// recorre la tabla como en el servicio original
func (r *testRepo) EmailForKey(ctx context.Context, key string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	for email, k := range r.keys {
		if k == key {
			return email, nil
		}
	}
	return "", ErrNotFound
}

func TestService_IssueKey(t *testing.T) {
	seed := DefaultSeed()
	svc := NewService(newTestRepo(seed))
	ctx := context.Background()

	key, err := svc.IssueKey(ctx, seed.Email, seed.Password)
	require.NoError(t, err)
	assert.Equal(t, seed.Key, key)

	cases := []struct{ email, password string }{
		{seed.Email, "wrongpassword"},
		{"nobody@example.com", seed.Password},
		{"", ""},
		{seed.Email, ""},
	}
	for _, c := range cases {
		_, err := svc.IssueKey(ctx, c.email, c.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "email=%q password=%q", c.email, c.password)
	}
}

func TestService_IssueKey_UserWithoutKey(t *testing.T) {
	repo := newTestRepo()
	repo.passwords["nokey@example.com"] = "pw"
	svc := NewService(repo)

	_, err := svc.IssueKey(context.Background(), "nokey@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_IssueKey_RepoFailureIsNotCredentialsError(t *testing.T) {
	repo := newTestRepo(DefaultSeed())
	repo.err = errors.New("boom")
	svc := NewService(repo)

	_, err := svc.IssueKey(context.Background(), "user@example.com", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Verify(t *testing.T) {
	seed := DefaultSeed()
	other := Seed{Credential: Credential{Email: "other@example.com", Password: "x"}, Key: "other-key"}
	svc := NewService(newTestRepo(seed, other))
	ctx := context.Background()

	c, err := svc.Verify(ctx, seed.Key)
	require.NoError(t, err)
	assert.Equal(t, seed.Email, c.UserID)

	c, err = svc.Verify(ctx, "other-key")
	require.NoError(t, err)
	assert.Equal(t, "other@example.com", c.UserID)

	_, err = svc.Verify(ctx, "wrongkey")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = svc.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
