package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Pet
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.items = append(r.items, p)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	return append([]Pet(nil), r.items...), nil
}

func (r *testRepo) ListByOwner(ctx context.Context, userID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) UpdateOwned(ctx context.Context, id, userID string, apply func(*Pet)) (Pet, error) {
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			apply(&r.items[i])
			return r.items[i], nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) DeleteOwned(ctx context.Context, id, userID string) error {
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestService(now time.Time) (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_SetsOwnerIDAndTimestamp(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)

	p, err := svc.Create(context.Background(), "owner@example.com", CreateInput{
		Name: "Buddy", AnimalType: "Dog", Age: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", p.UserID)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, "Buddy", p.Name)
	assert.Equal(t, "Dog", p.AnimalType)
	assert.Equal(t, 3, p.Age)

	parsed, err := uuid.Parse(p.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	require.Len(t, repo.items, 1)
	assert.Equal(t, p, repo.items[0])
}

func TestService_Create_UniqueIDs(t *testing.T) {
	svc, _ := newTestService(time.Now())

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		p, err := svc.Create(context.Background(), "u", CreateInput{Name: "n", AnimalType: "t", Age: i})
		require.NoError(t, err)
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestService_Create_RequiresOwner(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.Create(context.Background(), " ", CreateInput{Name: "Buddy", AnimalType: "Dog", Age: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_Filter(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()

	a1, _ := svc.Create(ctx, "a", CreateInput{Name: "a1", AnimalType: "Dog", Age: 1})
	b1, _ := svc.Create(ctx, "b", CreateInput{Name: "b1", AnimalType: "Cat", Age: 2})
	a2, _ := svc.Create(ctx, "a", CreateInput{Name: "a2", AnimalType: "Dog", Age: 3})

	mine, err := svc.List(ctx, "a", FilterMyPets)
	require.NoError(t, err)
	assert.Equal(t, []Pet{a1, a2}, mine)

	// cualquier otro valor => todas
	for _, f := range []string{"", "all", "MY_PETS"} {
		all, err := svc.List(ctx, "a", f)
		require.NoError(t, err)
		assert.Equal(t, []Pet{a1, b1, a2}, all, "filter %q", f)
	}
}

func TestService_Update_OnlySuppliedFields(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "a", CreateInput{Name: "Buddy", AnimalType: "Dog", Age: 3})

	name := "Buddy Updated"
	got, err := svc.Update(ctx, p.ID, "a", UpdateInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Buddy Updated", got.Name)
	assert.Equal(t, "Dog", got.AnimalType)
	assert.Equal(t, 3, got.Age)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
	assert.Equal(t, p.ID, got.ID)
}

func TestService_Update_NoFieldsIsNoop(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "a", CreateInput{Name: "Buddy", AnimalType: "Dog", Age: 3})

	got, err := svc.Update(ctx, p.ID, "a", UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_Update_OtherOwnerLooksLikeMissing(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "a", CreateInput{Name: "Buddy", AnimalType: "Dog", Age: 3})

	age := 10
	_, errOther := svc.Update(ctx, p.ID, "b", UpdateInput{Age: &age})
	_, errMissing := svc.Update(ctx, "nonexistentid", "b", UpdateInput{Age: &age})

	assert.ErrorIs(t, errOther, ErrNotFound)
	assert.ErrorIs(t, errMissing, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService(time.Now())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "a", CreateInput{Name: "Buddy", AnimalType: "Dog", Age: 3})

	assert.ErrorIs(t, svc.Delete(ctx, p.ID, "b"), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, p.ID, "a"))
	assert.Empty(t, repo.items)

	err := svc.Delete(ctx, p.ID, "a")
	assert.True(t, errors.Is(err, ErrNotFound))
}
