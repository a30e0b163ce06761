package user_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	autherror "github.com/Altraaa/creavibes-panel-api/internal/errors"
	"github.com/Altraaa/creavibes-panel-api/internal/user"
	"github.com/Altraaa/creavibes-panel-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory Repository keyed by user ID.
type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) List(_ context.Context, _ user.ListFilters) ([]domain.User, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed-" + password, nil }
func (fakeHasher) Verify(password, digest string) bool  { return "hashed-"+password == digest }

func newUserService(repo user.Repository) *user.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return user.NewService(repo, fakeHasher{}, logger)
}

func existingUser() *domain.User {
	return &domain.User{
		ID:           "user-1",
		Name:         "Alice",
		Email:        "alice@x.com",
		PasswordHash: "hashed-old",
		IsActive:     true,
		Role:         "user",
	}
}

func TestUserService_List(t *testing.T) {
	svc := newUserService(newFakeUserRepo(existingUser()))

	out, meta, err := svc.List(context.Background(), user.ListFilters{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), meta.Total)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, pagination.DefaultPerPage, meta.PerPage)
}

func TestUserService_GetByID(t *testing.T) {
	svc := newUserService(newFakeUserRepo(existingUser()))

	t.Run("success", func(t *testing.T) {
		out, err := svc.GetByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", out.Email)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	})
}

func TestUserService_Create(t *testing.T) {
	t.Run("applies defaults and hashes the password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newUserService(repo)

		out, err := svc.Create(context.Background(), user.CreateInput{
			Name:     "Bob",
			Email:    "bob@x.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, "user", out.Role)
		assert.True(t, out.IsActive)

		stored := repo.users[out.ID]
		require.NotNil(t, stored)
		assert.Equal(t, "hashed-secret123", stored.PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo(existingUser()))

		_, err := svc.Create(context.Background(), user.CreateInput{
			Name:     "Alice Clone",
			Email:    "alice@x.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.err = errors.New("db down")
		svc := newUserService(repo)

		_, err := svc.Create(context.Background(), user.CreateInput{
			Name: "Bob", Email: "bob@x.com", Password: "secret123",
		})
		assert.EqualError(t, err, "db down")
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		repo := newFakeUserRepo(existingUser())
		svc := newUserService(repo)

		name := "Alice Renamed"
		out, err := svc.Update(context.Background(), "user-1", user.UpdateInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alice Renamed", out.Name)
		assert.Equal(t, "alice@x.com", out.Email)
		assert.Equal(t, "hashed-old", repo.users["user-1"].PasswordHash)
	})

	t.Run("rehashes a new password", func(t *testing.T) {
		repo := newFakeUserRepo(existingUser())
		svc := newUserService(repo)

		password := "brand-new"
		_, err := svc.Update(context.Background(), "user-1", user.UpdateInput{Password: &password})
		require.NoError(t, err)
		assert.Equal(t, "hashed-brand-new", repo.users["user-1"].PasswordHash)
	})

	t.Run("email change to a taken address is rejected", func(t *testing.T) {
		other := &domain.User{ID: "user-2", Email: "taken@x.com"}
		svc := newUserService(newFakeUserRepo(existingUser(), other))

		email := "taken@x.com"
		_, err := svc.Update(context.Background(), "user-1", user.UpdateInput{Email: &email})
		assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())

		name := "Nobody"
		_, err := svc.Update(context.Background(), "missing", user.UpdateInput{Name: &name})
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	repo := newFakeUserRepo(existingUser())
	svc := newUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), "user-1"))
	assert.Empty(t, repo.users)

	assert.ErrorIs(t, svc.Delete(context.Background(), "user-1"), autherror.ErrUserNotFound)
}
