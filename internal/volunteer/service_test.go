package volunteer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	autherror "github.com/Altraaa/creavibes-panel-api/internal/errors"
	"github.com/Altraaa/creavibes-panel-api/internal/volunteer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVolunteerRepo struct {
	volunteers map[string]*volunteer.Volunteer
	err        error
}

func newFakeVolunteerRepo(vs ...*volunteer.Volunteer) *fakeVolunteerRepo {
	r := &fakeVolunteerRepo{volunteers: make(map[string]*volunteer.Volunteer)}
	for _, v := range vs {
		r.volunteers[v.ID] = v
	}
	return r
}

func (r *fakeVolunteerRepo) List(_ context.Context, _ volunteer.ListFilters) ([]volunteer.Volunteer, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	out := make([]volunteer.Volunteer, 0, len(r.volunteers))
	for _, v := range r.volunteers {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVolunteerRepo) GetByID(_ context.Context, id string) (*volunteer.Volunteer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.volunteers[id], nil
}

func (r *fakeVolunteerRepo) Create(_ context.Context, v *volunteer.Volunteer) error {
	if r.err != nil {
		return r.err
	}
	r.volunteers[v.ID] = v
	return nil
}

func (r *fakeVolunteerRepo) Update(_ context.Context, v *volunteer.Volunteer) error {
	if r.err != nil {
		return r.err
	}
	r.volunteers[v.ID] = v
	return nil
}

func (r *fakeVolunteerRepo) Delete(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.volunteers[id]; !ok {
		return false, nil
	}
	delete(r.volunteers, id)
	return true, nil
}

func newVolunteerService(repo volunteer.Repository) *volunteer.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return volunteer.NewService(repo, logger)
}

func sampleVolunteer() *volunteer.Volunteer {
	return &volunteer.Volunteer{
		ID:                 "vol-1",
		Name:               "Charlie",
		Age:                21,
		University:         "State University",
		HasEventExperience: false,
	}
}

func TestVolunteerService_List(t *testing.T) {
	svc := newVolunteerService(newFakeVolunteerRepo(sampleVolunteer()))

	out, meta, err := svc.List(context.Background(), volunteer.ListFilters{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), meta.Total)
}

func TestVolunteerService_GetByID(t *testing.T) {
	svc := newVolunteerService(newFakeVolunteerRepo(sampleVolunteer()))

	t.Run("success", func(t *testing.T) {
		v, err := svc.GetByID(context.Background(), "vol-1")
		require.NoError(t, err)
		assert.Equal(t, "Charlie", v.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, autherror.ErrVolunteerNotFound)
	})
}

func TestVolunteerService_Create(t *testing.T) {
	repo := newFakeVolunteerRepo()
	svc := newVolunteerService(repo)

	v, err := svc.Create(context.Background(), volunteer.CreateInput{
		Name:                   "Dana",
		Age:                    24,
		University:             "Tech Institute",
		HasEventExperience:     true,
		EventExperienceDetails: "ran registration desk",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.False(t, v.CreatedAt.IsZero())
	assert.Contains(t, repo.volunteers, v.ID)
}

func TestVolunteerService_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		repo := newFakeVolunteerRepo(sampleVolunteer())
		svc := newVolunteerService(repo)

		activity := "final year project"
		v, err := svc.Update(context.Background(), "vol-1", volunteer.UpdateInput{
			CurrentActivity: &activity,
		})
		require.NoError(t, err)
		assert.Equal(t, "final year project", v.CurrentActivity)
		assert.Equal(t, "Charlie", v.Name)
	})

	t.Run("unknown volunteer", func(t *testing.T) {
		svc := newVolunteerService(newFakeVolunteerRepo())

		name := "Nobody"
		_, err := svc.Update(context.Background(), "missing", volunteer.UpdateInput{Name: &name})
		assert.ErrorIs(t, err, autherror.ErrVolunteerNotFound)
	})
}

func TestVolunteerService_Delete(t *testing.T) {
	repo := newFakeVolunteerRepo(sampleVolunteer())
	svc := newVolunteerService(repo)

	require.NoError(t, svc.Delete(context.Background(), "vol-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "vol-1"), autherror.ErrVolunteerNotFound)

	repo.err = errors.New("db down")
	assert.EqualError(t, svc.Delete(context.Background(), "vol-1"), "db down")
}
