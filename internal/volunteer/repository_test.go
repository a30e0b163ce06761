package volunteer_test

import (
	"context"
	"testing"
	"time"

	"github.com/Altraaa/creavibes-panel-api/internal/volunteer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var volunteerColumns = []string{
	"id", "name", "age", "address", "current_activity", "university",
	"has_event_experience", "event_experience_details", "user_id",
	"created_at", "updated_at",
}

func TestPostgresRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := volunteer.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, age").
			WithArgs("vol-1").
			WillReturnRows(mock.NewRows(volunteerColumns).
				AddRow("vol-1", "Charlie", 21, "Main St", "studying",
					pgtype.Text{String: "State University", Valid: true},
					false, pgtype.Text{String: "", Valid: true}, nil,
					time.Now(), time.Now()))

		v, err := r.GetByID(ctx, "vol-1")
		require.NoError(t, err)
		assert.Equal(t, "Charlie", v.Name)
		assert.Equal(t, "State University", v.University)
	})

	// Rows imported from the source system may carry NULL where API-created
	// rows write ''.
	t.Run("NULL university and experience details", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, age").
			WithArgs("vol-2").
			WillReturnRows(mock.NewRows(volunteerColumns).
				AddRow("vol-2", "Dana", 24, "Main St", "studying",
					nil, false, nil, nil, time.Now(), time.Now()))

		v, err := r.GetByID(ctx, "vol-2")
		require.NoError(t, err)
		assert.Empty(t, v.University)
		assert.Empty(t, v.EventExperienceDetails)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, age").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		v, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
