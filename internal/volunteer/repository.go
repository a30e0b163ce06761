package volunteer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DB is the subset of pgxpool.Pool this repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const volunteerColumns = `id, name, age, address, current_activity, university, has_event_experience, event_experience_details, user_id, created_at, updated_at`

var sortColumns = map[string]bool{
	"name":       true,
	"age":        true,
	"university": true,
	"created_at": true,
}

func (r *PostgresRepository) List(ctx context.Context, filters ListFilters) ([]Volunteer, int64, error) {
	where, args := buildFilters(filters)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM volunteers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count volunteers: %w", err)
	}

	sortBy := filters.Page.SortBy
	if !sortColumns[sortBy] {
		sortBy = "created_at"
	}

	query := fmt.Sprintf(`SELECT %s FROM volunteers%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		volunteerColumns, where, sortBy, strings.ToUpper(filters.Page.SortOrder),
		len(args)+1, len(args)+2)
	args = append(args, filters.Page.PerPage, filters.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list volunteers: %w", err)
	}

	return volunteers, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE id = $1 LIMIT 1;`

	v, err := scanVolunteer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *Volunteer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO volunteers (id, name, age, address, current_activity, university, has_event_experience, event_experience_details, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, v.ID, v.Name, v.Age, v.Address, v.CurrentActivity, v.University,
		v.HasEventExperience, v.EventExperienceDetails, v.UserID, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create volunteer: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, v *Volunteer) error {
	_, err := r.db.Exec(ctx, `
		UPDATE volunteers
		SET name = $2, age = $3, address = $4, current_activity = $5, university = $6,
		    has_event_experience = $7, event_experience_details = $8, updated_at = $9
		WHERE id = $1
	`, v.ID, v.Name, v.Age, v.Address, v.CurrentActivity, v.University,
		v.HasEventExperience, v.EventExperienceDetails, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM volunteers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete volunteer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// university and event_experience_details are nullable; imported rows may
// carry NULL where API-created rows write ''.
func scanVolunteer(row pgx.Row) (*Volunteer, error) {
	var v Volunteer
	var university, experienceDetails pgtype.Text
	err := row.Scan(
		&v.ID, &v.Name, &v.Age, &v.Address, &v.CurrentActivity, &university,
		&v.HasEventExperience, &experienceDetails, &v.UserID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.University = university.String
	v.EventExperienceDetails = experienceDetails.String
	return &v, nil
}

func buildFilters(filters ListFilters) (string, []any) {
	var conds []string
	var args []any

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR university ILIKE $%d OR current_activity ILIKE $%d)", n, n, n))
	}
	if filters.University != "" {
		args = append(args, filters.University)
		conds = append(conds, fmt.Sprintf("university = $%d", len(args)))
	}
	if filters.HasEventExperience != nil {
		args = append(args, *filters.HasEventExperience)
		conds = append(conds, fmt.Sprintf("has_event_experience = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}
