package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const userColumns = `id, name, email, password_hash, is_active, role, last_login_at, last_login_ip, created_at, updated_at`

// sortColumns is the allow-list for ORDER BY; anything else falls back to
// created_at.
var sortColumns = map[string]bool{
	"name":          true,
	"email":         true,
	"role":          true,
	"created_at":    true,
	"last_login_at": true,
}

func (r *PostgresRepository) List(ctx context.Context, filters ListFilters) ([]domain.User, int64, error) {
	where, args := buildFilters(filters)

	var total int64
	countQuery := `SELECT count(*) FROM users` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	sortBy := filters.Page.SortBy
	if !sortColumns[sortBy] {
		sortBy = "created_at"
	}

	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		userColumns, where, sortBy, strings.ToUpper(filters.Page.SortOrder),
		len(args)+1, len(args)+2)
	args = append(args, filters.Page.PerPage, filters.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsActive,
			&u.Role, &u.LastLoginAt, &u.LastLoginIP, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_active, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Name, user.Email, user.PasswordHash, user.IsActive, user.Role,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, is_active = $5, role = $6, updated_at = $7
		WHERE id = $1
	`, user.ID, user.Name, user.Email, user.PasswordHash, user.IsActive, user.Role, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1 LIMIT 1;`, userColumns, column)
	row := r.db.QueryRow(ctx, query, value)

	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsActive,
		&u.Role, &u.LastLoginAt, &u.LastLoginIP, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return &u, nil
}

func buildFilters(filters ListFilters) (string, []any) {
	var conds []string
	var args []any

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", n, n))
	}
	if filters.Role != "" {
		args = append(args, filters.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if filters.IsActive != nil {
		args = append(args, *filters.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}
