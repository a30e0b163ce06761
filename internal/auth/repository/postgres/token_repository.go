package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type TokenRepository struct {
	db DB
}

func NewTokenRepository(db DB) *TokenRepository {
	return &TokenRepository{db: db}
}

const revokeAllQuery = `
	UPDATE access_tokens
	SET revoked = true
	WHERE user_id = $1 AND revoked = false`

const insertTokenQuery = `
	INSERT INTO access_tokens (id, user_id, secret_hash, revoked, created_at)
	VALUES ($1, $2, $3, $4, $5)`

func (r *TokenRepository) Store(ctx context.Context, token *domain.AccessToken) error {
	_, err := r.db.Exec(ctx, insertTokenQuery,
		token.ID, token.UserID, token.SecretHash, token.Revoked, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}

	return nil
}

func (r *TokenRepository) GetByID(ctx context.Context, id string) (*domain.AccessToken, error) {
	query := `
		SELECT id, user_id, secret_hash, revoked, created_at
		FROM access_tokens
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var token domain.AccessToken
	err := row.Scan(&token.ID, &token.UserID, &token.SecretHash, &token.Revoked, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	return &token, nil
}

func (r *TokenRepository) RevokeAllByUserID(ctx context.Context, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx, revokeAllQuery, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke access tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Rotate runs the revoke-all and the replacement insert in one transaction,
// so no observer can ever see two valid tokens for the user.
func (r *TokenRepository) Rotate(ctx context.Context, userID string, replacement *domain.AccessToken) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin token rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, revokeAllQuery, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke access tokens: %w", err)
	}

	_, err = tx.Exec(ctx, insertTokenQuery,
		replacement.ID, replacement.UserID, replacement.SecretHash, replacement.Revoked, replacement.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to store replacement token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit token rotation: %w", err)
	}

	return tag.RowsAffected(), nil
}
