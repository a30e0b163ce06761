package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/Altraaa/creavibes-panel-api/internal/auth/domain UserRepository,TokenRepository,AuditRepository,PasswordHasher

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID, ip string) error
}

type TokenRepository interface {
	Store(ctx context.Context, token *AccessToken) error
	GetByID(ctx context.Context, id string) (*AccessToken, error)
	// RevokeAllByUserID marks every live token for the user revoked and
	// returns how many rows were affected.
	RevokeAllByUserID(ctx context.Context, userID string) (int64, error)
	// Rotate revokes all live tokens for the user and stores the replacement
	// in a single transaction.
	Rotate(ctx context.Context, userID string, replacement *AccessToken) (int64, error)
}

type AuditRepository interface {
	Record(ctx context.Context, event *LoginEvent) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
