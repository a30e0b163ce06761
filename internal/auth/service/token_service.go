package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/Altraaa/creavibes-panel-api/internal/auth/service TokenIssuer

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	autherror "github.com/Altraaa/creavibes-panel-api/internal/errors"
	"github.com/Altraaa/creavibes-panel-api/pkg/constant"
	"github.com/google/uuid"
)

// TokenIssuer mints and revokes opaque bearer tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID string) (string, error)
	RevokeAll(ctx context.Context, userID string) (int64, error)
	// Rotate revokes every live token for the user and issues exactly one
	// replacement with no window where both old and new are valid.
	Rotate(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, plaintext string) (string, error)
}

// TokenService issues tokens of the form "<id>|<secret>". Only the SHA-256
// digest of the secret is persisted, so a stored record can never be turned
// back into a usable bearer value.
type TokenService struct {
	tokens domain.TokenRepository
}

func NewTokenService(tokens domain.TokenRepository) *TokenService {
	return &TokenService{tokens: tokens}
}

func (s *TokenService) Issue(ctx context.Context, userID string) (string, error) {
	plaintext, record, err := mintToken(userID)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Store(ctx, record); err != nil {
		return "", err
	}
	return plaintext, nil
}

func (s *TokenService) RevokeAll(ctx context.Context, userID string) (int64, error) {
	return s.tokens.RevokeAllByUserID(ctx, userID)
}

func (s *TokenService) Rotate(ctx context.Context, userID string) (string, error) {
	plaintext, record, err := mintToken(userID)
	if err != nil {
		return "", err
	}
	if _, err := s.tokens.Rotate(ctx, userID, record); err != nil {
		return "", err
	}
	return plaintext, nil
}

func (s *TokenService) Validate(ctx context.Context, plaintext string) (string, error) {
	id, secret, found := strings.Cut(plaintext, "|")
	if !found || id == "" || secret == "" {
		return "", autherror.ErrTokenMalformed
	}

	record, err := s.tokens.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if record == nil || record.Revoked {
		return "", autherror.ErrTokenInvalid
	}

	digest := hashSecret(secret)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(record.SecretHash)) != 1 {
		return "", autherror.ErrTokenInvalid
	}

	return record.UserID, nil
}

// TokenID extracts the persisted identifier from a plaintext token. Audit
// rows reference tokens by this id, never by the bearer value.
func TokenID(plaintext string) string {
	id, _, _ := strings.Cut(plaintext, "|")
	return id
}

func mintToken(userID string) (string, *domain.AccessToken, error) {
	secretBytes := make([]byte, constant.TokenSecretBytes)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", nil, fmt.Errorf("failed to generate token secret: %w", err)
	}
	secret := base64.RawURLEncoding.EncodeToString(secretBytes)

	record := &domain.AccessToken{
		ID:         uuid.NewString(),
		UserID:     userID,
		SecretHash: hashSecret(secret),
		Revoked:    false,
		CreatedAt:  time.Now(),
	}

	return record.ID + "|" + secret, record, nil
}

func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
