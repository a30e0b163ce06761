package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/Altraaa/creavibes-panel-api/config"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/dto"
	autherror "github.com/Altraaa/creavibes-panel-api/internal/errors"
	"github.com/Altraaa/creavibes-panel-api/pkg/constant"
)

const tempPasswordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SessionService orchestrates the authentication lifecycle: credential
// verification, token issuance and revocation, password mutation and the
// audit trail.
type SessionService struct {
	users    domain.UserRepository
	hasher   domain.PasswordHasher
	tokens   TokenIssuer
	recorder *LoginRecorder
	cfg      *config.Config
	logger   *slog.Logger

	// accountLocks serializes revoke-then-mint sequences per account so a
	// concurrent refresh and logout cannot interleave. Login does not take
	// the lock; a login racing a refresh on the same account may see its
	// token revoked immediately, which is accepted.
	accountLocks sync.Map
}

func NewSessionService(
	users domain.UserRepository,
	hasher domain.PasswordHasher,
	tokens TokenIssuer,
	recorder *LoginRecorder,
	cfg *config.Config,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		recorder: recorder,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login verifies the email/password pair and issues a fresh token. Unknown
// email and wrong password are indistinguishable to the caller; both return
// ErrInvalidCredentials. The password value itself is never logged.
func (s *SessionService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	meta := domain.RequestMeta{
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		DeviceInfo: input.DeviceInfo,
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("login failed", "email", input.Email, "error", err)
		return nil, err
	}

	if user == nil {
		// No resolved identity; the event is still recorded, with a null
		// user reference.
		s.recorder.Record(ctx, attemptEvent(nil, meta, false))
		return nil, autherror.ErrInvalidCredentials
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.recorder.Record(ctx, attemptEvent(&user.ID, meta, false))
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.recorder.Record(ctx, attemptEvent(&user.ID, meta, false))
		return nil, autherror.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		s.logger.Error("login failed", "email", input.Email, "error", err)
		return nil, err
	}

	event := attemptEvent(&user.ID, meta, true)
	event.TokenID = TokenID(token)
	s.recorder.Record(ctx, event)

	if err := s.users.UpdateLastLogin(ctx, user.ID, input.IPAddress); err != nil {
		s.logger.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	return &dto.LoginOutput{
		User:      dto.NewUserOutput(user),
		Token:     token,
		TokenType: constant.TokenType,
	}, nil
}

// Logout revokes every token owned by the account. Idempotent: zero live
// tokens is still a success.
func (s *SessionService) Logout(ctx context.Context, user *domain.User, meta domain.RequestMeta) error {
	unlock := s.lockAccount(user.ID)
	defer unlock()

	count, err := s.tokens.RevokeAll(ctx, user.ID)
	if err != nil {
		s.logger.Error("logout failed", "user_id", user.ID, "error", err)
		return err
	}

	now := time.Now()
	s.recorder.Record(ctx, &domain.LoginEvent{
		UserID:     &user.ID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		LogoutAt:   &now,
		Successful: true,
		DeviceInfo: meta.DeviceInfo,
		Location:   meta.Location,
	})

	s.logger.Info("logout", "user_id", user.ID, "tokens_revoked", count)

	return nil
}

// RefreshToken atomically replaces every token the account holds with a
// single new one. After a successful call, exactly one token is valid.
func (s *SessionService) RefreshToken(ctx context.Context, user *domain.User) (*dto.TokenOutput, error) {
	unlock := s.lockAccount(user.ID)
	defer unlock()

	token, err := s.tokens.Rotate(ctx, user.ID)
	if err != nil {
		s.logger.Error("token refresh failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	return &dto.TokenOutput{
		Token:     token,
		TokenType: constant.TokenType,
	}, nil
}

// ChangePassword replaces the stored hash after verifying the current
// password. Existing tokens survive unless RevokeTokensOnPasswordChange is
// enabled.
func (s *SessionService) ChangePassword(ctx context.Context, user *domain.User, input dto.ChangePasswordInput) error {
	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return autherror.ErrCurrentPasswordIncorrect
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		s.logger.Error("password change failed", "user_id", user.ID, "error", err)
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.logger.Error("password change failed", "user_id", user.ID, "error", err)
		return err
	}

	if s.cfg.RevokeTokensOnPasswordChange {
		unlock := s.lockAccount(user.ID)
		defer unlock()

		if _, err := s.tokens.RevokeAll(ctx, user.ID); err != nil {
			s.logger.Error("failed to revoke tokens after password change", "user_id", user.ID, "error", err)
			return err
		}
	}

	return nil
}

// ResetPassword stores a hashed temporary password for the account and
// returns the plaintext to the caller. Delivery belongs to an out-of-band
// collaborator; the value is never logged here.
func (s *SessionService) ResetPassword(ctx context.Context, email string) (*dto.ResetPasswordOutput, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error("password reset failed", "email", email, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	tempPassword, err := generateTempPassword(s.cfg.TempPasswordLength)
	if err != nil {
		s.logger.Error("password reset failed", "email", email, "error", err)
		return nil, err
	}

	hash, err := s.hasher.Hash(tempPassword)
	if err != nil {
		s.logger.Error("password reset failed", "email", email, "error", err)
		return nil, err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.logger.Error("password reset failed", "email", email, "error", err)
		return nil, err
	}

	return &dto.ResetPasswordOutput{TemporaryPassword: tempPassword}, nil
}

func (s *SessionService) lockAccount(userID string) func() {
	v, _ := s.accountLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func attemptEvent(userID *string, meta domain.RequestMeta, successful bool) *domain.LoginEvent {
	now := time.Now()
	return &domain.LoginEvent{
		UserID:     userID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		LoginAt:    &now,
		Successful: successful,
		DeviceInfo: meta.DeviceInfo,
		Location:   meta.Location,
	}
}

func generateTempPassword(length int) (string, error) {
	if length <= 0 {
		length = constant.TempPasswordLength
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate temporary password: %w", err)
		}
		out[i] = tempPasswordCharset[n.Int64()]
	}

	return string(out), nil
}
