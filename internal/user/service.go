package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/dto"
	autherror "github.com/Altraaa/creavibes-panel-api/internal/errors"
	"github.com/Altraaa/creavibes-panel-api/pkg/constant"
	"github.com/Altraaa/creavibes-panel-api/pkg/pagination"
	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	hasher domain.PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher domain.PasswordHasher, logger *slog.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, logger: logger}
}

func (s *Service) List(ctx context.Context, filters ListFilters) ([]dto.UserOutput, pagination.Meta, error) {
	filters.Page = filters.Page.Normalize()

	users, total, err := s.repo.List(ctx, filters)
	if err != nil {
		s.logger.Error("failed to fetch users", "error", err)
		return nil, pagination.Meta{}, err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserOutput(&users[i]))
	}

	return out, pagination.NewMeta(filters.Page, total), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	out := dto.NewUserOutput(user)

	return &out, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*dto.UserOutput, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("failed to create user", "email", input.Email, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("failed to create user", "email", input.Email, "error", err)
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
		Role:         constant.DefaultUserRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Role != "" {
		user.Role = input.Role
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", "email", input.Email, "error", err)
		return nil, err
	}

	out := dto.NewUserOutput(user)

	return &out, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.repo.GetByEmail(ctx, *input.Email)
		if err != nil {
			s.logger.Error("failed to update user", "user_id", id, "error", err)
			return nil, err
		}
		if existing != nil {
			return nil, autherror.ErrEmailAlreadyInUse
		}
		user.Email = *input.Email
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			s.logger.Error("failed to update user", "user_id", id, "error", err)
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	out := dto.NewUserOutput(user)

	return &out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return err
	}
	if !deleted {
		return autherror.ErrUserNotFound
	}

	return nil
}
