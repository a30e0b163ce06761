package user

import (
	"context"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/Altraaa/creavibes-panel-api/pkg/pagination"
)

// ListFilters narrows the user listing; zero values mean "no filter".
type ListFilters struct {
	Search   string
	Role     string
	IsActive *bool
	Page     pagination.Request
}

type CreateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
	Role     string `json:"role"`
}

type UpdateInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
	Role     *string `json:"role"`
}

type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]domain.User, int64, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) (bool, error)
}
