package dto

import (
	"time"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
)

// UserOutput is the outward shape of an account. The password hash never
// leaves the service layer.
type UserOutput struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP *string    `json:"last_login_ip,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		IsActive:    u.IsActive,
		Role:        u.Role,
		LastLoginAt: u.LastLoginAt,
		LastLoginIP: u.LastLoginIP,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
