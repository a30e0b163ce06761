package postgres

import (
	"context"
	"fmt"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
)

// AuditRepository appends to the authentications table. Rows are never
// updated or deleted here.
type AuditRepository struct {
	db DB
}

func NewAuditRepository(db DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, event *domain.LoginEvent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO authentications (id, user_id, ip_address, user_agent, login_at, logout_at, token_id, is_successful, device_info, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
	`, event.ID, event.UserID, event.IPAddress, event.UserAgent, event.LoginAt,
		event.LogoutAt, nullable(event.TokenID), event.Successful,
		nullable(event.DeviceInfo), nullable(event.Location))
	if err != nil {
		return fmt.Errorf("failed to record login event: %w", err)
	}

	return nil
}

// nullable maps empty strings to NULL; token_id carries a unique constraint
// that repeated empty strings would violate.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
