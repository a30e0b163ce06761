package service

import (
	"context"
	"log/slog"

	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/google/uuid"
)

// LoginRecorder appends authentication events. Recording is best-effort:
// a failed write is logged but never fails the operation that triggered it,
// so token issuance and revocation can never be blocked by the audit trail.
type LoginRecorder struct {
	audit  domain.AuditRepository
	logger *slog.Logger
}

func NewLoginRecorder(audit domain.AuditRepository, logger *slog.Logger) *LoginRecorder {
	return &LoginRecorder{audit: audit, logger: logger}
}

func (r *LoginRecorder) Record(ctx context.Context, event *domain.LoginEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := r.audit.Record(ctx, event); err != nil {
		attrs := []any{"ip", event.IPAddress, "successful", event.Successful, "error", err}
		if event.UserID != nil {
			attrs = append(attrs, "user_id", *event.UserID)
		}
		r.logger.Error("failed to record login event", attrs...)
	}
}
