package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"renthub/internal/common"
	"renthub/internal/models"
	"renthub/internal/repositories"
)

// AuditLogger is the append-only sink for who-did-what records. It is
// injected into every mutating operation. Record never returns an error: a
// failed audit write must not fail the primary operation, so failures are
// surfaced to the logger instead.
type AuditLogger interface {
	Record(ctx context.Context, actorID uuid.UUID, action, entityType, entityID string, details models.JSONB)
}

type auditLogger struct {
	auditLogsRepo repositories.AuditLogsRepository
	logger        *zap.Logger
}

func NewAuditLogger(auditLogsRepo repositories.AuditLogsRepository, logger *zap.Logger) AuditLogger {
	return &auditLogger{
		auditLogsRepo: auditLogsRepo,
		logger:        logger,
	}
}

func (s *auditLogger) Record(ctx context.Context, actorID uuid.UUID, action, entityType, entityID string, details models.JSONB) {
	entry := &models.AuditLog{
		ID:         uuid.New(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}

	if origin, ok := common.GetOriginFromContext(ctx); ok {
		if origin.IP != "" {
			ip := origin.IP
			entry.IPAddress = &ip
		}
		if origin.UserAgent != "" {
			ua := origin.UserAgent
			entry.UserAgent = &ua
		}
	}

	if err := s.auditLogsRepo.Create(ctx, entry); err != nil {
		s.logger.Error("audit log write failed",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.String("actor_id", actorID.String()),
			zap.Error(err),
		)
	}
}

// AuditQueryService exposes read access to the audit trail.
type AuditQueryService interface {
	ListAuditLogs(ctx context.Context, filters *models.AuditLogFilters) ([]*models.AuditLog, error)
}

type auditQueryService struct {
	auditLogsRepo repositories.AuditLogsRepository
}

func NewAuditQueryService(auditLogsRepo repositories.AuditLogsRepository) AuditQueryService {
	return &auditQueryService{auditLogsRepo: auditLogsRepo}
}

func (s *auditQueryService) ListAuditLogs(ctx context.Context, filters *models.AuditLogFilters) ([]*models.AuditLog, error) {
	if filters == nil {
		filters = &models.AuditLogFilters{Limit: 50}
	}
	if filters.Limit <= 0 || filters.Limit > 1000 {
		filters.Limit = 50
	}
	return s.auditLogsRepo.List(ctx, filters)
}
