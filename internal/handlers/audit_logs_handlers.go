package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"renthub/internal/common"
	"renthub/internal/models"
	"renthub/internal/services"
)

// AuditLogsHandlers exposes read access to the audit trail.
type AuditLogsHandlers struct {
	auditQueryService services.AuditQueryService
}

func NewAuditLogsHandlers(auditQueryService services.AuditQueryService) *AuditLogsHandlers {
	return &AuditLogsHandlers{auditQueryService: auditQueryService}
}

// List handles GET /v1/audit-logs. Landlords only ever see their own
// entries: the actor filter is pinned to the caller regardless of query
// parameters. Admins may filter freely.
func (h *AuditLogsHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	callerID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}
	role, ok := common.GetRoleFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	filters := &models.AuditLogFilters{}

	if role == models.RoleLandlord {
		filters.ActorID = &callerID
	} else if actorParam := c.QueryParam("actor_id"); actorParam != "" {
		actorID, err := common.ValidateUUID(actorParam, "actor_id")
		if err != nil {
			return common.RespondError(c, err)
		}
		filters.ActorID = &actorID
	}

	if action := c.QueryParam("action"); action != "" {
		filters.Action = &action
	}
	if entityType := c.QueryParam("entity_type"); entityType != "" {
		filters.EntityType = &entityType
	}
	if entityID := c.QueryParam("entity_id"); entityID != "" {
		filters.EntityID = &entityID
	}

	if startParam := c.QueryParam("start_date"); startParam != "" {
		start, err := time.Parse("2006-01-02", startParam)
		if err != nil {
			return common.RespondError(c, common.NewValidationError("start_date", "must be in YYYY-MM-DD format"))
		}
		filters.StartDate = &start
	}
	if endParam := c.QueryParam("end_date"); endParam != "" {
		end, err := time.Parse("2006-01-02", endParam)
		if err != nil {
			return common.RespondError(c, common.NewValidationError("end_date", "must be in YYYY-MM-DD format"))
		}
		filters.EndDate = &end
	}

	filters.Limit, filters.Offset = paginationParams(c)

	logs, err := h.auditQueryService.ListAuditLogs(ctx, filters)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"audit_logs": logs,
		"limit":      filters.Limit,
		"offset":     filters.Offset,
	})
}
