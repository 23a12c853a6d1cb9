package models

import (
	"time"

	"github.com/google/uuid"
)

// JSONB represents a JSONB column payload.
type JSONB map[string]interface{}

// AuditLog is an immutable record of who did what to which entity, when, and
// from where. Entries are append-only; nothing updates or deletes them.
type AuditLog struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ActorID    uuid.UUID `json:"actor_id" db:"actor_id"`
	Action     string    `json:"action" db:"action"`
	EntityType string    `json:"entity_type" db:"entity_type"`
	EntityID   string    `json:"entity_id" db:"entity_id"`
	Details    JSONB     `json:"details" db:"details"`
	IPAddress  *string   `json:"ip_address" db:"ip_address"`
	UserAgent  *string   `json:"user_agent" db:"user_agent"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Action constants for audit logs
const (
	ActionRegenerateInvitationLink  = "REGENERATE_INVITATION_LINK"
	ActionAcceptInvitation          = "ACCEPT_INVITATION"
	ActionUpdateMaintenanceRequest  = "UPDATE_MAINTENANCE_REQUEST"
	ActionCreateMaintenanceRequest  = "CREATE_MAINTENANCE_REQUEST"
	ActionRecordMembershipPayment   = "RECORD_MEMBERSHIP_PAYMENT"
	ActionReconcileUnitTenantLinks  = "RECONCILE_UNIT_TENANT_LINKS"
)

// AuditLogFilters represents filters for querying audit logs
type AuditLogFilters struct {
	ActorID    *uuid.UUID `json:"actor_id"`
	Action     *string    `json:"action"`
	EntityType *string    `json:"entity_type"`
	EntityID   *string    `json:"entity_id"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
