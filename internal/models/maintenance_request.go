package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceStatus values. Transitions are caller-driven and may move
// backward; ResolvedAt is non-nil exactly while the status is RESOLVED.
type MaintenanceStatus string

const (
	StatusSubmitted  MaintenanceStatus = "SUBMITTED"
	StatusInProgress MaintenanceStatus = "IN_PROGRESS"
	StatusResolved   MaintenanceStatus = "RESOLVED"
)

// ValidMaintenanceStatus reports whether s is one of the three states.
func ValidMaintenanceStatus(s MaintenanceStatus) bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	UnitID           uuid.UUID         `json:"unit_id" db:"unit_id"`
	TenantID         uuid.UUID         `json:"tenant_id" db:"tenant_id"`
	Status           MaintenanceStatus `json:"status" db:"status"`
	Title            string            `json:"title" db:"title"`
	Description      string            `json:"description" db:"description"`
	Photos           []string          `json:"photos" db:"photos"`
	ResolutionNotes  *string           `json:"resolution_notes" db:"resolution_notes"`
	ResolutionPhotos []string          `json:"resolution_photos" db:"resolution_photos"`
	ResolvedAt       *time.Time        `json:"resolved_at" db:"resolved_at"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}
