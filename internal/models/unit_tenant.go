package models

import (
	"time"

	"github.com/google/uuid"
)

// UnitTenant links one tenant to one unit. The (unit_id, tenant_id) pair is
// unique; co-tenants are represented as multiple links to the same unit.
// Links are created by invitation acceptance or by reconciliation and are
// never deleted here.
type UnitTenant struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UnitID    uuid.UUID `json:"unit_id" db:"unit_id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UnitTenantPair is the projection of a payment used by reconciliation.
type UnitTenantPair struct {
	UnitID   uuid.UUID `json:"unit_id" db:"unit_id"`
	TenantID uuid.UUID `json:"tenant_id" db:"tenant_id"`
}

// ReconcileReport summarizes one reconciliation run.
type ReconcileReport struct {
	TotalPairs int `json:"total_pairs"`
	Created    int `json:"created"`
}
