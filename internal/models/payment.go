package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a completed rent payment. Payments are the trusted historical
// source the reconciler derives unit-tenant links from.
type Payment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UnitID    uuid.UUID `json:"unit_id" db:"unit_id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Amount    float64   `json:"amount" db:"amount"`
	PaidAt    time.Time `json:"paid_at" db:"paid_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
