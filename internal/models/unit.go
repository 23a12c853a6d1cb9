package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a rentable space inside a property. InvitationToken, when present,
// is the single active secret that lets an unauthenticated party claim the
// unit as a tenant; it is unique across all units and regeneration
// permanently invalidates the previous value.
type Unit struct {
	ID              uuid.UUID `json:"id" db:"id"`
	PropertyID      uuid.UUID `json:"property_id" db:"property_id"`
	UnitNumber      string    `json:"unit_number" db:"unit_number"`
	IsOccupied      bool      `json:"is_occupied" db:"is_occupied"`
	InvitationToken *string   `json:"-" db:"invitation_token"`
	RentAmount      float64   `json:"rent_amount" db:"rent_amount"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// InvitedUnit is the public view of a unit resolved from an invitation
// token: the unit plus its property address and current tenant links.
type InvitedUnit struct {
	UnitID       uuid.UUID   `json:"unit_id"`
	UnitNumber   string      `json:"unit_number"`
	PropertyName string      `json:"property_name"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	RentAmount   float64     `json:"rent_amount"`
	IsOccupied   bool        `json:"is_occupied"`
	TenantIDs    []uuid.UUID `json:"tenant_ids"`
}
