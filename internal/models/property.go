package models

import (
	"time"

	"github.com/google/uuid"
)

// Property is owned by exactly one landlord and holds one or more units.
type Property struct {
	ID         uuid.UUID `json:"id" db:"id"`
	LandlordID uuid.UUID `json:"landlord_id" db:"landlord_id"`
	Name       string    `json:"name" db:"name"`
	Address    string    `json:"address" db:"address"`
	City       string    `json:"city" db:"city"`
	State      string    `json:"state" db:"state"`
	ZipCode    string    `json:"zip_code" db:"zip_code"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
