package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the landlord's membership record. It is created implicitly
// at landlord onboarding with a trial window and never deleted while the
// landlord account exists.
type Subscription struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	LandlordID            uuid.UUID  `json:"landlord_id" db:"landlord_id"`
	MembershipPaid        bool       `json:"membership_paid" db:"membership_paid"`
	MembershipAmount      float64    `json:"membership_amount" db:"membership_amount"`
	MembershipPaymentDate *time.Time `json:"membership_payment_date" db:"membership_payment_date"`
	TrialStartDate        *time.Time `json:"trial_start_date" db:"trial_start_date"`
	TrialEndDate          *time.Time `json:"trial_end_date" db:"trial_end_date"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// MembershipStatus is the access view of a subscription returned to the
// landlord: the raw fields plus the evaluated access decision.
type MembershipStatus struct {
	MembershipPaid        bool       `json:"membership_paid"`
	MembershipAmount      float64    `json:"membership_amount"`
	MembershipPaymentDate *time.Time `json:"membership_payment_date"`
	TrialStartDate        *time.Time `json:"trial_start_date"`
	TrialEndDate          *time.Time `json:"trial_end_date"`
	HasAccess             bool       `json:"has_access"`
	TrialExpired          bool       `json:"trial_expired"`
	TrialDaysRemaining    int        `json:"trial_days_remaining"`
}
