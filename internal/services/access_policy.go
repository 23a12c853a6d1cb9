package services

import (
	"math"
	"time"

	"renthub/internal/models"
)

// Access policy evaluation over a landlord's subscription record. These are
// pure functions: the subscription (nil means no record exists) and the
// evaluation time come in, a decision comes out. Callers pass time.Now().

// HasActiveAccess reports whether the landlord may use the platform: a paid
// membership always grants access; otherwise access lasts strictly until the
// trial end date.
func HasActiveAccess(subscription *models.Subscription, now time.Time) bool {
	if subscription == nil {
		return false
	}
	if subscription.MembershipPaid {
		return true
	}
	if subscription.TrialStartDate == nil || subscription.TrialEndDate == nil {
		return false
	}
	return now.Before(*subscription.TrialEndDate)
}

// IsTrialExpired reports whether an unpaid trial has ended. A paid
// membership is never "expired", and a record without a trial end date has
// no trial to expire.
func IsTrialExpired(subscription *models.Subscription, now time.Time) bool {
	if subscription == nil || subscription.MembershipPaid {
		return false
	}
	if subscription.TrialEndDate == nil {
		return false
	}
	return !now.Before(*subscription.TrialEndDate)
}

// TrialDaysRemaining returns the whole days left in the trial, rounded up
// and clamped at zero. Paid memberships and absent trials report zero.
func TrialDaysRemaining(subscription *models.Subscription, now time.Time) int {
	if subscription == nil || subscription.MembershipPaid {
		return 0
	}
	if subscription.TrialEndDate == nil {
		return 0
	}
	remaining := subscription.TrialEndDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}
