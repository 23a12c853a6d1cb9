package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"renthub/internal/common"
	"renthub/internal/models"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) error

	// GetByLandlordID returns (nil, nil) when the landlord has no
	// subscription record at all.
	GetByLandlordID(ctx context.Context, landlordID uuid.UUID) (*models.Subscription, error)

	// RecordPayment marks the membership paid with the given amount and
	// payment date.
	RecordPayment(ctx context.Context, landlordID uuid.UUID, amount float64, paidAt time.Time) error

	// ListExpiringTrials returns unpaid subscriptions whose trial ends at or
	// before the given cutoff.
	ListExpiringTrials(ctx context.Context, cutoff time.Time) ([]*models.Subscription, error)
}

type subscriptionRepo struct {
	db Database
}

func NewSubscriptionRepository(db Database) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Create(ctx context.Context, subscription *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, landlord_id, membership_paid, membership_amount, membership_payment_date, trial_start_date, trial_end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		subscription.ID,
		subscription.LandlordID,
		subscription.MembershipPaid,
		subscription.MembershipAmount,
		subscription.MembershipPaymentDate,
		subscription.TrialStartDate,
		subscription.TrialEndDate,
	)
	if common.IsUniqueViolation(err) {
		return &common.ConflictError{Resource: "subscription"}
	}
	return err
}

func (r *subscriptionRepo) GetByLandlordID(ctx context.Context, landlordID uuid.UUID) (*models.Subscription, error) {
	subscription := &models.Subscription{}
	query := `
		SELECT id, landlord_id, membership_paid, membership_amount, membership_payment_date, trial_start_date, trial_end_date, created_at, updated_at
		FROM subscriptions
		WHERE landlord_id = $1
	`
	err := r.db.QueryRow(ctx, query, landlordID).Scan(
		&subscription.ID,
		&subscription.LandlordID,
		&subscription.MembershipPaid,
		&subscription.MembershipAmount,
		&subscription.MembershipPaymentDate,
		&subscription.TrialStartDate,
		&subscription.TrialEndDate,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	)
	if err != nil {
		if common.MapNoRows(err) == common.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return subscription, nil
}

func (r *subscriptionRepo) RecordPayment(ctx context.Context, landlordID uuid.UUID, amount float64, paidAt time.Time) error {
	query := `
		UPDATE subscriptions
		SET membership_paid = true, membership_amount = $2, membership_payment_date = $3, updated_at = NOW()
		WHERE landlord_id = $1
	`
	tag, err := r.db.Exec(ctx, query, landlordID, amount, paidAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *subscriptionRepo) ListExpiringTrials(ctx context.Context, cutoff time.Time) ([]*models.Subscription, error) {
	query := `
		SELECT id, landlord_id, membership_paid, membership_amount, membership_payment_date, trial_start_date, trial_end_date, created_at, updated_at
		FROM subscriptions
		WHERE membership_paid = false AND trial_end_date IS NOT NULL AND trial_end_date <= $1
		ORDER BY trial_end_date
	`
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscriptions []*models.Subscription
	for rows.Next() {
		subscription := &models.Subscription{}
		err := rows.Scan(
			&subscription.ID,
			&subscription.LandlordID,
			&subscription.MembershipPaid,
			&subscription.MembershipAmount,
			&subscription.MembershipPaymentDate,
			&subscription.TrialStartDate,
			&subscription.TrialEndDate,
			&subscription.CreatedAt,
			&subscription.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, rows.Err()
}
