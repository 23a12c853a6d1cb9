package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"renthub/internal/caching"
	"renthub/internal/common"
	"renthub/internal/models"
	"renthub/internal/repositories"
)

const (
	trialDays           = 30
	membershipStatusTTL = 5 * time.Minute
)

// SubscriptionService manages the landlord membership/trial lifecycle.
type SubscriptionService interface {
	// StartTrial creates the subscription record at landlord onboarding.
	StartTrial(ctx context.Context, landlordID uuid.UUID) (*models.Subscription, error)

	// MembershipStatus returns the evaluated access view for the landlord,
	// or ErrNotFound when no subscription record exists.
	MembershipStatus(ctx context.Context, landlordID uuid.UUID) (*models.MembershipStatus, error)

	// RecordPayment marks the membership paid and invalidates the cached
	// status.
	RecordPayment(ctx context.Context, landlordID uuid.UUID, amount float64) (*models.Subscription, error)

	// ExpiringTrials lists unpaid subscriptions whose trial ends within the
	// given number of days (including already-expired ones).
	ExpiringTrials(ctx context.Context, withinDays int) ([]*models.Subscription, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	cacheSvc         caching.CacheService
	audit            AuditLogger
	logger           *zap.Logger
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	cacheSvc caching.CacheService,
	audit AuditLogger,
	logger *zap.Logger,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		cacheSvc:         cacheSvc,
		audit:            audit,
		logger:           logger,
	}
}

func (s *subscriptionService) StartTrial(ctx context.Context, landlordID uuid.UUID) (*models.Subscription, error) {
	now := time.Now()
	end := now.AddDate(0, 0, trialDays)

	subscription := &models.Subscription{
		ID:             uuid.New(),
		LandlordID:     landlordID,
		MembershipPaid: false,
		TrialStartDate: &now,
		TrialEndDate:   &end,
	}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, err
	}
	return subscription, nil
}

func (s *subscriptionService) MembershipStatus(ctx context.Context, landlordID uuid.UUID) (*models.MembershipStatus, error) {
	if cached, err := s.cacheSvc.GetMembershipStatus(ctx, landlordID); err != nil {
		s.logger.Warn("membership status cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	subscription, err := s.subscriptionRepo.GetByLandlordID(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, common.ErrNotFound
	}

	now := time.Now()
	status := &models.MembershipStatus{
		MembershipPaid:        subscription.MembershipPaid,
		MembershipAmount:      subscription.MembershipAmount,
		MembershipPaymentDate: subscription.MembershipPaymentDate,
		TrialStartDate:        subscription.TrialStartDate,
		TrialEndDate:          subscription.TrialEndDate,
		HasAccess:             HasActiveAccess(subscription, now),
		TrialExpired:          IsTrialExpired(subscription, now),
		TrialDaysRemaining:    TrialDaysRemaining(subscription, now),
	}

	if err := s.cacheSvc.SetMembershipStatus(ctx, landlordID, status, membershipStatusTTL); err != nil {
		s.logger.Warn("membership status cache write failed", zap.Error(err))
	}

	return status, nil
}

func (s *subscriptionService) RecordPayment(ctx context.Context, landlordID uuid.UUID, amount float64) (*models.Subscription, error) {
	if amount <= 0 {
		return nil, common.NewValidationError("amount", "must be positive")
	}

	now := time.Now()
	if err := s.subscriptionRepo.RecordPayment(ctx, landlordID, amount, now); err != nil {
		return nil, err
	}

	if err := s.cacheSvc.DeleteMembershipStatus(ctx, landlordID); err != nil {
		s.logger.Warn("membership status cache invalidation failed", zap.Error(err))
	}

	s.audit.Record(ctx, landlordID, models.ActionRecordMembershipPayment, "subscription", landlordID.String(), models.JSONB{
		"amount": amount,
	})

	return s.subscriptionRepo.GetByLandlordID(ctx, landlordID)
}

func (s *subscriptionService) ExpiringTrials(ctx context.Context, withinDays int) ([]*models.Subscription, error) {
	if withinDays < 0 {
		withinDays = 0
	}
	cutoff := time.Now().AddDate(0, 0, withinDays)
	return s.subscriptionRepo.ListExpiringTrials(ctx, cutoff)
}
