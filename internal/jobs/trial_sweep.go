package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"renthub/internal/services"
)

const trialNoticeWindowDays = 3

// TrialSweeper runs the daily sweep that notifies landlords whose unpaid
// trial is about to end (or has ended). It only reads subscriptions and
// calls the notifier; it never mutates access state.
type TrialSweeper struct {
	scheduler       gocron.Scheduler
	subscriptionSvc services.SubscriptionService
	notifier        services.Notifier
	logger          *zap.Logger
}

func NewTrialSweeper(subscriptionSvc services.SubscriptionService, notifier services.Notifier, logger *zap.Logger) (*TrialSweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	ts := &TrialSweeper{
		scheduler:       scheduler,
		subscriptionSvc: subscriptionSvc,
		notifier:        notifier,
		logger:          logger,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(ts.sweep),
		gocron.WithName("trial-expiry-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return ts, nil
}

func (ts *TrialSweeper) Start() {
	ts.logger.Info("starting trial sweep scheduler")
	ts.scheduler.Start()
}

func (ts *TrialSweeper) Stop() error {
	ts.logger.Info("stopping trial sweep scheduler")
	return ts.scheduler.Shutdown()
}

func (ts *TrialSweeper) sweep() {
	ctx := context.Background()

	expiring, err := ts.subscriptionSvc.ExpiringTrials(ctx, trialNoticeWindowDays)
	if err != nil {
		ts.logger.Error("trial sweep query failed", zap.Error(err))
		return
	}

	now := time.Now()
	for _, subscription := range expiring {
		days := services.TrialDaysRemaining(subscription, now)
		if err := ts.notifier.TrialEnding(ctx, subscription.LandlordID, days); err != nil {
			ts.logger.Error("trial notice failed",
				zap.String("landlord_id", subscription.LandlordID.String()),
				zap.Error(err),
			)
		}
	}

	ts.logger.Info("trial sweep complete", zap.Int("notified", len(expiring)))
}
