package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier delivers trial-lifecycle notices to landlords. Content and
// delivery mechanics live behind this interface.
type Notifier interface {
	TrialEnding(ctx context.Context, landlordID uuid.UUID, daysRemaining int) error
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier returns a Notifier that only records the notice. Used as
// the default until a real delivery channel is configured.
func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) TrialEnding(ctx context.Context, landlordID uuid.UUID, daysRemaining int) error {
	n.logger.Info("trial ending notice",
		zap.String("landlord_id", landlordID.String()),
		zap.Int("days_remaining", daysRemaining),
	)
	return nil
}
