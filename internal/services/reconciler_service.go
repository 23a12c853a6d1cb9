package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"renthub/internal/common"
	"renthub/internal/models"
	"renthub/internal/repositories"
)

// ReconcilerService repairs unit-tenant links and occupancy flags from
// completed payment records. The procedure is idempotent: a second run over
// an unchanged payment set creates nothing. It never removes a link, never
// clears occupancy, and never invents a pair without payment evidence.
type ReconcilerService interface {
	Run(ctx context.Context) (models.ReconcileReport, error)
}

type reconcilerService struct {
	paymentRepo    repositories.PaymentRepository
	unitTenantRepo repositories.UnitTenantRepository
	unitRepo       repositories.UnitRepository
	audit          AuditLogger
	logger         *zap.Logger
}

func NewReconcilerService(
	paymentRepo repositories.PaymentRepository,
	unitTenantRepo repositories.UnitTenantRepository,
	unitRepo repositories.UnitRepository,
	audit AuditLogger,
	logger *zap.Logger,
) ReconcilerService {
	return &reconcilerService{
		paymentRepo:    paymentRepo,
		unitTenantRepo: unitTenantRepo,
		unitRepo:       unitRepo,
		audit:          audit,
		logger:         logger,
	}
}

// pairKey deduplicates payments by their exact composite identifiers. A
// struct key cannot collide the way a delimited string could.
type pairKey struct {
	UnitID   uuid.UUID
	TenantID uuid.UUID
}

func (s *reconcilerService) Run(ctx context.Context) (models.ReconcileReport, error) {
	report := models.ReconcileReport{}

	pairs, err := s.paymentRepo.ListUnitTenantPairs(ctx)
	if err != nil {
		return report, err
	}

	seen := make(map[pairKey]struct{}, len(pairs))
	for _, pair := range pairs {
		key := pairKey{UnitID: pair.UnitID, TenantID: pair.TenantID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		report.TotalPairs++

		created, err := s.reconcilePair(ctx, pair)
		if err != nil {
			// Per-pair isolation: already-written pairs stay; report
			// progress so far.
			s.logger.Error("reconciliation aborted",
				zap.String("unit_id", pair.UnitID.String()),
				zap.String("tenant_id", pair.TenantID.String()),
				zap.Error(err),
			)
			return report, err
		}
		if created {
			report.Created++
		}
	}

	// The run itself is a mutating operation and gets its own trail entry.
	// The entity ID names the run so repeated runs stay distinguishable.
	actorID, _ := common.GetUserIDFromContext(ctx)
	s.audit.Record(ctx, actorID, models.ActionReconcileUnitTenantLinks, "reconciliation", uuid.NewString(), models.JSONB{
		"total_pairs": report.TotalPairs,
		"created":     report.Created,
	})

	s.logger.Info("reconciliation complete",
		zap.Int("total_pairs", report.TotalPairs),
		zap.Int("created", report.Created),
	)

	return report, nil
}

func (s *reconcilerService) reconcilePair(ctx context.Context, pair models.UnitTenantPair) (bool, error) {
	existing, err := s.unitTenantRepo.Find(ctx, pair.UnitID, pair.TenantID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	link := &models.UnitTenant{
		ID:       uuid.New(),
		UnitID:   pair.UnitID,
		TenantID: pair.TenantID,
	}
	if err := s.unitTenantRepo.Create(ctx, link); err != nil {
		// A concurrent run may have created the link between our check and
		// the insert; the store's unique constraint makes that a no-op.
		var conflict *common.ConflictError
		if errors.As(err, &conflict) {
			return false, nil
		}
		return false, err
	}

	if err := s.unitRepo.SetOccupied(ctx, pair.UnitID, true); err != nil {
		return false, err
	}

	return true, nil
}
