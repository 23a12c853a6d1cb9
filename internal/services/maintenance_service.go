package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"renthub/internal/common"
	"renthub/internal/models"
	"renthub/internal/repositories"
)

// CreateMaintenanceRequestInput is the tenant-submitted payload.
type CreateMaintenanceRequestInput struct {
	UnitID      uuid.UUID
	Title       string
	Description string
	Photos      []string
}

// UpdateMaintenanceStatusInput is the landlord-driven transition payload.
// Notes and resolution photos may accompany any transition, not only
// resolution.
type UpdateMaintenanceStatusInput struct {
	Status           models.MaintenanceStatus
	ResolutionNotes  *string
	ResolutionPhotos []string
}

// MaintenanceService runs the request status state machine. Transitions are
// caller-driven and may move backward; the only invariant enforced is that
// resolved_at is set exactly while the status is RESOLVED.
type MaintenanceService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateMaintenanceRequestInput) (*models.MaintenanceRequest, error)
	SetStatus(ctx context.Context, landlordID, requestID uuid.UUID, input UpdateMaintenanceStatusInput) (*models.MaintenanceRequest, error)
	ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error)
	ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error)
}

type maintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	unitTenantRepo  repositories.UnitTenantRepository
	audit           AuditLogger
}

func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepository,
	unitTenantRepo repositories.UnitTenantRepository,
	audit AuditLogger,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		unitTenantRepo:  unitTenantRepo,
		audit:           audit,
	}
}

func (s *maintenanceService) Create(ctx context.Context, tenantID uuid.UUID, input CreateMaintenanceRequestInput) (*models.MaintenanceRequest, error) {
	// All validation happens before any write.
	if err := common.ValidateRequiredString(input.Title, "title"); err != nil {
		return nil, err
	}
	if len(input.Photos) == 0 {
		return nil, common.NewValidationError("photos", "at least one photo is required")
	}

	link, err := s.unitTenantRepo.Find(ctx, input.UnitID, tenantID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, common.NewValidationError("unit_id", "tenant has no assignment for this unit")
	}

	request := &models.MaintenanceRequest{
		ID:          uuid.New(),
		UnitID:      input.UnitID,
		TenantID:    tenantID,
		Status:      models.StatusSubmitted,
		Title:       input.Title,
		Description: input.Description,
		Photos:      input.Photos,
	}
	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, tenantID, models.ActionCreateMaintenanceRequest, "maintenance_request", request.ID.String(), models.JSONB{
		"status": string(models.StatusSubmitted),
		"title":  input.Title,
	})

	return request, nil
}

func (s *maintenanceService) SetStatus(ctx context.Context, landlordID, requestID uuid.UUID, input UpdateMaintenanceStatusInput) (*models.MaintenanceRequest, error) {
	if !models.ValidMaintenanceStatus(input.Status) {
		return nil, common.NewValidationError("status", "must be one of SUBMITTED, IN_PROGRESS, RESOLVED")
	}

	// Not-owned and nonexistent are indistinguishable.
	if _, err := s.maintenanceRepo.GetOwnedByLandlord(ctx, landlordID, requestID); err != nil {
		return nil, err
	}

	// Entering RESOLVED stamps the resolution time; entering any other
	// state clears it. Holds on every transition, not just the first.
	var resolvedAt *time.Time
	if input.Status == models.StatusResolved {
		now := time.Now()
		resolvedAt = &now
	}

	updated, err := s.maintenanceRepo.UpdateStatus(ctx, requestID, input.Status, input.ResolutionNotes, input.ResolutionPhotos, resolvedAt)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, landlordID, models.ActionUpdateMaintenanceRequest, "maintenance_request", requestID.String(), models.JSONB{
		"status": string(input.Status),
	})

	return updated, nil
}

func (s *maintenanceService) ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.maintenanceRepo.ListByTenant(ctx, tenantID, limit, offset)
}

func (s *maintenanceService) ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.maintenanceRepo.ListByLandlord(ctx, landlordID, limit, offset)
}
