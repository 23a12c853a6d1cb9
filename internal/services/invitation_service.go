package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"renthub/internal/common"
	"renthub/internal/models"
	"renthub/internal/repositories"
)

// invitationTokenBytes gives 256 bits of entropy, hex-encoded to 64
// URL-safe characters.
const invitationTokenBytes = 32

// InvitationService mints and invalidates the secret that binds an
// unclaimed unit to a future tenant.
type InvitationService interface {
	// Regenerate overwrites the unit's invitation token with a fresh value.
	// The previous token becomes invalid immediately. A unit that is not
	// owned by the caller is reported exactly like a unit that does not
	// exist.
	Regenerate(ctx context.Context, landlordID, unitID uuid.UUID) (string, error)

	// Resolve looks up the unit currently holding the exact token. Resolving
	// the same token twice without a regeneration in between yields the same
	// unit.
	Resolve(ctx context.Context, token string) (*models.InvitedUnit, error)

	// Claim consumes a resolved token: it links the tenant to the unit and
	// marks the unit occupied. The token stays valid until the landlord
	// regenerates it.
	Claim(ctx context.Context, tenantID uuid.UUID, token string) (*models.UnitTenant, error)

	// Assignments lists the unit links the tenant currently holds, whether
	// claimed through an invitation or backfilled by reconciliation.
	Assignments(ctx context.Context, tenantID uuid.UUID) ([]*models.UnitTenant, error)
}

type invitationService struct {
	unitRepo       repositories.UnitRepository
	unitTenantRepo repositories.UnitTenantRepository
	audit          AuditLogger
}

func NewInvitationService(
	unitRepo repositories.UnitRepository,
	unitTenantRepo repositories.UnitTenantRepository,
	audit AuditLogger,
) InvitationService {
	return &invitationService{
		unitRepo:       unitRepo,
		unitTenantRepo: unitTenantRepo,
		audit:          audit,
	}
}

// GenerateInvitationToken returns a cryptographically unguessable token.
// Uniqueness among active tokens is enforced by the store's unique index,
// not here.
func GenerateInvitationToken() (string, error) {
	buf := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *invitationService) Regenerate(ctx context.Context, landlordID, unitID uuid.UUID) (string, error) {
	// Ownership is folded into the lookup; a miss is ErrNotFound either way.
	unit, err := s.unitRepo.GetOwned(ctx, landlordID, unitID)
	if err != nil {
		return "", err
	}

	token, err := GenerateInvitationToken()
	if err != nil {
		return "", err
	}

	if err := s.unitRepo.RegenerateInvitationToken(ctx, unitID, token); err != nil {
		return "", err
	}

	s.audit.Record(ctx, landlordID, models.ActionRegenerateInvitationLink, "unit", unitID.String(), models.JSONB{
		"unit_number": unit.UnitNumber,
	})

	return token, nil
}

func (s *invitationService) Resolve(ctx context.Context, token string) (*models.InvitedUnit, error) {
	if token == "" {
		return nil, common.ErrNotFound
	}

	// Single equality lookup against the indexed column; no partial
	// matching.
	invited, err := s.unitRepo.GetByInvitationToken(ctx, token)
	if err != nil {
		return nil, err
	}

	links, err := s.unitTenantRepo.ListByUnit(ctx, invited.UnitID)
	if err != nil {
		return nil, err
	}
	invited.TenantIDs = make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		invited.TenantIDs = append(invited.TenantIDs, link.TenantID)
	}

	return invited, nil
}

func (s *invitationService) Claim(ctx context.Context, tenantID uuid.UUID, token string) (*models.UnitTenant, error) {
	invited, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	link := &models.UnitTenant{
		ID:       uuid.New(),
		UnitID:   invited.UnitID,
		TenantID: tenantID,
	}
	if err := s.unitTenantRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	if err := s.unitRepo.SetOccupied(ctx, invited.UnitID, true); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, tenantID, models.ActionAcceptInvitation, "unit", invited.UnitID.String(), models.JSONB{
		"unit_number": invited.UnitNumber,
	})

	return link, nil
}

func (s *invitationService) Assignments(ctx context.Context, tenantID uuid.UUID) ([]*models.UnitTenant, error) {
	return s.unitTenantRepo.ListByTenant(ctx, tenantID)
}
