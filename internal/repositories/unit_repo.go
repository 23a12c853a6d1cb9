package repositories

import (
	"context"

	"github.com/google/uuid"

	"renthub/internal/common"
	"renthub/internal/models"
)

type UnitRepository interface {
	// GetOwned returns the unit only when it belongs to a property of the
	// given landlord. A unit that exists but is owned by someone else is
	// indistinguishable from one that does not exist: both are ErrNotFound.
	GetOwned(ctx context.Context, landlordID, unitID uuid.UUID) (*models.Unit, error)

	// GetByInvitationToken resolves the single unit currently holding the
	// exact token, joined with its property address.
	GetByInvitationToken(ctx context.Context, token string) (*models.InvitedUnit, error)

	// RegenerateInvitationToken overwrites the unit's token. The previous
	// token becomes permanently invalid.
	RegenerateInvitationToken(ctx context.Context, unitID uuid.UUID, newToken string) error

	SetOccupied(ctx context.Context, unitID uuid.UUID, occupied bool) error
}

type unitRepo struct {
	db Database
}

func NewUnitRepository(db Database) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) GetOwned(ctx context.Context, landlordID, unitID uuid.UUID) (*models.Unit, error) {
	unit := &models.Unit{}
	query := `
		SELECT u.id, u.property_id, u.unit_number, u.is_occupied, u.invitation_token, u.rent_amount, u.created_at, u.updated_at
		FROM units u
		JOIN properties p ON p.id = u.property_id
		WHERE u.id = $1 AND p.landlord_id = $2
	`
	err := r.db.QueryRow(ctx, query, unitID, landlordID).Scan(
		&unit.ID,
		&unit.PropertyID,
		&unit.UnitNumber,
		&unit.IsOccupied,
		&unit.InvitationToken,
		&unit.RentAmount,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)
	if err != nil {
		return nil, common.MapNoRows(err)
	}
	return unit, nil
}

func (r *unitRepo) GetByInvitationToken(ctx context.Context, token string) (*models.InvitedUnit, error) {
	invited := &models.InvitedUnit{}
	query := `
		SELECT u.id, u.unit_number, p.name, p.address, p.city, p.state, u.rent_amount, u.is_occupied
		FROM units u
		JOIN properties p ON p.id = u.property_id
		WHERE u.invitation_token = $1
	`
	err := r.db.QueryRow(ctx, query, token).Scan(
		&invited.UnitID,
		&invited.UnitNumber,
		&invited.PropertyName,
		&invited.Address,
		&invited.City,
		&invited.State,
		&invited.RentAmount,
		&invited.IsOccupied,
	)
	if err != nil {
		return nil, common.MapNoRows(err)
	}
	return invited, nil
}

func (r *unitRepo) RegenerateInvitationToken(ctx context.Context, unitID uuid.UUID, newToken string) error {
	query := `
		UPDATE units
		SET invitation_token = $2, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, unitID, newToken)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return &common.ConflictError{Resource: "invitation token"}
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *unitRepo) SetOccupied(ctx context.Context, unitID uuid.UUID, occupied bool) error {
	query := `
		UPDATE units
		SET is_occupied = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, unitID, occupied)
	return err
}
