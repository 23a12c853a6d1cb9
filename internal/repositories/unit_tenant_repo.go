package repositories

import (
	"context"

	"github.com/google/uuid"

	"renthub/internal/common"
	"renthub/internal/models"
)

type UnitTenantRepository interface {
	// Create inserts the link. The store's unique (unit_id, tenant_id)
	// constraint is the arbiter under concurrency; a duplicate surfaces as
	// ConflictError.
	Create(ctx context.Context, link *models.UnitTenant) error

	// Find returns (nil, nil) when no link exists for the pair.
	Find(ctx context.Context, unitID, tenantID uuid.UUID) (*models.UnitTenant, error)

	ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*models.UnitTenant, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.UnitTenant, error)
}

type unitTenantRepo struct {
	db Database
}

func NewUnitTenantRepository(db Database) UnitTenantRepository {
	return &unitTenantRepo{db: db}
}

func (r *unitTenantRepo) Create(ctx context.Context, link *models.UnitTenant) error {
	query := `
		INSERT INTO unit_tenants (id, unit_id, tenant_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.db.Exec(ctx, query, link.ID, link.UnitID, link.TenantID)
	if common.IsUniqueViolation(err) {
		return &common.ConflictError{Resource: "unit-tenant link"}
	}
	return err
}

func (r *unitTenantRepo) Find(ctx context.Context, unitID, tenantID uuid.UUID) (*models.UnitTenant, error) {
	link := &models.UnitTenant{}
	query := `
		SELECT id, unit_id, tenant_id, created_at
		FROM unit_tenants
		WHERE unit_id = $1 AND tenant_id = $2
	`
	err := r.db.QueryRow(ctx, query, unitID, tenantID).Scan(
		&link.ID,
		&link.UnitID,
		&link.TenantID,
		&link.CreatedAt,
	)
	if err != nil {
		if common.MapNoRows(err) == common.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return link, nil
}

func (r *unitTenantRepo) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*models.UnitTenant, error) {
	query := `
		SELECT id, unit_id, tenant_id, created_at
		FROM unit_tenants
		WHERE unit_id = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, unitID)
}

func (r *unitTenantRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.UnitTenant, error) {
	query := `
		SELECT id, unit_id, tenant_id, created_at
		FROM unit_tenants
		WHERE tenant_id = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, tenantID)
}

func (r *unitTenantRepo) list(ctx context.Context, query string, arg interface{}) ([]*models.UnitTenant, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*models.UnitTenant
	for rows.Next() {
		link := &models.UnitTenant{}
		if err := rows.Scan(&link.ID, &link.UnitID, &link.TenantID, &link.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
