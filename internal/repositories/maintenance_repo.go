package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"renthub/internal/common"
	"renthub/internal/models"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error

	// GetOwnedByLandlord returns the request only when its unit sits on a
	// property of the given landlord; otherwise ErrNotFound.
	GetOwnedByLandlord(ctx context.Context, landlordID, requestID uuid.UUID) (*models.MaintenanceRequest, error)

	// UpdateStatus sets the status and resolved_at together; notes and
	// resolution photos are only overwritten when non-nil.
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.MaintenanceStatus, notes *string, resolutionPhotos []string, resolvedAt *time.Time) (*models.MaintenanceRequest, error)

	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error)
}

type maintenanceRepo struct {
	db Database
}

func NewMaintenanceRepository(db Database) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

const maintenanceColumns = `id, unit_id, tenant_id, status, title, description, photos, resolution_notes, resolution_photos, resolved_at, created_at, updated_at`

func (r *maintenanceRepo) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (id, unit_id, tenant_id, status, title, description, photos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.UnitID,
		request.TenantID,
		request.Status,
		request.Title,
		request.Description,
		request.Photos,
	)
	return err
}

func (r *maintenanceRepo) GetOwnedByLandlord(ctx context.Context, landlordID, requestID uuid.UUID) (*models.MaintenanceRequest, error) {
	request := &models.MaintenanceRequest{}
	query := `
		SELECT m.id, m.unit_id, m.tenant_id, m.status, m.title, m.description, m.photos, m.resolution_notes, m.resolution_photos, m.resolved_at, m.created_at, m.updated_at
		FROM maintenance_requests m
		JOIN units u ON u.id = m.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE m.id = $1 AND p.landlord_id = $2
	`
	err := r.db.QueryRow(ctx, query, requestID, landlordID).Scan(
		&request.ID,
		&request.UnitID,
		&request.TenantID,
		&request.Status,
		&request.Title,
		&request.Description,
		&request.Photos,
		&request.ResolutionNotes,
		&request.ResolutionPhotos,
		&request.ResolvedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, common.MapNoRows(err)
	}
	return request, nil
}

func (r *maintenanceRepo) UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.MaintenanceStatus, notes *string, resolutionPhotos []string, resolvedAt *time.Time) (*models.MaintenanceRequest, error) {
	request := &models.MaintenanceRequest{}
	query := `
		UPDATE maintenance_requests
		SET status = $2,
		    resolution_notes = COALESCE($3, resolution_notes),
		    resolution_photos = COALESCE($4, resolution_photos),
		    resolved_at = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + maintenanceColumns
	err := r.db.QueryRow(ctx, query, requestID, status, notes, resolutionPhotos, resolvedAt).Scan(
		&request.ID,
		&request.UnitID,
		&request.TenantID,
		&request.Status,
		&request.Title,
		&request.Description,
		&request.Photos,
		&request.ResolutionNotes,
		&request.ResolutionPhotos,
		&request.ResolvedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, common.MapNoRows(err)
	}
	return request, nil
}

func (r *maintenanceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	query := `
		SELECT ` + maintenanceColumns + `
		FROM maintenance_requests
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, tenantID, limit, offset)
}

func (r *maintenanceRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	query := `
		SELECT m.id, m.unit_id, m.tenant_id, m.status, m.title, m.description, m.photos, m.resolution_notes, m.resolution_photos, m.resolved_at, m.created_at, m.updated_at
		FROM maintenance_requests m
		JOIN units u ON u.id = m.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE p.landlord_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, landlordID, limit, offset)
}

func (r *maintenanceRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.MaintenanceRequest
	for rows.Next() {
		request := &models.MaintenanceRequest{}
		err := rows.Scan(
			&request.ID,
			&request.UnitID,
			&request.TenantID,
			&request.Status,
			&request.Title,
			&request.Description,
			&request.Photos,
			&request.ResolutionNotes,
			&request.ResolutionPhotos,
			&request.ResolvedAt,
			&request.CreatedAt,
			&request.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}
