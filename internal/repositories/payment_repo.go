package repositories

import (
	"context"

	"renthub/internal/models"
)

type PaymentRepository interface {
	// ListUnitTenantPairs projects every payment down to its
	// (unit_id, tenant_id) pair. Duplicates are returned as stored; the
	// reconciler deduplicates.
	ListUnitTenantPairs(ctx context.Context) ([]models.UnitTenantPair, error)
}

type paymentRepo struct {
	db Database
}

func NewPaymentRepository(db Database) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) ListUnitTenantPairs(ctx context.Context) ([]models.UnitTenantPair, error) {
	query := `
		SELECT unit_id, tenant_id
		FROM payments
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []models.UnitTenantPair
	for rows.Next() {
		var pair models.UnitTenantPair
		if err := rows.Scan(&pair.UnitID, &pair.TenantID); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, rows.Err()
}
