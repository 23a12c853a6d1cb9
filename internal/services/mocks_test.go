package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renthub/internal/models"
)

// Hand-written testify mocks shared by the service tests.

// MockAuditLogger captures audit calls for assertion.
type MockAuditLogger struct {
	mock.Mock
}

func (m *MockAuditLogger) Record(ctx context.Context, actorID uuid.UUID, action, entityType, entityID string, details models.JSONB) {
	m.Called(ctx, actorID, action, entityType, entityID, details)
}

// MockCacheService fakes the redis cache in subscription tests.
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetMembershipStatus(ctx context.Context, landlordID uuid.UUID) (*models.MembershipStatus, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MembershipStatus), args.Error(1)
}

func (m *MockCacheService) SetMembershipStatus(ctx context.Context, landlordID uuid.UUID, status *models.MembershipStatus, ttl time.Duration) error {
	args := m.Called(ctx, landlordID, status, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteMembershipStatus(ctx context.Context, landlordID uuid.UUID) error {
	args := m.Called(ctx, landlordID)
	return args.Error(0)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) GetByLandlordID(ctx context.Context, landlordID uuid.UUID) (*models.Subscription, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) RecordPayment(ctx context.Context, landlordID uuid.UUID, amount float64, paidAt time.Time) error {
	args := m.Called(ctx, landlordID, amount, paidAt)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListExpiringTrials(ctx context.Context, cutoff time.Time) ([]*models.Subscription, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) GetOwned(ctx context.Context, landlordID, unitID uuid.UUID) (*models.Unit, error) {
	args := m.Called(ctx, landlordID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetByInvitationToken(ctx context.Context, token string) (*models.InvitedUnit, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InvitedUnit), args.Error(1)
}

func (m *MockUnitRepository) RegenerateInvitationToken(ctx context.Context, unitID uuid.UUID, newToken string) error {
	args := m.Called(ctx, unitID, newToken)
	return args.Error(0)
}

func (m *MockUnitRepository) SetOccupied(ctx context.Context, unitID uuid.UUID, occupied bool) error {
	args := m.Called(ctx, unitID, occupied)
	return args.Error(0)
}

type MockUnitTenantRepository struct {
	mock.Mock
}

func (m *MockUnitTenantRepository) Create(ctx context.Context, link *models.UnitTenant) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockUnitTenantRepository) Find(ctx context.Context, unitID, tenantID uuid.UUID) (*models.UnitTenant, error) {
	args := m.Called(ctx, unitID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UnitTenant), args.Error(1)
}

func (m *MockUnitTenantRepository) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*models.UnitTenant, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UnitTenant), args.Error(1)
}

func (m *MockUnitTenantRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.UnitTenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UnitTenant), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListUnitTenantPairs(ctx context.Context) ([]models.UnitTenantPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UnitTenantPair), args.Error(1)
}

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) GetOwnedByLandlord(ctx context.Context, landlordID, requestID uuid.UUID) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, landlordID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.MaintenanceStatus, notes *string, resolutionPhotos []string, resolvedAt *time.Time) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, requestID, status, notes, resolutionPhotos, resolvedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.MaintenanceRequest, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MaintenanceRequest), args.Error(1)
}

type MockAuditLogsRepository struct {
	mock.Mock
}

func (m *MockAuditLogsRepository) Create(ctx context.Context, auditLog *models.AuditLog) error {
	args := m.Called(ctx, auditLog)
	return args.Error(0)
}

func (m *MockAuditLogsRepository) List(ctx context.Context, filters *models.AuditLogFilters) ([]*models.AuditLog, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}
