package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"renthub/internal/common"
	"renthub/internal/models"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	subscriptionRepo *MockSubscriptionRepository
	cacheSvc         *MockCacheService
	audit            *MockAuditLogger
	service          SubscriptionService
	landlordID       uuid.UUID
	ctx              context.Context
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.subscriptionRepo = &MockSubscriptionRepository{}
	suite.cacheSvc = &MockCacheService{}
	suite.audit = &MockAuditLogger{}
	suite.service = NewSubscriptionService(suite.subscriptionRepo, suite.cacheSvc, suite.audit, zap.NewNop())
	suite.landlordID = uuid.New()
	suite.ctx = context.Background()
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func (suite *SubscriptionServiceTestSuite) TestStartTrial_ThirtyDayWindow() {
	suite.subscriptionRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Subscription")).Return(nil)

	subscription, err := suite.service.StartTrial(suite.ctx, suite.landlordID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.landlordID, subscription.LandlordID)
	assert.False(suite.T(), subscription.MembershipPaid)
	assert.NotNil(suite.T(), subscription.TrialStartDate)
	assert.NotNil(suite.T(), subscription.TrialEndDate)
	assert.WithinDuration(suite.T(),
		subscription.TrialStartDate.AddDate(0, 0, 30), *subscription.TrialEndDate, time.Second)
}

func (suite *SubscriptionServiceTestSuite) TestMembershipStatus_NoRecordMeansNotFound() {
	suite.cacheSvc.On("GetMembershipStatus", suite.ctx, suite.landlordID).Return(nil, nil)
	suite.subscriptionRepo.On("GetByLandlordID", suite.ctx, suite.landlordID).Return(nil, nil)

	status, err := suite.service.MembershipStatus(suite.ctx, suite.landlordID)

	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Nil(suite.T(), status)
	suite.cacheSvc.AssertNotCalled(suite.T(), "SetMembershipStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestMembershipStatus_CacheHitSkipsStore() {
	cached := &models.MembershipStatus{HasAccess: true, TrialDaysRemaining: 12}
	suite.cacheSvc.On("GetMembershipStatus", suite.ctx, suite.landlordID).Return(cached, nil)

	status, err := suite.service.MembershipStatus(suite.ctx, suite.landlordID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), cached, status)
	suite.subscriptionRepo.AssertNotCalled(suite.T(), "GetByLandlordID", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestMembershipStatus_EvaluatesAndCaches() {
	start := time.Now().AddDate(0, 0, -5)
	end := time.Now().AddDate(0, 0, 25)
	subscription := &models.Subscription{
		ID:             uuid.New(),
		LandlordID:     suite.landlordID,
		MembershipPaid: false,
		TrialStartDate: &start,
		TrialEndDate:   &end,
	}

	suite.cacheSvc.On("GetMembershipStatus", suite.ctx, suite.landlordID).Return(nil, nil)
	suite.subscriptionRepo.On("GetByLandlordID", suite.ctx, suite.landlordID).Return(subscription, nil)
	suite.cacheSvc.On("SetMembershipStatus", suite.ctx, suite.landlordID,
		mock.AnythingOfType("*models.MembershipStatus"), 5*time.Minute).Return(nil)

	status, err := suite.service.MembershipStatus(suite.ctx, suite.landlordID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), status.HasAccess)
	assert.False(suite.T(), status.TrialExpired)
	assert.Equal(suite.T(), 25, status.TrialDaysRemaining)
	suite.cacheSvc.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestRecordPayment_InvalidatesCacheAndAudits() {
	paid := &models.Subscription{ID: uuid.New(), LandlordID: suite.landlordID, MembershipPaid: true}

	suite.subscriptionRepo.On("RecordPayment", suite.ctx, suite.landlordID, 499.0, mock.AnythingOfType("time.Time")).Return(nil)
	suite.cacheSvc.On("DeleteMembershipStatus", suite.ctx, suite.landlordID).Return(nil)
	suite.audit.On("Record", suite.ctx, suite.landlordID, models.ActionRecordMembershipPayment,
		"subscription", suite.landlordID.String(), models.JSONB{"amount": 499.0}).Return()
	suite.subscriptionRepo.On("GetByLandlordID", suite.ctx, suite.landlordID).Return(paid, nil)

	subscription, err := suite.service.RecordPayment(suite.ctx, suite.landlordID, 499.0)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), subscription.MembershipPaid)
	suite.cacheSvc.AssertExpectations(suite.T())
	suite.audit.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestRecordPayment_NonPositiveAmountRejected() {
	subscription, err := suite.service.RecordPayment(suite.ctx, suite.landlordID, 0)

	var validationErr *common.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Nil(suite.T(), subscription)
	suite.subscriptionRepo.AssertNotCalled(suite.T(), "RecordPayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
