package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"renthub/internal/common"
	"renthub/internal/models"
)

type SubscriptionRepoTestSuite struct {
	suite.Suite
	mock       pgxmock.PgxPoolIface
	repo       SubscriptionRepository
	landlordID uuid.UUID
	ctx        context.Context
}

func (suite *SubscriptionRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSubscriptionRepository(mock)
	suite.landlordID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *SubscriptionRepoTestSuite) TearDownTest() {
	suite.mock.Close()
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func TestSubscriptionRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionRepoTestSuite))
}

func subscriptionColumns() []string {
	return []string{
		"id", "landlord_id", "membership_paid", "membership_amount",
		"membership_payment_date", "trial_start_date", "trial_end_date",
		"created_at", "updated_at",
	}
}

func (suite *SubscriptionRepoTestSuite) TestCreate_Success() {
	now := time.Now()
	end := now.AddDate(0, 0, 30)
	subscription := &models.Subscription{
		ID:             uuid.New(),
		LandlordID:     suite.landlordID,
		MembershipPaid: false,
		TrialStartDate: &now,
		TrialEndDate:   &end,
	}

	suite.mock.ExpectExec(`INSERT INTO subscriptions`).
		WithArgs(subscription.ID, subscription.LandlordID, false, 0.0, (*time.Time)(nil), &now, &end).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, subscription)
	assert.NoError(suite.T(), err)
}

func (suite *SubscriptionRepoTestSuite) TestGetByLandlordID_Found() {
	now := time.Now()
	end := now.AddDate(0, 0, 30)
	subscriptionID := uuid.New()

	suite.mock.ExpectQuery(`SELECT id, landlord_id, membership_paid, membership_amount, membership_payment_date, trial_start_date, trial_end_date, created_at, updated_at\s+FROM subscriptions\s+WHERE landlord_id = \$1`).
		WithArgs(suite.landlordID).
		WillReturnRows(pgxmock.NewRows(subscriptionColumns()).
			AddRow(subscriptionID, suite.landlordID, false, 0.0, nil, &now, &end, now, now))

	subscription, err := suite.repo.GetByLandlordID(suite.ctx, suite.landlordID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), subscriptionID, subscription.ID)
	assert.False(suite.T(), subscription.MembershipPaid)
	assert.NotNil(suite.T(), subscription.TrialEndDate)
}

func (suite *SubscriptionRepoTestSuite) TestGetByLandlordID_MissingIsNilNotError() {
	suite.mock.ExpectQuery(`SELECT id, landlord_id, membership_paid, membership_amount, membership_payment_date, trial_start_date, trial_end_date, created_at, updated_at\s+FROM subscriptions\s+WHERE landlord_id = \$1`).
		WithArgs(suite.landlordID).
		WillReturnRows(pgxmock.NewRows(subscriptionColumns()))

	subscription, err := suite.repo.GetByLandlordID(suite.ctx, suite.landlordID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), subscription)
}

func (suite *SubscriptionRepoTestSuite) TestRecordPayment_Success() {
	paidAt := time.Now()

	suite.mock.ExpectExec(`UPDATE subscriptions\s+SET membership_paid = true`).
		WithArgs(suite.landlordID, 499.0, paidAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.RecordPayment(suite.ctx, suite.landlordID, 499.0, paidAt)
	assert.NoError(suite.T(), err)
}

func (suite *SubscriptionRepoTestSuite) TestRecordPayment_NoSubscriptionRecord() {
	paidAt := time.Now()

	suite.mock.ExpectExec(`UPDATE subscriptions\s+SET membership_paid = true`).
		WithArgs(suite.landlordID, 499.0, paidAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.RecordPayment(suite.ctx, suite.landlordID, 499.0, paidAt)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *SubscriptionRepoTestSuite) TestListExpiringTrials() {
	now := time.Now()
	cutoff := now.AddDate(0, 0, 3)
	soon := now.AddDate(0, 0, 2)
	start := now.AddDate(0, 0, -28)

	suite.mock.ExpectQuery(`SELECT id, landlord_id, membership_paid, membership_amount, membership_payment_date, trial_start_date, trial_end_date, created_at, updated_at\s+FROM subscriptions\s+WHERE membership_paid = false AND trial_end_date IS NOT NULL AND trial_end_date <= \$1\s+ORDER BY trial_end_date`).
		WithArgs(cutoff).
		WillReturnRows(pgxmock.NewRows(subscriptionColumns()).
			AddRow(uuid.New(), suite.landlordID, false, 0.0, nil, &start, &soon, now, now))

	subscriptions, err := suite.repo.ListExpiringTrials(suite.ctx, cutoff)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), subscriptions, 1)
	assert.Equal(suite.T(), suite.landlordID, subscriptions[0].LandlordID)
}
