package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"renthub/internal/common"
)

type UnitRepoTestSuite struct {
	suite.Suite
	mock       pgxmock.PgxPoolIface
	repo       UnitRepository
	landlordID uuid.UUID
	unitID     uuid.UUID
	ctx        context.Context
}

func (suite *UnitRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewUnitRepository(mock)
	suite.landlordID = uuid.New()
	suite.unitID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *UnitRepoTestSuite) TearDownTest() {
	suite.mock.Close()
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func TestUnitRepoTestSuite(t *testing.T) {
	suite.Run(t, new(UnitRepoTestSuite))
}

func (suite *UnitRepoTestSuite) TestGetOwned_Success() {
	propertyID := uuid.New()
	token := "existing-token"
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT u\.id, u\.property_id, u\.unit_number, u\.is_occupied, u\.invitation_token, u\.rent_amount, u\.created_at, u\.updated_at\s+FROM units u\s+JOIN properties p ON p\.id = u\.property_id\s+WHERE u\.id = \$1 AND p\.landlord_id = \$2`).
		WithArgs(suite.unitID, suite.landlordID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "property_id", "unit_number", "is_occupied", "invitation_token", "rent_amount", "created_at", "updated_at"}).
			AddRow(suite.unitID, propertyID, "4B", false, &token, 1200.0, now, now))

	unit, err := suite.repo.GetOwned(suite.ctx, suite.landlordID, suite.unitID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.unitID, unit.ID)
	assert.Equal(suite.T(), "4B", unit.UnitNumber)
	assert.NotNil(suite.T(), unit.InvitationToken)
}

func (suite *UnitRepoTestSuite) TestGetOwned_OtherLandlordsUnitIsNotFound() {
	suite.mock.ExpectQuery(`SELECT u\.id, u\.property_id, u\.unit_number, u\.is_occupied, u\.invitation_token, u\.rent_amount, u\.created_at, u\.updated_at\s+FROM units u\s+JOIN properties p ON p\.id = u\.property_id\s+WHERE u\.id = \$1 AND p\.landlord_id = \$2`).
		WithArgs(suite.unitID, suite.landlordID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "property_id", "unit_number", "is_occupied", "invitation_token", "rent_amount", "created_at", "updated_at"}))

	unit, err := suite.repo.GetOwned(suite.ctx, suite.landlordID, suite.unitID)

	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Nil(suite.T(), unit)
}

func (suite *UnitRepoTestSuite) TestGetByInvitationToken_Found() {
	suite.mock.ExpectQuery(`SELECT u\.id, u\.unit_number, p\.name, p\.address, p\.city, p\.state, u\.rent_amount, u\.is_occupied\s+FROM units u\s+JOIN properties p ON p\.id = u\.property_id\s+WHERE u\.invitation_token = \$1`).
		WithArgs("valid-token").
		WillReturnRows(pgxmock.NewRows([]string{"id", "unit_number", "name", "address", "city", "state", "rent_amount", "is_occupied"}).
			AddRow(suite.unitID, "4B", "Maple Court", "12 Maple St", "Springfield", "IL", 1200.0, false))

	invited, err := suite.repo.GetByInvitationToken(suite.ctx, "valid-token")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.unitID, invited.UnitID)
	assert.Equal(suite.T(), "Maple Court", invited.PropertyName)
}

func (suite *UnitRepoTestSuite) TestGetByInvitationToken_StaleToken() {
	suite.mock.ExpectQuery(`SELECT u\.id, u\.unit_number, p\.name, p\.address, p\.city, p\.state, u\.rent_amount, u\.is_occupied\s+FROM units u\s+JOIN properties p ON p\.id = u\.property_id\s+WHERE u\.invitation_token = \$1`).
		WithArgs("stale-token").
		WillReturnRows(pgxmock.NewRows([]string{"id", "unit_number", "name", "address", "city", "state", "rent_amount", "is_occupied"}))

	invited, err := suite.repo.GetByInvitationToken(suite.ctx, "stale-token")

	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.Nil(suite.T(), invited)
}

func (suite *UnitRepoTestSuite) TestRegenerateInvitationToken_Success() {
	suite.mock.ExpectExec(`UPDATE units\s+SET invitation_token = \$2, updated_at = NOW\(\)\s+WHERE id = \$1`).
		WithArgs(suite.unitID, "fresh-token").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.RegenerateInvitationToken(suite.ctx, suite.unitID, "fresh-token")
	assert.NoError(suite.T(), err)
}

func (suite *UnitRepoTestSuite) TestRegenerateInvitationToken_UnknownUnit() {
	suite.mock.ExpectExec(`UPDATE units\s+SET invitation_token = \$2, updated_at = NOW\(\)\s+WHERE id = \$1`).
		WithArgs(suite.unitID, "fresh-token").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.RegenerateInvitationToken(suite.ctx, suite.unitID, "fresh-token")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *UnitRepoTestSuite) TestRegenerateInvitationToken_CollisionIsConflict() {
	suite.mock.ExpectExec(`UPDATE units\s+SET invitation_token = \$2, updated_at = NOW\(\)\s+WHERE id = \$1`).
		WithArgs(suite.unitID, "colliding-token").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := suite.repo.RegenerateInvitationToken(suite.ctx, suite.unitID, "colliding-token")

	var conflict *common.ConflictError
	assert.ErrorAs(suite.T(), err, &conflict)
}

func (suite *UnitRepoTestSuite) TestSetOccupied() {
	suite.mock.ExpectExec(`UPDATE units\s+SET is_occupied = \$2, updated_at = NOW\(\)\s+WHERE id = \$1`).
		WithArgs(suite.unitID, true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.SetOccupied(suite.ctx, suite.unitID, true)
	assert.NoError(suite.T(), err)
}
