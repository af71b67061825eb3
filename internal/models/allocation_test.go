package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fne-platform/hours-backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateAllocations() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})

	allocations := suite.distribute(contract, map[string]float64{
		"coaching_individual": 30,
		"talleres_online":     25,
		"visitas_aula":        20,
		"online_learning":     15,
	})

	assert.Len(suite.T(), allocations, 4)

	for _, allocation := range allocations {
		assert.Equal(suite.T(), contract.ID, allocation.ContractID)
		assert.Nil(suite.T(), allocation.AddsToAllocationID)
	}

	fixed := suite.allocationFor(contract, "online_learning")
	assert.True(suite.T(), fixed.IsFixedAllocation)
	assert.True(suite.T(), decimal.NewFromInt(15).Equal(fixed.AllocatedHours))
}

func (suite *TestSuiteStandard) TestCreateAllocationsOnlyOnce() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})

	_, err := models.CreateAllocations(contract.ID, []models.AllocationItem{
		{HourTypeKey: "coaching_grupal", Hours: decimal.NewFromInt(90)},
	}, uuid.New())

	assert.ErrorIs(suite.T(), err, models.ErrAlreadyAllocated)
}

func (suite *TestSuiteStandard) TestAllocationUniqueConstraint() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})

	existing := suite.allocationFor(contract, "coaching_individual")

	// A second primary allocation for the same contract and hour type is
	// rejected by the database itself, independent of the validation ladder
	duplicate := models.Allocation{
		ContractID:     contract.ID,
		HourTypeID:     existing.HourTypeID,
		AllocatedHours: decimal.NewFromInt(10),
		CreatedBy:      uuid.New(),
	}

	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBucketExists)
}

func (suite *TestSuiteStandard) TestCreateAllocationsValidation() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	pending := suite.createTestContract(models.Contract{Status: models.ContractPending})

	item := func(key string, hours float64) models.AllocationItem {
		return models.AllocationItem{HourTypeKey: key, Hours: decimal.NewFromFloat(hours)}
	}

	tests := []struct {
		name       string
		contractID uuid.UUID
		items      []models.AllocationItem
		err        error
	}{
		{"missing contract", uuid.New(), []models.AllocationItem{item("coaching_individual", 90)}, models.ErrResourceNotFound},
		{"inactive contract", pending.ID, []models.AllocationItem{item("coaching_individual", 90)}, models.ErrContractNotActive},
		{"no items", contract.ID, []models.AllocationItem{}, models.ErrNoAllocationItems},
		{"negative hours", contract.ID, []models.AllocationItem{item("coaching_individual", -5)}, models.ErrHoursNotPositive},
		{"zero hours", contract.ID, []models.AllocationItem{item("coaching_individual", 0)}, models.ErrHoursNotPositive},
		{"too precise", contract.ID, []models.AllocationItem{item("coaching_individual", 89.999), item("coaching_grupal", 0.001)}, models.ErrHoursPrecision},
		{"duplicate key", contract.ID, []models.AllocationItem{item("coaching_individual", 45), item("coaching_individual", 45)}, models.ErrDuplicateHourType},
		{"sum mismatch", contract.ID, []models.AllocationItem{item("coaching_individual", 50)}, models.ErrSumMismatch},
		{"unknown key", contract.ID, []models.AllocationItem{item("coaching_individual", 45), item("horas_extra", 45)}, models.ErrUnknownHourType},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := models.CreateAllocations(tt.contractID, tt.items, uuid.New())
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateAllocationsTooManyItems() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(100)})

	items := make([]models.AllocationItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, models.AllocationItem{
			HourTypeKey: "coaching_individual",
			Hours:       decimal.NewFromInt(10),
		})
	}

	_, err := models.CreateAllocations(contract.ID, items, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrTooManyItems)
}

func (suite *TestSuiteStandard) TestCreateAllocationsFixedFlag() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})

	// Only the designated key may carry the fixed flag
	_, err := models.CreateAllocations(contract.ID, []models.AllocationItem{
		{HourTypeKey: "coaching_individual", Hours: decimal.NewFromInt(90), IsFixed: true},
	}, uuid.New())

	assert.ErrorIs(suite.T(), err, models.ErrFixedNotAllowed)
}

func (suite *TestSuiteStandard) TestCreateAllocationsSumMessage() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})

	_, err := models.CreateAllocations(contract.ID, []models.AllocationItem{
		{HourTypeKey: "coaching_individual", Hours: decimal.NewFromInt(80)},
	}, uuid.New())

	require.ErrorIs(suite.T(), err, models.ErrSumMismatch)
	assert.Contains(suite.T(), err.Error(), "distributed 80")
	assert.Contains(suite.T(), err.Error(), "contracted 90")
}

func (suite *TestSuiteStandard) TestCreateAllocationsAnnex() {
	parent := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(parent, map[string]float64{
		"coaching_individual": 60,
		"talleres_online":     30,
	})

	annex := suite.createTestContract(models.Contract{
		SchoolID:        parent.SchoolID,
		ContractedHours: decimal.NewFromInt(20),
	})

	allocations, err := models.CreateAllocations(annex.ID, []models.AllocationItem{
		{HourTypeKey: "coaching_individual", Hours: decimal.NewFromInt(20), AddsToContractID: &parent.ID},
	}, uuid.New())
	require.NoError(suite.T(), err)

	require.Len(suite.T(), allocations, 1)
	require.NotNil(suite.T(), allocations[0].AddsToAllocationID)

	primary := suite.allocationFor(parent, "coaching_individual")
	assert.Equal(suite.T(), primary.ID, *allocations[0].AddsToAllocationID)
}

func (suite *TestSuiteStandard) TestCreateAllocationsAnnexParentMissing() {
	parent := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(parent, map[string]float64{"coaching_individual": 90})

	annex := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(10)})

	// The parent has no talleres_online bucket to extend
	_, err := models.CreateAllocations(annex.ID, []models.AllocationItem{
		{HourTypeKey: "talleres_online", Hours: decimal.NewFromInt(10), AddsToContractID: &parent.ID},
	}, uuid.New())

	assert.ErrorIs(suite.T(), err, models.ErrAnnexParentNotFound)
}

func (suite *TestSuiteStandard) TestDeleteAllocations() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(contract, map[string]float64{
		"coaching_individual": 60,
		"talleres_online":     30,
	})

	deleted, err := models.DeleteAllocations(contract.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), deleted)

	// The contract can now be distributed again
	suite.distribute(contract, map[string]float64{"coaching_grupal": 90})
}

func (suite *TestSuiteStandard) TestDeleteAllocationsNotFound() {
	contract := suite.createTestContract(models.Contract{})

	_, err := models.DeleteAllocations(contract.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteAllocationsWithLedgerEntries() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})

	allocation := suite.allocationFor(contract, "coaching_individual")
	_, err := models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromInt(2), models.StatusConsumed, allocation.CreatedAt, "acta firmada", uuid.New())
	require.NoError(suite.T(), err)

	_, err = models.DeleteAllocations(contract.ID)
	assert.ErrorIs(suite.T(), err, models.ErrLedgerEntriesExist)
}

func (suite *TestSuiteStandard) TestDeleteAllocationsWithAnnexes() {
	parent := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(parent, map[string]float64{"coaching_individual": 90})

	annex := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(10)})
	_, err := models.CreateAllocations(annex.ID, []models.AllocationItem{
		{HourTypeKey: "coaching_individual", Hours: decimal.NewFromInt(10), AddsToContractID: &parent.ID},
	}, uuid.New())
	require.NoError(suite.T(), err)

	_, err = models.DeleteAllocations(parent.ID)
	assert.ErrorIs(suite.T(), err, models.ErrAnnexesReferencing)

	// Deleting the annex contract's own distribution works
	deleted, err := models.DeleteAllocations(annex.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), deleted)
}
