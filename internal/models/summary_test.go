package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fne-platform/hours-backend/internal/models"
)

func (suite *TestSuiteStandard) TestBucketSummaries() {
	contract := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(contract, map[string]float64{
		"coaching_individual": 50,
		"talleres_online":     25,
		"online_learning":     15,
	})

	allocation := suite.allocationFor(contract, "coaching_individual")
	actor := uuid.New()

	_, err := models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromFloat(1.5), models.StatusReserved, contract.CreatedAt, "", actor)
	require.NoError(suite.T(), err)
	_, err = models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromInt(3), models.StatusConsumed, contract.CreatedAt, "", actor)
	require.NoError(suite.T(), err)

	// Returned hours do not reduce availability
	_, err = models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromInt(2), models.StatusReturned, contract.CreatedAt, "", actor)
	require.NoError(suite.T(), err)

	buckets, err := models.BucketSummaries(contract.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), buckets, 3)

	// Sorted by key
	assert.Equal(suite.T(), "coaching_individual", buckets[0].Key)
	assert.Equal(suite.T(), "online_learning", buckets[1].Key)
	assert.Equal(suite.T(), "talleres_online", buckets[2].Key)

	coaching := buckets[0]
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(coaching.Allocated), "allocated is %s", coaching.Allocated)
	assert.True(suite.T(), decimal.NewFromFloat(1.5).Equal(coaching.Reserved), "reserved is %s", coaching.Reserved)
	assert.True(suite.T(), decimal.NewFromInt(3).Equal(coaching.Consumed), "consumed is %s", coaching.Consumed)
	assert.True(suite.T(), decimal.NewFromFloat(45.5).Equal(coaching.Available), "available is %s", coaching.Available)

	assert.True(suite.T(), buckets[1].IsFixed)

	// Untouched bucket
	talleres := buckets[2]
	assert.True(suite.T(), decimal.NewFromInt(25).Equal(talleres.Available))
	assert.True(suite.T(), talleres.Reserved.IsZero())
}

func (suite *TestSuiteStandard) TestBucketSummariesAnnex() {
	parent := suite.createTestContract(models.Contract{ContractedHours: decimal.NewFromInt(90)})
	suite.distribute(parent, map[string]float64{"coaching_individual": 90})

	annexContract := suite.createTestContract(models.Contract{
		SchoolID:        parent.SchoolID,
		ContractedHours: decimal.NewFromInt(20),
	})
	annexes, err := models.CreateAllocations(annexContract.ID, []models.AllocationItem{
		{HourTypeKey: "coaching_individual", Hours: decimal.NewFromInt(20), AddsToContractID: &parent.ID},
	}, uuid.New())
	require.NoError(suite.T(), err)

	// Ledger entries against the annex land in the parent's bucket
	_, err = models.CreateManualEntry(annexContract.ID, annexes[0].ID, decimal.NewFromInt(4), models.StatusConsumed, parent.CreatedAt, "", uuid.New())
	require.NoError(suite.T(), err)

	buckets, err := models.BucketSummaries(parent.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), buckets, 1)

	bucket := buckets[0]
	assert.True(suite.T(), decimal.NewFromInt(90).Equal(bucket.Allocated))
	assert.True(suite.T(), decimal.NewFromInt(20).Equal(bucket.AnnexHours), "annex hours are %s", bucket.AnnexHours)
	assert.True(suite.T(), decimal.NewFromInt(4).Equal(bucket.Consumed))
	assert.True(suite.T(), decimal.NewFromInt(106).Equal(bucket.Available), "available is %s", bucket.Available)

	require.Len(suite.T(), bucket.Sources, 2)

	// The annex contract itself has no buckets of its own
	annexBuckets, err := models.BucketSummaries(annexContract.ID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), annexBuckets)
}

func (suite *TestSuiteStandard) TestBucketSummariesEmpty() {
	contract := suite.createTestContract(models.Contract{})

	buckets, err := models.BucketSummaries(contract.ID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), buckets)
}
