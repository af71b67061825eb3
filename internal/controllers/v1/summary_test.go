package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/fne-platform/hours-backend/internal/controllers/v1"
	"github.com/fne-platform/hours-backend/internal/models"
	fne_uuid "github.com/fne-platform/hours-backend/internal/uuid"
	"github.com/fne-platform/hours-backend/test"
)

func (suite *TestSuiteStandard) bucketsURL(contract models.Contract) string {
	return fmt.Sprintf("http://example.com/v1/contracts/%s/buckets", contract.ID)
}

func (suite *TestSuiteStandard) TestBucketsGet() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{
		"coaching_individual": 50,
		"talleres_online":     40,
	})

	session := suite.createTestSession(models.Session{ContractID: contract.ID, DurationMinutes: 90})
	_, err := models.CreateReservation(session.ID, session.ConsultorID)
	require.NoError(suite.T(), err)

	recorder := test.Request(suite.T(), http.MethodGet, suite.bucketsURL(contract), nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BucketListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), decimal.NewFromInt(90).Equal(response.ContractedHours))
	require.Len(suite.T(), response.Buckets, 2)

	// Sorted by key, so coaching_individual comes first
	coaching := response.Buckets[0]
	assert.Equal(suite.T(), "coaching_individual", coaching.Key)
	assert.True(suite.T(), decimal.NewFromFloat(1.5).Equal(coaching.Reserved), "reserved is %s", coaching.Reserved)
	assert.True(suite.T(), decimal.NewFromFloat(48.5).Equal(coaching.Available), "available is %s", coaching.Available)
}

func (suite *TestSuiteStandard) TestBucketsGetSchoolScope() {
	school := suite.createTestSchool(models.School{})
	contract := suite.createTestContract(models.Contract{SchoolID: school.ID})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})

	// Directivo of the school reads the contract
	recorder := test.Request(suite.T(), http.MethodGet, suite.bucketsURL(contract), nil, test.AuthHeader(suite.T(), "equipo_directivo", fne_uuid.New(), wrap(school.ID)))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Directivo of another school does not
	recorder = test.Request(suite.T(), http.MethodGet, suite.bucketsURL(contract), nil, test.AuthHeader(suite.T(), "equipo_directivo", fne_uuid.New(), fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	// Consultores have no contract level access
	recorder = test.Request(suite.T(), http.MethodGet, suite.bucketsURL(contract), nil, test.AuthHeader(suite.T(), "consultor", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestBucketsGetErrors() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/contracts/not-a-uuid/buckets", nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/contracts/%s/buckets", fne_uuid.New()), nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/contracts/%s/buckets", fne_uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
