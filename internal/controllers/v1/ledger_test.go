package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/fne-platform/hours-backend/internal/controllers/v1"
	"github.com/fne-platform/hours-backend/internal/models"
	fne_uuid "github.com/fne-platform/hours-backend/internal/uuid"
	"github.com/fne-platform/hours-backend/test"
)

func (suite *TestSuiteStandard) ledgerURL(contract models.Contract) string {
	return fmt.Sprintf("http://example.com/v1/contracts/%s/ledger", contract.ID)
}

func (suite *TestSuiteStandard) TestLedgerGet() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{
		"coaching_individual": 50,
		"talleres_online":     40,
	})

	for _, key := range []string{"coaching_individual", "talleres_online"} {
		allocation := suite.allocationFor(contract, key)
		_, err := models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromInt(1), models.StatusConsumed, time.Now(), "Sesión de planificación", uuid.New())
		require.NoError(suite.T(), err)
	}

	recorder := test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract), nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LedgerListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Len(suite.T(), response.Ledger, 2)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 50, response.PageSize)
}

func (suite *TestSuiteStandard) TestLedgerGetFilters() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{
		"coaching_individual": 50,
		"talleres_online":     40,
	})

	coaching := suite.allocationFor(contract, "coaching_individual")
	talleres := suite.allocationFor(contract, "talleres_online")

	_, err := models.CreateManualEntry(contract.ID, coaching.ID, decimal.NewFromInt(1), models.StatusConsumed, time.Now(), "Sesión de planificación", uuid.New())
	require.NoError(suite.T(), err)
	_, err = models.CreateManualEntry(contract.ID, talleres.ID, decimal.NewFromInt(2), models.StatusReturned, time.Now(), "Cancelación", uuid.New())
	require.NoError(suite.T(), err)

	admin := test.AuthHeader(suite.T(), "admin", fne_uuid.New())

	recorder := test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract)+"?key=coaching_*", nil, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LedgerListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)

	recorder = test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract)+"?status=returned", nil, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)

	// Accent folding on the note filter
	recorder = test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract)+"?note=planificacion", nil, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)

	// Unknown status values are rejected
	recorder = test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract)+"?status=perdida", nil, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLedgerGetConsultorScope() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})

	consultor := fne_uuid.New()
	session := suite.createTestSession(models.Session{ContractID: contract.ID, ConsultorID: consultor.UUID})
	_, err := models.CreateReservation(session.ID, consultor.UUID)
	require.NoError(suite.T(), err)

	allocation := suite.allocationFor(contract, "coaching_individual")
	_, err = models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromInt(1), models.StatusConsumed, time.Now(), "", uuid.New())
	require.NoError(suite.T(), err)

	// The consultant only sees entries of their own sessions
	recorder := test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract), nil, test.AuthHeader(suite.T(), "consultor", consultor))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LedgerListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)

	// A consultant without sessions gets an empty page
	recorder = test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract), nil, test.AuthHeader(suite.T(), "consultor", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Zero(suite.T(), response.Total)
	assert.Empty(suite.T(), response.Ledger)
}

func (suite *TestSuiteStandard) TestLedgerGetSchoolScope() {
	school := suite.createTestSchool(models.School{})
	contract := suite.createTestContract(models.Contract{SchoolID: school.ID})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})

	recorder := test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract), nil, test.AuthHeader(suite.T(), "equipo_directivo", fne_uuid.New(), wrap(school.ID)))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, suite.ledgerURL(contract), nil, test.AuthHeader(suite.T(), "equipo_directivo", fne_uuid.New(), fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestLedgerCreateEntry() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})
	allocation := suite.allocationFor(contract, "coaching_individual")

	recorder := test.Request(suite.T(), http.MethodPost, suite.ledgerURL(contract), map[string]any{
		"allocationId": allocation.ID,
		"hours":        1.5,
		"status":       "consumed",
		"sessionDate":  "2026-04-01T00:00:00Z",
		"notes":        "Ajuste por acta firmada",
	}, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.LedgerEntryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.IsManual)
	assert.Equal(suite.T(), "Ajuste por acta firmada", response.Data.Notes)
}

func (suite *TestSuiteStandard) TestLedgerCreateEntryErrors() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})
	allocation := suite.allocationFor(contract, "coaching_individual")

	admin := test.AuthHeader(suite.T(), "admin", fne_uuid.New())

	// Negative hours
	recorder := test.Request(suite.T(), http.MethodPost, suite.ledgerURL(contract), map[string]any{
		"allocationId": allocation.ID,
		"hours":        -1,
		"status":       "consumed",
	}, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// Unknown allocation
	recorder = test.Request(suite.T(), http.MethodPost, suite.ledgerURL(contract), map[string]any{
		"allocationId": uuid.New(),
		"hours":        1,
		"status":       "consumed",
	}, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// Writes are admin-only
	recorder = test.Request(suite.T(), http.MethodPost, suite.ledgerURL(contract), map[string]any{
		"allocationId": allocation.ID,
		"hours":        1,
		"status":       "consumed",
	}, test.AuthHeader(suite.T(), "consultor", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestLedgerUpdateEntryStatus() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})
	allocation := suite.allocationFor(contract, "coaching_individual")

	entry, err := models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromInt(2), models.StatusReturned, time.Now(), "", uuid.New())
	require.NoError(suite.T(), err)

	url := fmt.Sprintf("%s/%s/status", suite.ledgerURL(contract), entry.ID)

	recorder := test.Request(suite.T(), http.MethodPatch, url, map[string]any{
		"status": "penalized",
		"reason": "Acta indica aviso fuera de plazo",
	}, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LedgerEntryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.StatusPenalized, response.Data.Status)
	assert.True(suite.T(), response.Data.AdminOverride)
}

func (suite *TestSuiteStandard) TestLedgerUpdateEntryStatusErrors() {
	contract := suite.createTestContract(models.Contract{})
	suite.distribute(contract, map[string]float64{"coaching_individual": 90})
	allocation := suite.allocationFor(contract, "coaching_individual")

	entry, err := models.CreateManualEntry(contract.ID, allocation.ID, decimal.NewFromInt(2), models.StatusReturned, time.Now(), "", uuid.New())
	require.NoError(suite.T(), err)

	other := suite.createTestContract(models.Contract{})
	admin := test.AuthHeader(suite.T(), "admin", fne_uuid.New())

	// The entry belongs to a different contract
	url := fmt.Sprintf("http://example.com/v1/contracts/%s/ledger/%s/status", other.ID, entry.ID)
	recorder := test.Request(suite.T(), http.MethodPatch, url, map[string]any{
		"status": "penalized",
		"reason": "Acta indica aviso fuera de plazo",
	}, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	// Missing reason fails gin binding
	url = fmt.Sprintf("%s/%s/status", suite.ledgerURL(contract), entry.ID)
	recorder = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"status": "penalized"}, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// Unknown entry
	url = fmt.Sprintf("%s/%s/status", suite.ledgerURL(contract), uuid.New())
	recorder = test.Request(suite.T(), http.MethodPatch, url, map[string]any{
		"status": "penalized",
		"reason": "Acta indica aviso fuera de plazo",
	}, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
