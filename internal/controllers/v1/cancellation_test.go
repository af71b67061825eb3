package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	v1 "github.com/fne-platform/hours-backend/internal/controllers/v1"
	"github.com/fne-platform/hours-backend/internal/models"
	fne_uuid "github.com/fne-platform/hours-backend/internal/uuid"
	"github.com/fne-platform/hours-backend/test"
)

const cancellationClausesURL = "http://example.com/v1/cancellation-clauses"

func (suite *TestSuiteStandard) TestCancellationClausesTable() {
	recorder := test.Request(suite.T(), http.MethodGet, cancellationClausesURL, nil, test.AuthHeader(suite.T(), "consultor", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CancellationClauseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 6)
}

func (suite *TestSuiteStandard) TestCancellationClausesEvaluate() {
	recorder := test.Request(suite.T(), http.MethodGet, cancellationClausesURL+"?modality=online&cancelledBy=school&noticeHours=50", nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CancellationClauseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "clause_1", response.Data.Clause)
	assert.Equal(suite.T(), models.StatusReturned, response.Data.LedgerStatus)

	recorder = test.Request(suite.T(), http.MethodGet, cancellationClausesURL+"?modality=online&cancelledBy=school&noticeHours=12", nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "clause_2", response.Data.Clause)
	assert.Equal(suite.T(), models.StatusPenalized, response.Data.LedgerStatus)
	assert.True(suite.T(), response.Data.ConsultantPaid)
}

func (suite *TestSuiteStandard) TestCancellationClausesEvaluateErrors() {
	recorder := test.Request(suite.T(), http.MethodGet, cancellationClausesURL+"?cancelledBy=alumnos", nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
