package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	v1 "github.com/fne-platform/hours-backend/internal/controllers/v1"
	fne_uuid "github.com/fne-platform/hours-backend/internal/uuid"
	"github.com/fne-platform/hours-backend/test"
)

func (suite *TestSuiteStandard) TestHourTypesGet() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/hour-types", nil, test.AuthHeader(suite.T(), "consultor", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HourTypeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 9)

	// Sorted by key
	for i := 1; i < len(response.Data); i++ {
		assert.Less(suite.T(), response.Data[i-1].Key, response.Data[i].Key)
	}
}

func (suite *TestSuiteStandard) TestHourTypesGetUnauthenticated() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/hour-types", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestHourTypesOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/hour-types", nil, test.AuthHeader(suite.T(), "admin", fne_uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
