package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fne-platform/hours-backend/internal/httputil"
	"github.com/fne-platform/hours-backend/internal/models"
)

// RegisterBucketRoutes registers the routes for bucket summaries with the
// RouterGroup that is passed.
func RegisterBucketRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBuckets)
	r.GET("", GetBuckets)
}

// BucketListResponse is the derived bucket state of one contract.
type BucketListResponse struct {
	ContractedHours decimal.Decimal        `json:"contractedHours" example:"90"`
	Buckets         []models.BucketSummary `json:"buckets"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Param			id	path	string	true	"Contract ID"
// @Router			/v1/contracts/{id}/buckets [options]
func OptionsBuckets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Bucket summary
// @Description	Returns the per-bucket allocation, reservation and consumption state of a contract
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketListResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"Contract ID"
// @Router			/v1/contracts/{id}/buckets [get]
func GetBuckets(c *gin.Context) {
	var uri URIContract
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	contract, err := models.ContractByID(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, ok := requireContractRead(c, contract)
	if !ok {
		return
	}

	buckets, err := models.BucketSummaries(contract.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BucketListResponse{
		ContractedHours: contract.ContractedHours,
		Buckets:         buckets,
	})
}
