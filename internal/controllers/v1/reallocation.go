package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fne-platform/hours-backend/internal/httputil"
	"github.com/fne-platform/hours-backend/internal/models"
)

// RegisterReallocationRoutes registers the routes for hour reallocations with
// the RouterGroup that is passed.
func RegisterReallocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReallocations)
	r.GET("", GetReallocations)
	r.POST("", CreateReallocation)
}

// ReallocationEditable represents all user configurable parameters of a
// reallocation.
type ReallocationEditable struct {
	FromKey string          `json:"fromKey" binding:"required" example:"talleres_online"`                     // Bucket giving the hours
	ToKey   string          `json:"toKey" binding:"required" example:"coaching_individual"`                   // Bucket receiving the hours
	Hours   decimal.Decimal `json:"hours" example:"5"`                                                        // Hours to move
	Reason  string          `json:"reason" binding:"required" example:"Colegio solicita más coaching individual"` // Why the hours move, at least 10 characters
}

// ReallocationLogResponse is the audit trail of a contract's reallocations.
type ReallocationLogResponse struct {
	Data []models.ReallocationLogEntry `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reallocations
// @Success		204
// @Param			id	path	string	true	"Contract ID"
// @Router			/v1/contracts/{id}/reallocations [options]
func OptionsReallocations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Reallocate hours
// @Description	Moves hours between two buckets of a contract, preserving the total
// @Tags			Reallocations
// @Produce		json
// @Success		200				{object}	BucketListResponse
// @Failure		400				{object}	httpError
// @Failure		403				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		string					true	"Contract ID"
// @Param			reallocation	body		ReallocationEditable	true	"Reallocation"
// @Router			/v1/contracts/{id}/reallocations [post]
func CreateReallocation(c *gin.Context) {
	var uri URIContract
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	claims, ok := requireAdmin(c)
	if !ok {
		return
	}

	var editable ReallocationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	buckets, err := models.Reallocate(uri.ID.UUID, editable.FromKey, editable.ToKey, editable.Hours, editable.Reason, claims.UserID().UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	contract, err := models.ContractByID(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BucketListResponse{
		ContractedHours: contract.ContractedHours,
		Buckets:         buckets,
	})
}

// @Summary		Reallocation log
// @Description	Returns the audit trail of hour movements of a contract, newest first
// @Tags			Reallocations
// @Produce		json
// @Success		200	{object}	ReallocationLogResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"Contract ID"
// @Router			/v1/contracts/{id}/reallocations [get]
func GetReallocations(c *gin.Context) {
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

	entries, err := models.ReallocationLog(contract.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReallocationLogResponse{Data: entries})
}
