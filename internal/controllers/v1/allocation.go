package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fne-platform/hours-backend/internal/httputil"
	"github.com/fne-platform/hours-backend/internal/models"
)

// RegisterAllocationRoutes registers the routes for hour distributions with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAllocations)
	r.POST("", CreateAllocations)
	r.DELETE("", DeleteAllocations)
}

// AllocationEditable represents all user configurable parameters of one
// bucket in a distribution.
type AllocationEditable struct {
	HourTypeKey      string          `json:"hourTypeKey" binding:"required" example:"coaching_individual"` // Registry key of the hour type
	Hours            decimal.Decimal `json:"hours" example:"10"`                                           // Hours allocated to this bucket
	IsFixed          bool            `json:"isFixed" example:"false" default:"false"`                      // Whether this is the fixed allocation
	AddsToContractID *uuid.UUID      `json:"addsToContractId"`                                             // Set for annexes: the contract whose bucket is extended
}

func (editable AllocationEditable) item() models.AllocationItem {
	return models.AllocationItem{
		HourTypeKey:      editable.HourTypeKey,
		Hours:            editable.Hours,
		IsFixed:          editable.IsFixed,
		AddsToContractID: editable.AddsToContractID,
	}
}

// AllocationListResponse is the response for distribution writes and reads.
type AllocationListResponse struct {
	Data []models.Allocation `json:"data"`
}

// AllocationDeleteResponse reports how many allocations a deletion removed.
type AllocationDeleteResponse struct {
	Deleted int64 `json:"deleted" example:"9"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"Contract ID"
// @Router			/v1/contracts/{id}/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsPostDelete(c)
}

// @Summary		Distribute contract hours
// @Description	Creates the hour distribution of a contract as a batch of buckets
// @Tags			Allocations
// @Produce		json
// @Success		201		{object}	AllocationListResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string					true	"Contract ID"
// @Param			buckets	body		[]AllocationEditable	true	"Buckets"
// @Router			/v1/contracts/{id}/allocations [post]
func CreateAllocations(c *gin.Context) {
	var uri URIContract
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	claims, ok := requireAdmin(c)
	if !ok {
		return
	}

	var editables []AllocationEditable
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	items := make([]models.AllocationItem, 0, len(editables))
	for _, editable := range editables {
		items = append(items, editable.item())
	}

	allocations, err := models.CreateAllocations(uri.ID.UUID, items, claims.UserID().UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AllocationListResponse{Data: allocations})
}

// @Summary		Delete the hour distribution
// @Description	Deletes all allocations of a contract. Fails if ledger entries or annexes reference them
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationDeleteResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"Contract ID"
// @Router			/v1/contracts/{id}/allocations [delete]
func DeleteAllocations(c *gin.Context) {
	var uri URIContract
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	_, ok := requireAdmin(c)
	if !ok {
		return
	}

	deleted, err := models.DeleteAllocations(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AllocationDeleteResponse{Deleted: deleted})
}
