package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fne-platform/hours-backend/internal/auth"
	"github.com/fne-platform/hours-backend/internal/httputil"
	"github.com/fne-platform/hours-backend/internal/models"
	fne_uuid "github.com/fne-platform/hours-backend/internal/uuid"
)

// RegisterLedgerRoutes registers the routes for the hour ledger with the
// RouterGroup that is passed.
func RegisterLedgerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsLedger)
	r.GET("", GetLedger)
	r.POST("", CreateLedgerEntry)

	r.OPTIONS("/:entryId/status", OptionsLedgerEntryStatus)
	r.PATCH("/:entryId/status", UpdateLedgerEntryStatus)
}

// LedgerQuery are the filters for ledger listings.
type LedgerQuery struct {
	Key        string        `form:"key"`        // Bucket key, glob patterns allowed
	Status     string        `form:"status"`     // Entry status
	RecordedBy fne_uuid.UUID `form:"recordedBy"` // Author of the entry
	Consultor  fne_uuid.UUID `form:"consultor"`  // Consultant facilitating the session
	Note       string        `form:"note"`       // Accent-insensitive substring of the notes
	Page       int           `form:"page"`       // 1-based page, defaults to 1
	PageSize   int           `form:"pageSize"`   // Defaults to 50
	Order      string        `form:"order"`      // asc or desc on session date, defaults to desc
}

// LedgerEntryEditable represents all user configurable parameters of a
// manual ledger entry.
type LedgerEntryEditable struct {
	AllocationID uuid.UUID       `json:"allocationId" binding:"required"`            // Allocation the correction applies to
	Hours        decimal.Decimal `json:"hours" example:"1.5"`                        // Hours, always positive
	Status       string          `json:"status" binding:"required" example:"consumed"` // One of reserved, consumed, returned, penalized
	SessionDate  time.Time       `json:"sessionDate"`                                // Date the correction refers to
	Notes        string          `json:"notes" example:"Ajuste por acta firmada"`    // Free-form explanation
}

// LedgerStatusEditable is the payload for overriding a cancellation status.
type LedgerStatusEditable struct {
	Status string `json:"status" binding:"required" example:"penalized"` // returned or penalized
	Reason string `json:"reason" binding:"required" example:"Acta indica aviso fuera de plazo"`
}

// LedgerListResponse is one page of a contract's ledger.
type LedgerListResponse struct {
	Ledger   []models.LedgerEntry `json:"ledger"`
	Total    int64                `json:"total" example:"120"`
	Page     int                  `json:"page" example:"1"`
	PageSize int                  `json:"pageSize" example:"50"`
}

// LedgerEntryResponse wraps a single ledger entry.
type LedgerEntryResponse struct {
	Data models.LedgerEntry `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Param			id	path	string	true	"Contract ID"
// @Router			/v1/contracts/{id}/ledger [options]
func OptionsLedger(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Param			id		path	string	true	"Contract ID"
// @Param			entryId	path	string	true	"Ledger entry ID"
// @Router			/v1/contracts/{id}/ledger/{entryId}/status [options]
func OptionsLedgerEntryStatus(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		List ledger entries
// @Description	Returns a filtered, paginated page of the contract's hour ledger
// @Tags			Ledger
// @Produce		json
// @Success		200			{object}	LedgerListResponse
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string	true	"Contract ID"
// @Param			key			query		string	false	"Bucket key, glob patterns allowed"
// @Param			status		query		string	false	"Entry status"
// @Param			recordedBy	query		string	false	"Author of the entry"
// @Param			consultor	query		string	false	"Consultant facilitating the session"
// @Param			note		query		string	false	"Accent-insensitive substring of the notes"
// @Param			page		query		int		false	"1-based page, defaults to 1"
// @Param			pageSize	query		int		false	"Defaults to 50"
// @Param			order		query		string	false	"asc or desc on session date, defaults to desc"
// @Router			/v1/contracts/{id}/ledger [get]
func GetLedger(c *gin.Context) {
	var uri URIContract
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var query LedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQuery.Error()})
		return
	}

	claims, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, httpError{Error: auth.ErrForbidden.Error()})
		return
	}

	entriesQuery := models.EntriesQuery{
		ContractID: uri.ID.UUID,
		Key:        query.Key,
		RecordedBy: query.RecordedBy.UUID,
		Consultor:  query.Consultor.UUID,
		Note:       query.Note,
		Page:       query.Page,
		PageSize:   query.PageSize,
		OrderDesc:  query.Order != "asc",
	}

	if query.Status != "" {
		parsed, err := models.ParseLedgerStatus(query.Status)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		entriesQuery.Status = parsed
	}

	switch claims.Role {
	case auth.RoleAdmin:
		// unrestricted
	case auth.RoleConsultor:
		// Facilitator scope. A consultant without sessions on this
		// contract gets an empty page, not an error.
		userID := claims.UserID().UUID
		entriesQuery.RestrictToConsultor = &userID
	default:
		contract, err := models.ContractByID(uri.ID.UUID)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		_, ok := requireContractRead(c, contract)
		if !ok {
			return
		}
	}

	entries, total, err := models.LedgerEntries(entriesQuery)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	page := entriesQuery.Page
	if page < 1 {
		page = 1
	}

	pageSize := entriesQuery.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	c.JSON(http.StatusOK, LedgerListResponse{
		Ledger:   entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// @Summary		Create manual ledger entry
// @Description	Records a manual correction against an allocation of the contract
// @Tags			Ledger
// @Produce		json
// @Success		201		{object}	LedgerEntryResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string				true	"Contract ID"
// @Param			entry	body		LedgerEntryEditable	true	"Entry"
// @Router			/v1/contracts/{id}/ledger [post]
func CreateLedgerEntry(c *gin.Context) {
	var uri URIContract
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	claims, ok := requireAdmin(c)
	if !ok {
		return
	}

	var editable LedgerEntryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	entry, err := models.CreateManualEntry(uri.ID.UUID, editable.AllocationID, editable.Hours, models.LedgerStatus(editable.Status), editable.SessionDate, editable.Notes, claims.UserID().UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, LedgerEntryResponse{Data: entry})
}

// @Summary		Override cancellation status
// @Description	Flips a cancellation-class ledger entry between returned and penalized
// @Tags			Ledger
// @Produce		json
// @Success		200		{object}	LedgerEntryResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string					true	"Contract ID"
// @Param			entryId	path		string					true	"Ledger entry ID"
// @Param			status	body		LedgerStatusEditable	true	"New status and reason"
// @Router			/v1/contracts/{id}/ledger/{entryId}/status [patch]
func UpdateLedgerEntryStatus(c *gin.Context) {
	var uri URILedgerEntry
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	claims, ok := requireAdmin(c)
	if !ok {
		return
	}

	var editable LedgerStatusEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	entry, err := models.OverrideCancellationStatus(uri.ID.UUID, uri.EntryID.UUID, models.LedgerStatus(editable.Status), editable.Reason, claims.UserID().UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, LedgerEntryResponse{Data: entry})
}
