package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fne-platform/hours-backend/internal/httputil"
	"github.com/fne-platform/hours-backend/internal/models"
)

// RegisterCancellationClauseRoutes registers the routes for cancellation
// clause evaluation with the RouterGroup that is passed.
func RegisterCancellationClauseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCancellationClauses)
	r.GET("", GetCancellationClauses)
}

// CancellationClauseQuery selects a single clause evaluation. Without
// cancelledBy, the full clause table is returned.
type CancellationClauseQuery struct {
	Modality    string `form:"modality"`    // presencial or online
	CancelledBy string `form:"cancelledBy"` // school, fne or force_majeure
	NoticeHours int    `form:"noticeHours"` // Hours between cancellation and session start
}

// CancellationClauseResponse wraps a single clause evaluation.
type CancellationClauseResponse struct {
	Data models.ClauseResult `json:"data"`
}

// CancellationClauseListResponse is the full clause table.
type CancellationClauseListResponse struct {
	Data []models.ClauseResult `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CancellationClauses
// @Success		204
// @Router			/v1/cancellation-clauses [options]
func OptionsCancellationClauses(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Cancellation clauses
// @Description	Evaluates which cancellation clause applies, or lists the full clause table when cancelledBy is not set
// @Tags			CancellationClauses
// @Produce		json
// @Success		200			{object}	CancellationClauseResponse
// @Failure		400			{object}	httpError
// @Param			modality	query		string	false	"presencial or online"
// @Param			cancelledBy	query		string	false	"school, fne or force_majeure"
// @Param			noticeHours	query		int		false	"Hours between cancellation and session start"
// @Router			/v1/cancellation-clauses [get]
func GetCancellationClauses(c *gin.Context) {
	var query CancellationClauseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQuery.Error()})
		return
	}

	if query.CancelledBy == "" {
		c.JSON(http.StatusOK, CancellationClauseListResponse{Data: models.CancellationClauses()})
		return
	}

	result, err := models.EvaluateCancellationClause(models.Modality(query.Modality), models.CancelledBy(query.CancelledBy), query.NoticeHours)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CancellationClauseResponse{Data: result})
}
