package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fne-platform/hours-backend/internal/httputil"
	"github.com/fne-platform/hours-backend/internal/models"
)

// RegisterHourTypeRoutes registers the routes for the hour type registry
// with the RouterGroup that is passed.
func RegisterHourTypeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHourTypes)
	r.GET("", GetHourTypes)
}

// HourTypeListResponse lists the active hour types.
type HourTypeListResponse struct {
	Data []models.HourType `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			HourTypes
// @Success		204
// @Router			/v1/hour-types [options]
func OptionsHourTypes(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Hour type registry
// @Description	Returns all active hour types, sorted by key
// @Tags			HourTypes
// @Produce		json
// @Success		200	{object}	HourTypeListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/hour-types [get]
func GetHourTypes(c *gin.Context) {
	hourTypes, err := models.ActiveHourTypes()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, HourTypeListResponse{Data: hourTypes})
}
