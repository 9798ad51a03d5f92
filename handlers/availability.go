package handlers

import (
	"context"
	"net/http"
	"strconv"

	"altitude/models"
	"altitude/services/catalog"
	"altitude/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityService is the slice of the Roller client this handler
// needs. Satisfied by *roller.Client.
type AvailabilityService interface {
	CheckAvailability(ctx context.Context, date, packageName string, numJumpers int) (*models.Availability, error)
}

// AvailabilityHandler exposes the availability gateway directly.
type AvailabilityHandler struct {
	gateway AvailabilityService
}

func NewAvailabilityHandler(gateway AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{gateway: gateway}
}

// CheckAvailability handles GET /availability?date&package&jumpers.
// Validation failures are 400s with the conversational message; a
// provider outage still answers 200 through the fallback path.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	packageName := c.Query("package")
	jumpers, err := strconv.Atoi(c.Query("jumpers"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid jumpers parameter", c.Query("jumpers"))
		return
	}

	result, err := h.gateway.CheckAvailability(c.Request.Context(), date, packageName, jumpers)
	if err != nil {
		if ve, ok := catalog.IsValidation(err); ok {
			utils.JSONError(c, http.StatusBadRequest, ve.Message, ve.Reason)
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "availability check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
