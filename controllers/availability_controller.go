package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// Search handles
// GET /api/public/rooms/search?city=Vaasa&checkIn=2025-11-20&checkOut=2025-11-25&guests=2
func (ctrl *AvailabilityController) Search(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "city is required")
		return
	}

	checkIn, err := parseDate(c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be a date in YYYY-MM-DD format")
		return
	}
	checkOut, err := parseDate(c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be a date in YYYY-MM-DD format")
		return
	}

	guests := 1
	if raw := c.Query("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "guests must be an integer")
			return
		}
	}

	results, err := ctrl.AvailabilitySvc.SearchAvailable(city, checkIn, checkOut, guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, results)
}
