package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

const dateLayout = "2006-01-02"

// respondServiceError maps the service error taxonomy onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrCustomerNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidCapacity),
		errors.Is(err, services.ErrGuestCountExceedsCapacity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, gorm.ErrInvalidData):
		utils.JSONError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmailExists):
		utils.JSONError(c, http.StatusConflict, err.Error())

	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
