package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// ListByHotel handles GET /api/hotels/:id/room-types.
func (ctrl *RoomTypeController) ListByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	roomTypes, err := ctrl.RoomTypeSvc.ListByHotel(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomTypes)
}

func (ctrl *RoomTypeController) GetRoomTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	roomType, err := ctrl.RoomTypeSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomType)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := c.ShouldBindJSON(&roomType); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := ctrl.RoomTypeSvc.Create(&roomType); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, roomType)
}

func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var roomType models.RoomType
	if err := c.ShouldBindJSON(&roomType); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	updated, err := ctrl.RoomTypeSvc.Update(id, roomType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomTypeSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
