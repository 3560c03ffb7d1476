package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

// GuestBookingRequest is the guest booking payload: contact details plus the
// requested stay. No prior registration is required.
type GuestBookingRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`

	RoomID         uint   `json:"roomId" binding:"required"`
	CheckInDate    string `json:"checkInDate" binding:"required"`
	CheckOutDate   string `json:"checkOutDate" binding:"required"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking handles POST /api/bookings.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate must be a date in YYYY-MM-DD format")
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOutDate must be a date in YYYY-MM-DD format")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		RoomID:         req.RoomID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: status is required")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookings handles GET /api/bookings?status=&page=&pageSize=.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := ctrl.BookingSvc.List(c.Query("status"), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// GetBookingDetails handles GET /api/bookings/:id.
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookingsForCustomer handles GET /api/bookings/customer?email=.
func (ctrl *BookingController) GetBookingsForCustomer(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email is required")
		return
	}
	bookings, err := ctrl.BookingSvc.ListForCustomer(email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
