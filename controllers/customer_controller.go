package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required,min=8"`
}

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// Register handles POST /api/customers/register.
func (ctrl *CustomerController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.Register(req.Email, req.FirstName, req.LastName, req.PhoneNumber, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// GetByEmail handles GET /api/customers?email=.
func (ctrl *CustomerController) GetByEmail(c *gin.Context) {
	customer, err := ctrl.CustomerSvc.GetByEmail(c.Query("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}
