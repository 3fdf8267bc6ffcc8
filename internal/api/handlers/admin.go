package handlers

import (
	"net/http"

	"waste-backend/internal/models"
	"waste-backend/internal/services"
	"waste-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

type AdminHandler struct {
	adminService *services.AdminService
	validator    *validator.Validate
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		validator:    validator.New(),
	}
}

// GetAdmins retrieves all admin accounts
func (h *AdminHandler) GetAdmins(c *gin.Context) {
	admins, err := h.adminService.GetAllAdmins()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve admins", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Admins retrieved successfully", admins)
}

// CreateAdmin registers a new admin account
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	admin, err := h.adminService.CreateAdmin(&models.Admin{
		Email: req.Email,
		Name:  req.Name,
	}, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create admin", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Admin created successfully", admin)
}

// DeleteAdmin removes an admin account
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	adminID := c.Param("id")
	if adminID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Admin ID is required", nil)
		return
	}

	if err := h.adminService.DeleteAdmin(adminID); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to delete admin", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Admin deleted successfully", nil)
}
