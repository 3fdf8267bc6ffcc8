package handlers

import (
	"net/http"

	"waste-backend/internal/models"
	"waste-backend/internal/services"
	"waste-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CreateDustbinRequest struct {
	DustbinNumber string  `json:"dustbinNumber" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	FillPct       float64 `json:"fillPct" validate:"min=0,max=100"`
}

type ReportFillRequest struct {
	FillPct float64 `json:"fillPct" validate:"min=0,max=100"`
}

type DustbinHandler struct {
	dustbinService *services.DustbinService
	validator      *validator.Validate
}

func NewDustbinHandler(dustbinService *services.DustbinService) *DustbinHandler {
	return &DustbinHandler{
		dustbinService: dustbinService,
		validator:      validator.New(),
	}
}

// GetDustbins retrieves all dustbins
func (h *DustbinHandler) GetDustbins(c *gin.Context) {
	dustbins, err := h.dustbinService.GetAllDustbins()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve dustbins", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dustbins retrieved successfully", dustbins)
}

// GetDustbin retrieves a specific dustbin by ID
func (h *DustbinHandler) GetDustbin(c *gin.Context) {
	dustbinID := c.Param("id")
	if dustbinID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Dustbin ID is required", nil)
		return
	}

	dustbin, err := h.dustbinService.GetDustbin(dustbinID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Dustbin not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dustbin retrieved successfully", dustbin)
}

// CreateDustbin registers a new monitored dustbin
func (h *DustbinHandler) CreateDustbin(c *gin.Context) {
	var req CreateDustbinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	dustbin, err := h.dustbinService.CreateDustbin(&models.Dustbin{
		DustbinNumber: req.DustbinNumber,
		Location:      req.Location,
		FillPct:       req.FillPct,
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create dustbin", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Dustbin created successfully", dustbin)
}

// ReportFill records a dustbin fill reading. Crossing the collection
// threshold opens a Pending request, returned alongside the updated bin.
func (h *DustbinHandler) ReportFill(c *gin.Context) {
	dustbinID := c.Param("id")
	if dustbinID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Dustbin ID is required", nil)
		return
	}

	var req ReportFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	report, err := h.dustbinService.ReportFill(dustbinID, req.FillPct)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update dustbin fill level", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dustbin fill level updated successfully", report)
}
