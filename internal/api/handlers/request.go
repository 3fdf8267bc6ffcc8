package handlers

import (
	"net/http"

	"waste-backend/internal/services"
	"waste-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CreateRequestRequest struct {
	DustbinID string `json:"dustbinId" validate:"required"`
	VehicleID string `json:"vehicleId"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
}

type RequestHandler struct {
	requestService *services.RequestService
	validator      *validator.Validate
}

func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		validator:      validator.New(),
	}
}

// GetRequests retrieves all collection requests with their dustbin and
// vehicle details joined in
func (h *RequestHandler) GetRequests(c *gin.Context) {
	requests, err := h.requestService.GetAllRequests()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve collection requests", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Collection requests retrieved successfully", requests)
}

// CreateRequest opens a collection request manually
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	request, err := h.requestService.CreateRequest(req.DustbinID, req.VehicleID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create collection request", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Collection request created successfully", request)
}

// UpdateRequestStatus advances a collection request through its lifecycle
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Request ID is required", nil)
		return
	}

	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	request, err := h.requestService.UpdateRequestStatus(requestID, req.Status)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update request status", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request status updated successfully", request)
}
