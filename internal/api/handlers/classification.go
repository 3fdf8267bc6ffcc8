package handlers

import (
	"net/http"
	"strconv"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/services"
	"waste-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CreateClassificationRequest is the ingestion payload from the detection
// pipeline. DetectionTime is optional; missing values default server-side.
type CreateClassificationRequest struct {
	WasteType     string     `json:"wasteType" validate:"required"`
	Location      string     `json:"location" validate:"required"`
	CameraID      string     `json:"cameraId" validate:"required"`
	Confidence    float64    `json:"confidence" validate:"min=0"`
	DetectionTime *time.Time `json:"detectionTime"`
}

type ClassificationHandler struct {
	classificationService *services.ClassificationService
	validator             *validator.Validate
}

func NewClassificationHandler(classificationService *services.ClassificationService) *ClassificationHandler {
	return &ClassificationHandler{
		classificationService: classificationService,
		validator:             validator.New(),
	}
}

// GetClassifications retrieves all waste classifications, newest first
func (h *ClassificationHandler) GetClassifications(c *gin.Context) {
	classifications, err := h.classificationService.GetAllClassifications()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve classifications", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Classifications retrieved successfully", classifications)
}

// GetRecentClassifications retrieves the most recent classifications
func (h *ClassificationHandler) GetRecentClassifications(c *gin.Context) {
	limit := int64(10)
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 1 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit parameter", err)
			return
		}
		limit = parsed
	}

	classifications, err := h.classificationService.GetRecentClassifications(limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve classifications", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Classifications retrieved successfully", classifications)
}

// CreateClassification stores a new waste detection
func (h *ClassificationHandler) CreateClassification(c *gin.Context) {
	var req CreateClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	classification := &models.WasteClassification{
		WasteType:  req.WasteType,
		Location:   req.Location,
		CameraID:   req.CameraID,
		Confidence: req.Confidence,
	}
	if req.DetectionTime != nil {
		classification.DetectionTime = *req.DetectionTime
	}

	created, err := h.classificationService.CreateClassification(classification)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create classification", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Classification created successfully", created)
}
