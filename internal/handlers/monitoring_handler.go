package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "crimemap/internal/errors"
	"crimemap/internal/models"
	"crimemap/internal/pagination"
	"crimemap/internal/services"
)

// MonitoringHandler handles monitoring record requests
type MonitoringHandler struct {
	monitoringService services.MonitoringServicer
}

// NewMonitoringHandler creates a new MonitoringHandler
func NewMonitoringHandler(monitoringService services.MonitoringServicer) *MonitoringHandler {
	return &MonitoringHandler{monitoringService: monitoringService}
}

// CreateMonitoringDataRequest represents the request payload for creating a monitoring record
type CreateMonitoringDataRequest struct {
	ProvinsiID      uint    `json:"provinsi_id" binding:"required"`
	KabupatenKotaID *uint   `json:"kabupaten_kota_id"`
	KecamatanID     *uint   `json:"kecamatan_id"`
	CategoryID      uint    `json:"category_id" binding:"required"`
	SubCategoryID   *uint   `json:"sub_category_id"`
	SeverityLevel   string  `json:"severity_level" binding:"required,severity_level"`
	Status          string  `json:"status" binding:"omitempty,monitoring_status"`
	Description     string  `json:"description"`
	SumberBerita    *string `json:"sumber_berita" binding:"omitempty,max=255"`
}

// CreateMonitoringData handles the creation of a new monitoring record
// @Summary     Create monitoring record
// @Description Record a monitored incident in a region under a category
// @Tags        monitoring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMonitoringDataRequest true "Monitoring record details"
// @Success     201 {object} models.MonitoringData "Monitoring record created"
// @Failure     400 {object} ErrorResponse "Invalid input or mismatched region/taxonomy"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Referenced region or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /monitoring-data [post]
func (h *MonitoringHandler) CreateMonitoringData(c *gin.Context) {
	var req CreateMonitoringDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Status == "" {
		req.Status = string(models.StatusOpen)
	}

	data, err := h.monitoringService.CreateMonitoringData(services.CreateMonitoringDataInput{
		ProvinsiID:      req.ProvinsiID,
		KabupatenKotaID: req.KabupatenKotaID,
		KecamatanID:     req.KecamatanID,
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		SeverityLevel:   models.SeverityLevel(req.SeverityLevel),
		Status:          models.MonitoringStatus(req.Status),
		Description:     req.Description,
		SumberBerita:    req.SumberBerita,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"monitoring_data": data})
}

// ListMonitoringData handles the paginated listing of monitoring records
// @Summary     List monitoring records
// @Description List monitoring records, most recent first
// @Tags        monitoring
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.MonitoringData] "Paginated monitoring records"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /monitoring-data [get]
func (h *MonitoringHandler) ListMonitoringData(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	resp, err := h.monitoringService.ListMonitoringData(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMonitoringDataByID handles the retrieval of a specific monitoring record
// @Summary     Get monitoring record
// @Description Get a monitoring record with its region and taxonomy relations
// @Tags        monitoring
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Monitoring record ID"
// @Success     200 {object} models.MonitoringData "Monitoring record"
// @Failure     400 {object} ErrorResponse "Invalid monitoring record ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Monitoring record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /monitoring-data/{id} [get]
func (h *MonitoringHandler) GetMonitoringDataByID(c *gin.Context) {
	dataID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.monitoringService.GetMonitoringDataByID(dataID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monitoring_data": data})
}

// DeleteMonitoringData handles deleting a monitoring record
// @Summary     Delete monitoring record
// @Description Delete a monitoring record
// @Tags        monitoring
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Monitoring record ID"
// @Success     200 {object} MessageResponse "Monitoring record deleted"
// @Failure     400 {object} ErrorResponse "Invalid monitoring record ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Monitoring record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /monitoring-data/{id} [delete]
func (h *MonitoringHandler) DeleteMonitoringData(c *gin.Context) {
	dataID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.monitoringService.DeleteMonitoringData(dataID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Monitoring data deleted successfully"})
}
