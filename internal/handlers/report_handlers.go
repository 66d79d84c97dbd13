package handlers

import (
	"net/http"

	"wedding_venue_backend/internal/models"
	"wedding_venue_backend/internal/services"
	"wedding_venue_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	RegisterValidators()
	return &ReportHandler{reportService: rs}
}

// ListReportTypes handles GET /reports.
func (h *ReportHandler) ListReportTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": models.ReportTypes})
}

// GetReport handles GET /reports/:reportType?granularity=&value=&asOf=.
func (h *ReportHandler) GetReport(c *gin.Context) {
	req := models.ReportRequest{ReportType: c.Param("reportType")}
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.LogError(err, "GetReport: Failed to bind query")
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	h.respond(c, req)
}

// GenerateReport handles POST /reports with a JSON ReportRequest body.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "GenerateReport: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	h.respond(c, req)
}

func (h *ReportHandler) respond(c *gin.Context, req models.ReportRequest) {
	report, err := h.reportService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "Report generation failed for "+req.ReportType)
		if services.IsValidationError(err) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}
