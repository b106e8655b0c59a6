package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/middleware"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/service"
	"github.com/BIA3IA/Software-Engineering-2-sub000/pkg/response"
)

// ReportHandler handles HTTP requests for reports
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// CreateReport handles POST /api/v1/reports. The status cascade runs
// before the response: the reporter's next read sees the new statuses.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid report payload", err)
		return
	}

	report, err := h.service.CreateReport(middleware.UserID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create report", err)
		return
	}
	response.Success(c, report)
}

// TransitionReport handles POST /api/v1/reports/:id/status
func (h *ReportHandler) TransitionReport(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid transition payload", err)
		return
	}

	report, err := h.service.TransitionReport(c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to transition report", err)
		return
	}
	if report == nil {
		response.Error(c, http.StatusNotFound, "Report not found", nil)
		return
	}
	response.Success(c, report)
}

// DeleteReport handles DELETE /api/v1/reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.service.DeleteReport(c.Param("id"), middleware.UserID(c)); err != nil {
		response.Error(c, http.StatusForbidden, "Failed to delete report", err)
		return
	}
	response.Success(c, nil)
}

// ListBySegment handles GET /api/v1/segments/:id/reports
func (h *ReportHandler) ListBySegment(c *gin.Context) {
	reports, err := h.service.ListBySegment(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list reports", err)
		return
	}
	response.Success(c, reports)
}
