package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reportingsvc "github.com/eldhojacob/dairyfarm/internal/service/reporting"
)

// ReportHandler serves the dashboard summary and the monthly revenue report.
type ReportHandler struct {
	svc    *reportingsvc.Service
	logger *zap.Logger
}

// NewReportHandler constructs the reporting adapter.
func NewReportHandler(svc *reportingsvc.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Dashboard returns the month's revenue breakdown plus customer counts.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	year, month, ok := monthYear(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month or year"})
		return
	}

	dashboard, err := h.svc.MonthlyDashboard(c.Request.Context(), year, month)
	if err != nil {
		h.logger.Error("failed building dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Revenue returns the month's per-category revenue totals.
func (h *ReportHandler) Revenue(c *gin.Context) {
	year, month, ok := monthYear(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month or year"})
		return
	}

	revenue, err := h.svc.MonthlyRevenue(c.Request.Context(), year, month)
	if err != nil {
		h.logger.Error("failed aggregating revenue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate revenue"})
		return
	}
	c.JSON(http.StatusOK, revenue)
}
