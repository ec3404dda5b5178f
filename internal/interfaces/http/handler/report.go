package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/Zxyilyy/cooked/internal/application/report"
	"github.com/Zxyilyy/cooked/internal/domain/report"
)

// ReportHandler handles period-filtered reporting endpoints
type ReportHandler struct {
	BaseHandler
	service *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *reportapp.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.Summary)
	}
}

// Summary builds the report for a period. Query parameters: period is one of
// day, week, month, year (default day); reference anchors the period as a
// local calendar day (default today).
func (h *ReportHandler) Summary(c *gin.Context) {
	periodType := report.PeriodType(c.DefaultQuery("period", string(report.PeriodDay)))

	var reference time.Time
	if raw := c.Query("reference"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			h.BadRequest(c, "Invalid reference date, expected YYYY-MM-DD")
			return
		}
		reference = parsed
	}

	summary, err := h.service.Summary(c.Request.Context(), periodType, reference)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}
