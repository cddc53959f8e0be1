package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finloom/internal/service"
)

// ReportHandler handles report generation endpoints.
type ReportHandler struct {
	reportService        service.ReportService
	consolidationService service.ConsolidationService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, consolidationService service.ConsolidationService) *ReportHandler {
	return &ReportHandler{
		reportService:        reportService,
		consolidationService: consolidationService,
	}
}

// generateRequest is the body of the report generation endpoints.
type generateRequest struct {
	Month string `json:"month" binding:"required"`
}

// generateResponse is the payload returned after a report is written.
type generateResponse struct {
	Path string `json:"path"`
}

// generate runs one report generator against the month in the request body.
func (h *ReportHandler) generate(c *gin.Context, run func(ctx context.Context, month string) (string, error)) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "month field is required")
		return
	}

	path, err := run(c.Request.Context(), req.Month)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, generateResponse{Path: path})
}

// Cogs handles POST /api/v1/reports/cogs
func (h *ReportHandler) Cogs(c *gin.Context) {
	h.generate(c, h.reportService.Cogs)
}

// Pal1 handles POST /api/v1/reports/pal1
func (h *ReportHandler) Pal1(c *gin.Context) {
	h.generate(c, h.reportService.Pal1)
}

// TradingPl handles POST /api/v1/reports/trading-pl
func (h *ReportHandler) TradingPl(c *gin.Context) {
	h.generate(c, h.reportService.TradingPl)
}

// Pal2 handles POST /api/v1/reports/pal2
func (h *ReportHandler) Pal2(c *gin.Context) {
	h.generate(c, h.reportService.Pal2)
}

// FinAnalysis handles POST /api/v1/reports/fin-analysis
func (h *ReportHandler) FinAnalysis(c *gin.Context) {
	h.generate(c, h.reportService.FinAnalysis)
}

// SalesSummary handles POST /api/v1/reports/sales-summary
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	h.generate(c, h.reportService.SalesSummary)
}

// Fetch handles GET /api/v1/reports/:kind
func (h *ReportHandler) Fetch(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "month query parameter is required")
		return
	}

	kind := c.Param("kind")
	fields, err := h.reportService.Fetch(c.Request.Context(), kind, month)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"kind": kind, "month": month, "report": fields})
}

// Consolidate handles POST /api/v1/reports/consolidate
func (h *ReportHandler) Consolidate(c *gin.Context) {
	path, err := h.consolidationService.Consolidate()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, generateResponse{Path: path})
}

// Separate handles POST /api/v1/reports/separate
func (h *ReportHandler) Separate(c *gin.Context) {
	paths, err := h.consolidationService.Separate()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"paths": paths})
}
