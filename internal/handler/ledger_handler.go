package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finloom/internal/service"
)

// LedgerHandler handles ledger workbook upload endpoints.
type LedgerHandler struct {
	ledgerService service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// ledgerUploadResponse is the payload returned after a successful ingest.
type ledgerUploadResponse struct {
	Category string `json:"category"`
	Period   string `json:"period"`
	Facts    int    `json:"facts"`
}

// Upload returns a gin handler that ingests one ledger category.
// Routes: POST /api/v1/ledgers/:category for the six fixed categories.
func (h *LedgerHandler) Upload(category service.LedgerCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
			return
		}
		defer func() { _ = file.Close() }()

		ledger, err := h.ledgerService.Ingest(c.Request.Context(), category, service.LedgerUploadInput{
			File:   file,
			Header: header,
		})
		if err != nil {
			HandleError(c, err)
			return
		}

		RespondCreated(c, ledgerUploadResponse{
			Category: string(category),
			Period:   ledger.Period.Format("Jan-06"),
			Facts:    len(ledger.Facts),
		})
	}
}
