package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finloom/internal/domain"
	"finloom/internal/handler"
	"finloom/internal/service"
	"finloom/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newReportRouter(reports *mocks.MockReportService, books *mocks.MockConsolidationService) *gin.Engine {
	h := handler.NewReportHandler(reports, books)
	r := gin.New()
	r.POST("/api/v1/reports/cogs", h.Cogs)
	r.POST("/api/v1/reports/pal1", h.Pal1)
	r.POST("/api/v1/reports/consolidate", h.Consolidate)
	r.POST("/api/v1/reports/separate", h.Separate)
	r.GET("/api/v1/reports/:kind", h.Fetch)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestReportEndpointReturnsPath(t *testing.T) {
	reports := new(mocks.MockReportService)
	reports.On("Cogs", mock.Anything, "Feb-24").Return("reports/COGS.xlsx", nil)
	r := newReportRouter(reports, new(mocks.MockConsolidationService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/cogs", strings.NewReader(`{"month":"Feb-24"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "reports/COGS.xlsx", data["path"])
}

func TestReportEndpointRequiresMonth(t *testing.T) {
	r := newReportRouter(new(mocks.MockReportService), new(mocks.MockConsolidationService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/cogs", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestReportEndpointMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid month", domain.ErrInvalidPeriodFormat, http.StatusBadRequest, "INVALID_PERIOD_FORMAT"},
		{"missing period", domain.ErrPeriodNotFound, http.StatusNotFound, "PERIOD_NOT_FOUND"},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := new(mocks.MockReportService)
			reports.On("Pal1", mock.Anything, "Feb-24").Return("", tt.err)
			r := newReportRouter(reports, new(mocks.MockConsolidationService))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/pal1", strings.NewReader(`{"month":"Feb-24"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestSeparateMissingConsolidatedWorkbook(t *testing.T) {
	books := new(mocks.MockConsolidationService)
	books.On("Separate").Return(nil, domain.ErrReportNotFound)
	r := newReportRouter(new(mocks.MockReportService), books)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/separate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "REPORT_NOT_FOUND", resp.Error.Code)
}

func TestConsolidateReturnsPath(t *testing.T) {
	books := new(mocks.MockConsolidationService)
	books.On("Consolidate").Return("reports/ConsolidatedReports.xlsx", nil)
	r := newReportRouter(new(mocks.MockReportService), books)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/consolidate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFetchReturnsStoredReport(t *testing.T) {
	reports := new(mocks.MockReportService)
	reports.On("Fetch", mock.Anything, "pal1", "Feb-24").
		Return(json.RawMessage(`{"purchaseRmQty":10}`), nil)
	r := newReportRouter(reports, new(mocks.MockConsolidationService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/pal1?month=Feb-24", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "pal1", data["kind"])
	report := data["report"].(map[string]interface{})
	assert.Equal(t, float64(10), report["purchaseRmQty"])
}

func TestFetchRequiresMonthQuery(t *testing.T) {
	r := newReportRouter(new(mocks.MockReportService), new(mocks.MockConsolidationService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/pal1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestFetchMissingReportMapsTo404(t *testing.T) {
	reports := new(mocks.MockReportService)
	reports.On("Fetch", mock.Anything, "pal2", "Mar-24").Return(nil, domain.ErrReportNotFound)
	r := newReportRouter(reports, new(mocks.MockConsolidationService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/pal2?month=Mar-24", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "REPORT_NOT_FOUND", resp.Error.Code)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestLedgerUploadStoresFacts(t *testing.T) {
	ledgers := new(mocks.MockLedgerService)
	ledgers.On("Ingest", mock.Anything, service.LedgerStockValuation, mock.Anything).Return(&domain.Ledger{
		Period: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Facts:  make([]domain.Fact, 14),
	}, nil)
	h := handler.NewLedgerHandler(ledgers)
	r := gin.New()
	r.POST("/api/v1/ledgers/stock-valuation", h.Upload(service.LedgerStockValuation))

	body, contentType := multipartBody(t, "file", "stock.xlsx", []byte("PK\x03\x04"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledgers/stock-valuation", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "stock-valuation", data["category"])
	assert.Equal(t, "Feb-24", data["period"])
	assert.Equal(t, float64(14), data["facts"])
}

func TestLedgerUploadRequiresFile(t *testing.T) {
	h := handler.NewLedgerHandler(new(mocks.MockLedgerService))
	r := gin.New()
	r.POST("/api/v1/ledgers/purchases", h.Upload(service.LedgerPurchases))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledgers/purchases", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
}

func TestLedgerUploadMapsFileErrors(t *testing.T) {
	ledgers := new(mocks.MockLedgerService)
	ledgers.On("Ingest", mock.Anything, service.LedgerInventory, mock.Anything).Return(nil, domain.ErrFileTooLarge)
	h := handler.NewLedgerHandler(ledgers)
	r := gin.New()
	r.POST("/api/v1/ledgers/inventory", h.Upload(service.LedgerInventory))

	body, contentType := multipartBody(t, "file", "inventory.xlsx", []byte("PK\x03\x04"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledgers/inventory", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "FILE_TOO_LARGE", resp.Error.Code)
}
