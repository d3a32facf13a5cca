package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func TestCreateDemo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/demo/42", r.URL.Path)
		assert.Equal(t, "ivan", r.URL.Query().Get("username"))
		assert.Equal(t, "Иван", r.URL.Query().Get("first_name"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Создано 50 демо-продаж","count":50}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, authenticating.NewService(""))

	resp, err := client.CreateDemo(context.Background(), 42, "ivan", "Иван")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 50, resp.Count)
}

func TestCreateDemo_OmitsEmptyNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"success":true,"count":50}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	_, err := client.CreateDemo(context.Background(), 42, "", "")
	require.NoError(t, err)
}

func TestGetStats_SendsBearerToken(t *testing.T) {
	auth := authenticating.NewService("shared-secret")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(header, "Bearer "))

		claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if assert.NoError(t, err) {
			assert.Equal(t, "bot", claims.Service)
		}

		_, _ = w.Write([]byte(`{"total_amount":450,"total_sales":3,"average_check":150,"completed_sales":2,"pending_sales":0,"cancelled_sales":1,"conversion_rate":66.67}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, auth)

	stats, err := client.GetStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 450.0, stats.TotalAmount)
	assert.Equal(t, 3, stats.TotalSales)
	assert.Equal(t, 66.67, stats.ConversionRate)
}

func TestGetStats_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "User not found", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	_, err := client.GetStats(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, apiErrors.ErrNotFound, statusErr.Code)
	assert.Equal(t, "User not found", statusErr.Message)
}

func TestGetUpcomingHolidays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/holidays/upcoming", r.URL.Path)
		assert.Equal(t, "14", r.URL.Query().Get("days_ahead"))
		_, _ = w.Write([]byte(`{"holidays":[{"date":"2025-02-14","name":"День святого Валентина","category":"commercial","days_until":4,"products":["цветы"],"week_before":true,"urgent":true}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	resp, err := client.GetUpcomingHolidays(context.Background(), 14)
	require.NoError(t, err)
	require.Len(t, resp.Holidays, 1)
	assert.Equal(t, 4, resp.Holidays[0].DaysUntil)
	assert.True(t, resp.Holidays[0].Urgent)
}

func TestDownloadReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/42/excel", r.URL.Path)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=sales_report_20250210_143005.xlsx")
		_, _ = w.Write([]byte("PK-binary"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	report, err := client.DownloadReport(context.Background(), 42, domain.ReportFormatExcel)
	require.NoError(t, err)
	assert.Equal(t, "sales_report_20250210_143005.xlsx", report.Filename)
	assert.Equal(t, []byte("PK-binary"), report.Content)
}

func TestDownloadReport_NoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNoData, "No sales data found", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	_, err := client.DownloadReport(context.Background(), 42, domain.ReportFormatPDF)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDownloadReport_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, nil)

	_, err := client.DownloadReport(context.Background(), 42, domain.ReportFormatPDF)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestReportFilename(t *testing.T) {
	tests := []struct {
		name        string
		disposition string
		format      domain.ReportFormat
		want        string
	}{
		{"nome da api", "attachment; filename=sales_report_1.pdf", domain.ReportFormatPDF, "sales_report_1.pdf"},
		{"sem cabeçalho pdf", "", domain.ReportFormatPDF, "report_9.pdf"},
		{"sem cabeçalho excel", "", domain.ReportFormatExcel, "report_9.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reportFilename(tt.disposition, 9, tt.format))
		})
	}
}
