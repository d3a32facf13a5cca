package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	renderermocks "github.com/vfg2006/sales-dashboard-api/infrastructure/renderer/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

var fixedNow = time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

type apiFixture struct {
	handler  http.Handler
	userRepo *mocks.MockUserRepository
	saleRepo *mocks.MockSaleRepository
	pdf      *renderermocks.MockRenderer
	excel    *renderermocks.MockRenderer
}

func newAPIFixture(t *testing.T, secret string) *apiFixture {
	ctrl := gomock.NewController(t)

	f := &apiFixture{
		userRepo: mocks.NewMockUserRepository(ctrl),
		saleRepo: mocks.NewMockSaleRepository(ctrl),
		pdf:      renderermocks.NewMockRenderer(ctrl),
		excel:    renderermocks.NewMockRenderer(ctrl),
	}

	clock := func() time.Time { return fixedNow }

	cfg := &config.Config{
		AllowedOrigins: []string{"*"},
		Reports:        config.Reports{SpoolDir: t.TempDir()},
		ReportJanitor:  config.ReportJanitor{CronSchedule: "*/30 * * * *", MaxAge: time.Hour},
	}

	f.handler = NewHandler(cfg, Services{
		Analyzer:      analyzing.NewService(f.userRepo, f.saleRepo).WithClock(clock),
		Seeder:        seeding.NewService(f.userRepo, f.saleRepo),
		Reporter:      reporting.NewService(f.userRepo, f.saleRepo, f.pdf, f.excel, cfg.Reports.SpoolDir).WithClock(clock),
		Forecaster:    forecasting.NewServiceWithClock(clock),
		Authenticator: authenticating.NewService(secret),
		ReportJanitor: scheduler.NewReportJanitorService(cfg),
	})

	return f
}

func (f *apiFixture) do(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (f *apiFixture) expectUser(telegramID int64, id int) {
	f.userRepo.EXPECT().GetByTelegramID(gomock.Any(), telegramID).Return(&domain.User{ID: id, TelegramID: telegramID}, nil)
}

func TestAPI_HealthAndRoot(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]string](t, rec)["status"])

	rec = f.do(http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "running", decode[map[string]string](t, rec)["status"])
}

func TestAPI_Stats(t *testing.T) {
	f := newAPIFixture(t, "")
	f.expectUser(7, 3)
	f.saleRepo.EXPECT().ListByUser(gomock.Any(), 3, 0).Return([]*domain.Sale{
		{Amount: 100, Quantity: 2, Status: domain.SaleStatusCompleted},
		{Amount: 50, Quantity: 1, Status: domain.SaleStatusCompleted},
		{Amount: 200, Quantity: 1, Status: domain.SaleStatusCancelled},
	}, nil)

	rec := f.do(http.MethodGet, "/api/stats/7")

	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[domain.SalesStats](t, rec)
	assert.Equal(t, 3, stats.TotalSales)
	assert.Equal(t, 2, stats.CompletedSales)
	assert.Equal(t, 66.67, stats.ConversionRate)
}

func TestAPI_Stats_UnknownUser(t *testing.T) {
	f := newAPIFixture(t, "")
	f.userRepo.EXPECT().GetByTelegramID(gomock.Any(), int64(404)).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/stats/404")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decode[apiErrors.APIError](t, rec).Code)
}

func TestAPI_InvalidTelegramID(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodGet, "/api/sales/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ListSales_Limit(t *testing.T) {
	f := newAPIFixture(t, "")
	f.expectUser(7, 3)
	f.saleRepo.EXPECT().ListByUser(gomock.Any(), 3, 2).Return([]*domain.Sale{{ID: 2}, {ID: 1}}, nil)

	rec := f.do(http.MethodGet, "/api/sales/7?limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Sale](t, rec), 2)
}

func TestAPI_ListSales_InvalidLimit(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodGet, "/api/sales/7?limit=muitos")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_DailyChart(t *testing.T) {
	f := newAPIFixture(t, "")
	f.expectUser(7, 3)
	f.saleRepo.EXPECT().ListCompletedSince(gomock.Any(), 3, gomock.Any()).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/charts/7/daily?days=7")

	require.Equal(t, http.StatusOK, rec.Code)
	chart := decode[domain.ChartResponse](t, rec)
	assert.Len(t, chart.Labels, 7)
	assert.Equal(t, "2025-02-10", chart.Labels[6])
}

func TestAPI_DailyChart_DaysTooLarge(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodGet, "/api/charts/7/daily?days=2000000000")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_TopProducts(t *testing.T) {
	f := newAPIFixture(t, "")
	f.expectUser(7, 3)
	f.saleRepo.EXPECT().TopProducts(gomock.Any(), 3, 3).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/charts/7/top-products?limit=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products":[]}`, rec.Body.String())
}

func TestAPI_Demo(t *testing.T) {
	f := newAPIFixture(t, "")
	f.userRepo.EXPECT().GetByTelegramID(gomock.Any(), int64(7)).Return(nil, nil)
	f.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, "ivan", *u.Username)
			assert.Nil(t, u.FirstName)
			u.ID = 3
			return u, nil
		})
	f.saleRepo.EXPECT().ReplaceForUser(gomock.Any(), 3, gomock.Any()).Return(seeding.DemoSalesCount, nil)

	rec := f.do(http.MethodPost, "/api/demo/7?username=ivan")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[domain.DemoResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, seeding.DemoSalesCount, resp.Count)
	assert.Equal(t, "Создано 50 демо-продаж", resp.Message)
}

func TestAPI_ReportPDF(t *testing.T) {
	f := newAPIFixture(t, "")
	f.expectUser(7, 3)
	f.saleRepo.EXPECT().ListByUser(gomock.Any(), 3, 0).Return([]*domain.Sale{{Amount: 1, Quantity: 1, Status: domain.SaleStatusCompleted}}, nil)
	f.saleRepo.EXPECT().TopProducts(gomock.Any(), 3, 5).Return(nil, nil)
	f.pdf.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-1.3"), nil)
	f.pdf.EXPECT().Extension().Return("pdf").AnyTimes()
	f.pdf.EXPECT().ContentType().Return("application/pdf")

	rec := f.do(http.MethodGet, "/api/reports/7/pdf")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=sales_report_20250210_120000.pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestAPI_ReportExcel_NoData(t *testing.T) {
	f := newAPIFixture(t, "")
	f.expectUser(7, 3)
	f.saleRepo.EXPECT().ListByUser(gomock.Any(), 3, 0).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/reports/7/excel")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNoData, decode[apiErrors.APIError](t, rec).Code)
}

func TestAPI_UpcomingHolidays(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodGet, "/api/holidays/upcoming")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[domain.HolidaysResponse](t, rec)
	require.Len(t, resp.Holidays, 3)
	assert.Equal(t, "2025-02-14", resp.Holidays[0].Date)
	assert.Equal(t, 4, resp.Holidays[0].DaysUntil)

	rec = f.do(http.MethodGet, "/api/holidays/upcoming?days_ahead=5")
	assert.Len(t, decode[domain.HolidaysResponse](t, rec).Holidays, 1)
}

func TestAPI_DemandForecast(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodGet, "/api/holidays/demand/flowers")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[domain.DemandForecastResponse](t, rec)
	assert.Equal(t, "flowers", resp.Category)
	require.NotEmpty(t, resp.Forecast)
	assert.Equal(t, 280, resp.Forecast[0].DemandIncrease)

	rec = f.do(http.MethodGet, "/api/holidays/demand/school-supplies")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"category":"school-supplies","forecast":[]}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/holidays/demand/tractors")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_PeaksInsightsCategories(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodGet, "/api/holidays/peaks")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[domain.PeaksResponse](t, rec).Peaks)

	rec = f.do(http.MethodGet, "/api/holidays/insights")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[domain.InsightsResponse](t, rec).Insights)

	rec = f.do(http.MethodGet, "/api/holidays/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[domain.CategoriesResponse](t, rec).Categories, 6)
}

func TestAPI_CronJobs(t *testing.T) {
	f := newAPIFixture(t, "")

	rec := f.do(http.MethodPost, "/api/cron/report-janitor/run")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decode[map[string]any](t, rec)["removed"])

	rec = f.do(http.MethodPost, "/api/cron/desconhecido/run")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/cron/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode[map[string]any](t, rec), "report-janitor")
}

func TestAPI_AuthEnabled(t *testing.T) {
	f := newAPIFixture(t, "segredo")

	rec := f.do(http.MethodGet, "/api/holidays/peaks")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := authenticating.NewService("segredo").IssueToken("bot")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/holidays/peaks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}
