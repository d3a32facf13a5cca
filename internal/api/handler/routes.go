package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

const apiPrefix = "/api"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/sales/:telegram_id",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    apiPrefix + "/stats/:telegram_id",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
		{
			Path:    apiPrefix + "/charts/:telegram_id/daily",
			Method:  http.MethodGet,
			Handler: GetDailyChart(service),
		},
		{
			Path:    apiPrefix + "/charts/:telegram_id/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    apiPrefix + "/user/:telegram_id",
			Method:  http.MethodGet,
			Handler: GetUser(service),
		},
	}
}

func Demo(service seeding.Seeder) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/demo/:telegram_id",
			Method:  http.MethodPost,
			Handler: CreateDemo(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        apiPrefix + "/reports/:telegram_id/pdf",
			Method:      http.MethodGet,
			Handler:     DownloadReport(service, domain.ReportFormatPDF),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
		{
			Path:        apiPrefix + "/reports/:telegram_id/excel",
			Method:      http.MethodGet,
			Handler:     DownloadReport(service, domain.ReportFormatExcel),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
	}
}

func Holidays(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/holidays/upcoming",
			Method:  http.MethodGet,
			Handler: GetUpcomingHolidays(service),
		},
		{
			Path:    apiPrefix + "/holidays/demand/:category",
			Method:  http.MethodGet,
			Handler: GetDemandForecast(service),
		},
		{
			Path:    apiPrefix + "/holidays/peaks",
			Method:  http.MethodGet,
			Handler: GetPeakPeriods(service),
		},
		{
			Path:    apiPrefix + "/holidays/insights",
			Method:  http.MethodGet,
			Handler: GetCategoryInsights(service),
		},
		{
			Path:    apiPrefix + "/holidays/categories",
			Method:  http.MethodGet,
			Handler: GetCategories(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    apiPrefix + "/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
