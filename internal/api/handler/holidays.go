package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func GetUpcomingHolidays(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		daysAhead, err := intQuery(r, "days_ahead", forecasting.DefaultHorizonDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid days_ahead", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.HolidaysResponse{
			Holidays: service.UpcomingHolidays(daysAhead),
		})
	}
}

// GetDemandForecast responde 404 apenas para categoria desconhecida;
// categoria conhecida sem feriados na janela devolve lista vazia
func GetDemandForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := httprouter.ParamsFromContext(r.Context()).ByName("category")

		daysAhead, err := intQuery(r, "days_ahead", forecasting.DefaultHorizonDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid days_ahead", nil)
			return
		}

		if !service.IsKnownCategory(category) {
			writeUsecaseError(w, r, domain.ErrCategoryNotFound, "Categoria desconhecida")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.DemandForecastResponse{
			Category: category,
			Forecast: service.DemandForecast(category, daysAhead),
		})
	}
}

func GetPeakPeriods(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.PeaksResponse{Peaks: service.PeakSalesPeriods()})
	}
}

func GetCategoryInsights(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.InsightsResponse{Insights: service.CategoryInsights()})
	}
}

func GetCategories(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.CategoriesResponse{Categories: service.Categories()})
	}
}
