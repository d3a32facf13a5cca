package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// ListSales retorna as vendas do usuário, das mais recentes para as mais antigas
func ListSales(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid telegram_id", nil)
			return
		}

		limit, err := intQuery(r, "limit", analyzing.DefaultSalesLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid limit", nil)
			return
		}

		sales, err := service.ListSales(r.Context(), telegramID, limit)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar vendas")
			return
		}

		if sales == nil {
			sales = []*domain.Sale{}
		}

		writeJSON(w, r, http.StatusOK, sales)
	}
}

func GetStats(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid telegram_id", nil)
			return
		}

		stats, err := service.GetStats(r.Context(), telegramID)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao calcular estatísticas")
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

func GetDailyChart(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid telegram_id", nil)
			return
		}

		days, err := intQuery(r, "days", analyzing.DefaultChartDays)
		if err != nil || days > analyzing.MaxChartDays {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid days", nil)
			return
		}

		chart, err := service.GetDailyChart(r.Context(), telegramID, days)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao montar gráfico diário")
			return
		}

		writeJSON(w, r, http.StatusOK, chart)
	}
}

func GetTopProducts(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid telegram_id", nil)
			return
		}

		limit, err := intQuery(r, "limit", analyzing.DefaultTopProductsLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid limit", nil)
			return
		}

		resp, err := service.GetTopProducts(r.Context(), telegramID, limit)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao buscar top produtos")
			return
		}

		if resp.Products == nil {
			resp.Products = []domain.TopProduct{}
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func GetUser(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid telegram_id", nil)
			return
		}

		user, err := service.GetUser(r.Context(), telegramID)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
