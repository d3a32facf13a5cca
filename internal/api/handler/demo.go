package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// CreateDemo substitui as vendas do usuário por dados de demonstração
func CreateDemo(service seeding.Seeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid telegram_id", nil)
			return
		}

		count, err := service.CreateDemoData(
			r.Context(),
			telegramID,
			optionalQuery(r, "username"),
			optionalQuery(r, "first_name"),
		)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao criar dados de demonstração")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.DemoResponse{
			Success: true,
			Message: fmt.Sprintf("Создано %d демо-продаж", count),
			Count:   count,
		})
	}
}
