package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// DownloadReport devolve o relatório como anexo no formato indicado
func DownloadReport(service reporting.Reporter, format domain.ReportFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Invalid telegram_id", nil)
			return
		}

		report, err := service.Generate(r.Context(), telegramID, format)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao gerar relatório")
			return
		}

		w.Header().Set("Content-Type", report.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(report.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar relatório")
		}
	}
}
