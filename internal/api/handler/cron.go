package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	CronJobTypeReportJanitor = "report-janitor"
)

// CronJobServices contém os serviços agendados que podem ser executados manualmente
type CronJobServices struct {
	ReportJanitor *scheduler.ReportJanitorService
}

// RunCronJob executa manualmente um serviço agendado
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeReportJanitor:
			if services.ReportJanitor == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Limpeza de relatórios não disponível", nil)
				return
			}

			removed, err := services.ReportJanitor.RunNow()
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Erro na limpeza manual de relatórios")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro na limpeza de relatórios", err.Error())
				return
			}

			writeJSON(w, r, http.StatusOK, map[string]any{
				"message": "Cron job executada com sucesso",
				"type":    cronType,
				"removed": removed,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidParam, "Tipo de cron job inválido. Valores aceitos: report-janitor", nil)
		}
	}
}

// GetCronStatus retorna o status dos serviços agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReportJanitor != nil {
			status[CronJobTypeReportJanitor] = services.ReportJanitor.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
