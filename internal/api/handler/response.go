package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// telegramIDParam lê o :telegram_id da rota
func telegramIDParam(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("telegram_id")
	return strconv.ParseInt(raw, 10, 64)
}

// intQuery devolve o valor padrão quando o parâmetro não foi informado
func intQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func optionalQuery(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name)
	return &v
}

// writeUsecaseError converte os erros dos casos de uso em respostas padronizadas
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var reportErr *reporting.ReportError

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "User not found", nil)
	case errors.Is(err, domain.ErrCategoryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Category not found", nil)
	case errors.Is(err, domain.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrNoData, "No sales data", nil)
	case errors.As(err, &reportErr) && errors.Is(err, reporting.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, message, reportErr.Error())
	case errors.As(err, &reportErr):
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrReportGeneration, message, reportErr.Error())
	default:
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, err.Error())
	}
}
