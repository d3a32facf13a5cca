// Package renderer define o contrato comum dos geradores de relatório
package renderer

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	ContentTypePDF   = "application/pdf"
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Renderer interface {
	Render(data domain.ReportData) ([]byte, error)
	ContentType() string
	Extension() string
}

// StatusTitle traduz o status da venda para o texto exibido nos relatórios
func StatusTitle(status domain.SaleStatus) string {
	switch status {
	case domain.SaleStatusCompleted:
		return "Завершено"
	case domain.SaleStatusPending:
		return "Ожидание"
	case domain.SaleStatusCancelled:
		return "Отменено"
	default:
		return string(status)
	}
}

// SummaryRows são os indicadores exibidos no topo dos dois formatos
func SummaryRows(stats domain.SalesStats, money func(float64) string, percent func(float64) string) [][2]string {
	return [][2]string{
		{"Общая выручка", money(stats.TotalAmount)},
		{"Всего продаж", itoa(stats.TotalSales)},
		{"Средний чек", money(stats.AverageCheck)},
		{"Завершено", itoa(stats.CompletedSales)},
		{"В ожидании", itoa(stats.PendingSales)},
		{"Отменено", itoa(stats.CancelledSales)},
		{"Конверсия", percent(stats.ConversionRate)},
	}
}
