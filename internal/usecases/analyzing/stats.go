package analyzing

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ComputeStats consolida as vendas de um usuário.
// O total inclui vendas canceladas; a conversão usa o total de vendas como denominador.
func ComputeStats(sales []*domain.Sale) domain.SalesStats {
	stats := domain.SalesStats{}
	if len(sales) == 0 {
		return stats
	}

	var totalAmount float64
	for _, sale := range sales {
		totalAmount += sale.Revenue()

		switch sale.Status {
		case domain.SaleStatusCompleted:
			stats.CompletedSales++
		case domain.SaleStatusPending:
			stats.PendingSales++
		case domain.SaleStatusCancelled:
			stats.CancelledSales++
		}
	}

	stats.TotalSales = len(sales)
	stats.TotalAmount = roundMoney(totalAmount)
	stats.AverageCheck = roundMoney(totalAmount / float64(stats.TotalSales))
	stats.ConversionRate = utils.RoundWithTwoDecimalPlace(float64(stats.CompletedSales) / float64(stats.TotalSales) * 100)

	return stats
}

// BuildDailyChart soma a receita por dia (UTC), do mais antigo para o mais recente,
// preenchendo com zero os dias sem vendas concluídas
func BuildDailyChart(sales []*domain.Sale, days int, now time.Time) domain.ChartResponse {
	days = min(max(days, 0), MaxChartDays)
	chart := domain.ChartResponse{
		Labels: make([]string, 0, days),
		Values: make([]float64, 0, days),
	}

	daily := make(map[string]float64)
	for _, sale := range sales {
		if sale.Status != domain.SaleStatusCompleted {
			continue
		}
		daily[sale.Date.UTC().Format(time.DateOnly)] += sale.Revenue()
	}

	today := startOfDay(now.UTC())
	for i := 0; i < days; i++ {
		label := today.AddDate(0, 0, -(days - i - 1)).Format(time.DateOnly)
		chart.Labels = append(chart.Labels, label)
		chart.Values = append(chart.Values, roundMoney(daily[label]))
	}

	return chart
}

func roundMoney(f float64) float64 {
	return utils.RoundWithTwoDecimalPlace(f)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
