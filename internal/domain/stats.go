package domain

// SalesStats são os indicadores consolidados das vendas de um usuário
type SalesStats struct {
	TotalAmount    float64 `json:"total_amount"`
	TotalSales     int     `json:"total_sales"`
	AverageCheck   float64 `json:"average_check"`
	CompletedSales int     `json:"completed_sales"`
	PendingSales   int     `json:"pending_sales"`
	CancelledSales int     `json:"cancelled_sales"`
	ConversionRate float64 `json:"conversion_rate"`
}
