package domain

import (
	"strconv"
	"time"
)

type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCancelled SaleStatus = "cancelled"
)

type Sale struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	ProductName string     `json:"product_name"`
	Amount      float64    `json:"amount"`
	Quantity    int        `json:"quantity"`
	Date        time.Time  `json:"date"`
	Status      SaleStatus `json:"status"`
}

// Revenue é o valor da venda considerando a quantidade
func (s *Sale) Revenue() float64 {
	return s.Amount * float64(s.Quantity)
}

// TopProduct agrega as vendas concluídas de um produto
type TopProduct struct {
	ProductName   string  `json:"product_name"`
	TotalAmount   float64 `json:"total_amount"`
	TotalQuantity int     `json:"total_quantity"`
	SalesCount    int     `json:"sales_count"`
}

type TopProductsResponse struct {
	Products []TopProduct `json:"products"`
}

type ChartResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type DemoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
