package excel

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

var generatedAt = time.Date(2025, 2, 10, 14, 30, 0, 0, time.UTC)

func sampleData() domain.ReportData {
	day := time.Date(2025, 2, 9, 10, 0, 0, 0, time.UTC)

	return domain.ReportData{
		Stats: domain.SalesStats{
			TotalAmount:    450,
			TotalSales:     3,
			AverageCheck:   150,
			CompletedSales: 2,
			CancelledSales: 1,
			ConversionRate: 66.67,
		},
		Sales: []*domain.Sale{
			{ProductName: "Мышь MX Master 3", Amount: 100, Quantity: 2, Date: day, Status: domain.SaleStatusCompleted},
			{ProductName: "Роутер Wi-Fi 6", Amount: 50, Quantity: 1, Date: day, Status: domain.SaleStatusCompleted},
			{ProductName: "Принтер HP LaserJet", Amount: 200, Quantity: 1, Date: day, Status: domain.SaleStatusCancelled},
		},
		TopProducts: []domain.TopProduct{
			{ProductName: "Мышь MX Master 3", TotalAmount: 200, TotalQuantity: 2, SalesCount: 1},
			{ProductName: "Роутер Wi-Fi 6", TotalAmount: 50, TotalQuantity: 1, SalesCount: 1},
		},
		UserName:    "Иван",
		GeneratedAt: generatedAt,
	}
}

func open(t *testing.T, content []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content), excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func value(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()

	v, err := f.GetCellValue(sheet, axis)
	require.NoError(t, err)

	return v
}

func TestRenderer_Render_Sheets(t *testing.T) {
	content, err := NewRenderer().Render(sampleData())
	require.NoError(t, err)

	f := open(t, content)

	assert.Equal(t, []string{SheetSummary, SheetSales, SheetTopProducts, SheetAnalytics}, f.GetSheetList())
}

func TestRenderer_Render_Summary(t *testing.T) {
	content, err := NewRenderer().Render(sampleData())
	require.NoError(t, err)

	f := open(t, content)

	assert.Equal(t, "Отчет о продажах", value(t, f, SheetSummary, "A1"))
	assert.Equal(t, "Дата: 10.02.2025 14:30", value(t, f, SheetSummary, "A2"))
	assert.Equal(t, "Пользователь: Иван", value(t, f, SheetSummary, "A3"))
	assert.Equal(t, "Общая выручка", value(t, f, SheetSummary, "A6"))
	assert.Equal(t, "450.00 ₽", value(t, f, SheetSummary, "B6"))
	assert.Equal(t, "66.67%", value(t, f, SheetSummary, "B12"))
}

func TestRenderer_Render_SalesTotals(t *testing.T) {
	content, err := NewRenderer().Render(sampleData())
	require.NoError(t, err)

	f := open(t, content)

	assert.Equal(t, "Мышь MX Master 3", value(t, f, SheetSales, "B2"))
	assert.Equal(t, "Отменено", value(t, f, SheetSales, "E4"))
	assert.Equal(t, "ИТОГО:", value(t, f, SheetSales, "A5"))

	formula, err := f.GetCellFormula(SheetSales, "C5")
	require.NoError(t, err)
	assert.Contains(t, formula, "SUM(C2:C4)")

	formula, err = f.GetCellFormula(SheetSales, "D5")
	require.NoError(t, err)
	assert.Contains(t, formula, "SUM(D2:D4)")
}

func TestRenderer_Render_SalesCapped(t *testing.T) {
	data := sampleData()
	data.Sales = make([]*domain.Sale, 0, MaxSalesRows+5)
	for i := 0; i < MaxSalesRows+5; i++ {
		data.Sales = append(data.Sales, &domain.Sale{
			ProductName: fmt.Sprintf("Товар %d", i),
			Amount:      1,
			Quantity:    1,
			Date:        generatedAt,
			Status:      domain.SaleStatusCompleted,
		})
	}

	content, err := NewRenderer().Render(data)
	require.NoError(t, err)

	f := open(t, content)

	total := fmt.Sprintf("A%d", MaxSalesRows+2)
	assert.Equal(t, "ИТОГО:", value(t, f, SheetSales, total))
}

func TestRenderer_Render_TopProductsAndAnalytics(t *testing.T) {
	content, err := NewRenderer().Render(sampleData())
	require.NoError(t, err)

	f := open(t, content)

	assert.Equal(t, "1", value(t, f, SheetTopProducts, "A2"))
	assert.Equal(t, "Роутер Wi-Fi 6", value(t, f, SheetTopProducts, "B3"))
	assert.Empty(t, value(t, f, SheetTopProducts, "B4"))

	assert.Equal(t, "2", value(t, f, SheetAnalytics, "B4"))
	assert.Equal(t, "3", value(t, f, SheetAnalytics, "B7"))

	formula, err := f.GetCellFormula(SheetAnalytics, "C4")
	require.NoError(t, err)
	assert.Contains(t, formula, "IF($B$7=0,0,B4/$B$7*100)")
}

func TestRenderer_Render_Empty(t *testing.T) {
	content, err := NewRenderer().Render(domain.ReportData{UserName: "User 1", GeneratedAt: generatedAt})
	require.NoError(t, err)

	f := open(t, content)

	assert.Equal(t, "ИТОГО:", value(t, f, SheetSales, "A2"))
	assert.Equal(t, "0", value(t, f, SheetSales, "C2"))
}

func TestRenderer_Metadata(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, "xlsx", r.Extension())
	assert.Contains(t, r.ContentType(), "spreadsheetml")
}
