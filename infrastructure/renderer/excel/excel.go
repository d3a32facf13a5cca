// Package excel gera o relatório de vendas em XLSX
package excel

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary     = "Сводка"
	SheetSales       = "Продажи"
	SheetTopProducts = "Топ товаров"
	SheetAnalytics   = "Аналитика"

	MaxSalesRows       = 1000
	MaxTopProductsRows = 10

	moneyFormat   = `#,##0.00 "₽"`
	percentFormat = `0.00"%"`

	headerColor    = "3B82F6"
	topHeaderColor = "10B981"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) ContentType() string { return renderer.ContentTypeExcel }

func (r *Renderer) Extension() string { return "xlsx" }

func (r *Renderer) Render(data domain.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar estilos da planilha")
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, errors.Wrap(err, "erro ao renomear planilha")
	}

	steps := []struct {
		sheet string
		write func(*excelize.File, *styles, domain.ReportData) error
	}{
		{SheetSummary, writeSummary},
		{SheetSales, writeSales},
		{SheetTopProducts, writeTopProducts},
		{SheetAnalytics, writeAnalytics},
	}

	for _, step := range steps {
		if step.sheet != SheetSummary {
			if _, err := f.NewSheet(step.sheet); err != nil {
				return nil, errors.Wrapf(err, "erro ao criar planilha %s", step.sheet)
			}
		}
		if err := step.write(f, st, data); err != nil {
			return nil, errors.Wrapf(err, "erro ao preencher planilha %s", step.sheet)
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar planilha")
	}

	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, st *styles, data domain.ReportData) error {
	w := &sheetWriter{f: f, sheet: SheetSummary}

	w.set("A1", "Отчет о продажах")
	w.set("A2", "Дата: "+data.GeneratedAt.Format(renderer.DateTimeLayout))
	w.set("A3", "Пользователь: "+data.UserName)
	w.style("A1", "A1", st.title)

	w.set("A5", "Показатель")
	w.set("B5", "Значение")
	w.style("A5", "B5", st.header)

	rows := renderer.SummaryRows(data.Stats, utils.FormatMoney, utils.FormatPercent)
	for i, row := range rows {
		line := 6 + i
		w.set(cell("A", line), row[0])
		w.set(cell("B", line), row[1])
		w.style(cell("A", line), cell("B", line), st.bordered)
	}

	w.width("A", "A", 25)
	w.width("B", "B", 20)

	return w.err
}

func writeSales(f *excelize.File, st *styles, data domain.ReportData) error {
	w := &sheetWriter{f: f, sheet: SheetSales}

	headers := []string{"Дата", "Товар", "Сумма", "Количество", "Статус"}
	w.row(1, headers)
	w.style("A1", "E1", st.header)

	sales := data.Sales
	if len(sales) > MaxSalesRows {
		sales = sales[:MaxSalesRows]
	}

	for i, sale := range sales {
		line := 2 + i
		w.set(cell("A", line), sale.Date.Format(renderer.DateTimeLayout))
		w.set(cell("B", line), sale.ProductName)
		w.set(cell("C", line), sale.Amount)
		w.set(cell("D", line), sale.Quantity)
		w.set(cell("E", line), renderer.StatusTitle(sale.Status))
		w.style(cell("A", line), cell("E", line), st.bordered)
		w.style(cell("C", line), cell("C", line), st.money)
	}

	total := len(sales) + 2
	w.set(cell("A", total), "ИТОГО:")
	if len(sales) > 0 {
		w.formula(cell("C", total), fmt.Sprintf("SUM(C2:C%d)", total-1))
		w.formula(cell("D", total), fmt.Sprintf("SUM(D2:D%d)", total-1))
	} else {
		w.set(cell("C", total), 0)
		w.set(cell("D", total), 0)
	}
	w.style(cell("A", total), cell("D", total), st.bold)
	w.style(cell("C", total), cell("C", total), st.boldMoney)

	w.width("A", "A", 18)
	w.width("B", "B", 40)
	w.width("C", "C", 15)
	w.width("D", "D", 12)
	w.width("E", "E", 15)

	return w.err
}

func writeTopProducts(f *excelize.File, st *styles, data domain.ReportData) error {
	w := &sheetWriter{f: f, sheet: SheetTopProducts}

	w.row(1, []string{"№", "Товар", "Выручка", "Количество", "Продаж"})
	w.style("A1", "E1", st.topHeader)

	products := data.TopProducts
	if len(products) > MaxTopProductsRows {
		products = products[:MaxTopProductsRows]
	}

	for i, p := range products {
		line := 2 + i
		w.set(cell("A", line), i+1)
		w.set(cell("B", line), p.ProductName)
		w.set(cell("C", line), p.TotalAmount)
		w.set(cell("D", line), p.TotalQuantity)
		w.set(cell("E", line), p.SalesCount)
		w.style(cell("A", line), cell("E", line), st.bordered)
		w.style(cell("C", line), cell("C", line), st.money)
	}

	w.width("A", "A", 5)
	w.width("B", "B", 40)
	w.width("C", "C", 18)
	w.width("D", "D", 15)
	w.width("E", "E", 12)

	return w.err
}

func writeAnalytics(f *excelize.File, st *styles, data domain.ReportData) error {
	w := &sheetWriter{f: f, sheet: SheetAnalytics}

	w.set("A1", "Анализ по статусам")
	w.style("A1", "A1", st.title)

	w.row(3, []string{"Статус", "Количество", "Процент"})
	w.style("A3", "C3", st.header)

	breakdown := []struct {
		title string
		count int
	}{
		{"Завершено", data.Stats.CompletedSales},
		{"В ожидании", data.Stats.PendingSales},
		{"Отменено", data.Stats.CancelledSales},
	}

	for i, b := range breakdown {
		line := 4 + i
		w.set(cell("A", line), b.title)
		w.set(cell("B", line), b.count)
		w.formula(cell("C", line), fmt.Sprintf("IF($B$7=0,0,B%d/$B$7*100)", line))
		w.style(cell("C", line), cell("C", line), st.percent)
	}

	w.set("A7", "Всего")
	w.set("B7", data.Stats.TotalSales)
	w.style("A7", "B7", st.bold)

	w.width("A", "A", 20)
	w.width("B", "C", 15)

	return w.err
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
