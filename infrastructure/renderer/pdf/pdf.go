// Package pdf gera o relatório de vendas em PDF
package pdf

import (
	"bytes"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	MaxTopProducts = 5
	MaxSales       = 10

	margin          = 20.0
	fontFamily      = "ReportSans"
	coreFontFamily  = "Helvetica"
	maxProductRunes = 30
)

type rgb struct{ r, g, b int }

var (
	colorTitle    = rgb{31, 41, 55}
	colorHeading  = rgb{55, 65, 81}
	colorKPI      = rgb{59, 130, 246}
	colorKPIBody  = rgb{245, 245, 220}
	colorTop      = rgb{16, 185, 129}
	colorTopBody  = rgb{144, 238, 144}
	colorSales    = rgb{245, 158, 11}
	colorSaleBody = rgb{255, 255, 224}
)

type Renderer struct {
	fontPath string
	compress bool
}

// NewRenderer usa a fonte TTF informada para exibir cirílico.
// Sem fonte válida o texto é transliterado para a fonte Helvetica.
func NewRenderer(fontPath string) *Renderer {
	if fontPath != "" {
		if _, err := os.Stat(fontPath); err != nil {
			log.L.WithError(err).Warnf("Fonte do relatório não encontrada em %s, usando Helvetica", fontPath)
			fontPath = ""
		}
	}

	return &Renderer{fontPath: fontPath, compress: true}
}

func (r *Renderer) ContentType() string { return renderer.ContentTypePDF }

func (r *Renderer) Extension() string { return "pdf" }

func (r *Renderer) Render(data domain.ReportData) ([]byte, error) {
	doc := r.newDocument(data)

	doc.title("Отчет о продажах")
	doc.centered("Дата формирования: " + data.GeneratedAt.Format(renderer.DateTimeLayout))
	doc.centered("Пользователь: " + data.UserName)
	doc.pdf.Ln(8)

	doc.heading("Сводные показатели")
	kpi := renderer.SummaryRows(data.Stats, utils.FormatMoney, utils.FormatPercent)
	kpiRows := make([][]string, 0, len(kpi))
	for _, row := range kpi {
		kpiRows = append(kpiRows, []string{row[0], row[1]})
	}
	doc.table(table{
		headers: []string{"Показатель", "Значение"},
		widths:  []float64{100, 60},
		aligns:  []string{"L", "R"},
		rows:    kpiRows,
		header:  colorKPI,
		body:    colorKPIBody,
	})

	if len(data.TopProducts) > 0 {
		doc.heading("Топ-5 товаров")

		products := data.TopProducts
		if len(products) > MaxTopProducts {
			products = products[:MaxTopProducts]
		}

		rows := make([][]string, 0, len(products))
		for i, p := range products {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				p.ProductName,
				utils.FormatMoney(p.TotalAmount),
				strconv.Itoa(p.SalesCount),
			})
		}

		doc.table(table{
			headers: []string{"№", "Товар", "Выручка", "Продаж"},
			widths:  []float64{15, 90, 35, 20},
			aligns:  []string{"L", "L", "R", "R"},
			rows:    rows,
			header:  colorTop,
			body:    colorTopBody,
		})
	}

	if len(data.Sales) > 0 {
		doc.heading("Последние продажи")

		sales := data.Sales
		if len(sales) > MaxSales {
			sales = sales[:MaxSales]
		}

		rows := make([][]string, 0, len(sales))
		for _, s := range sales {
			rows = append(rows, []string{
				s.Date.Format(renderer.DateLayout),
				truncate(s.ProductName, maxProductRunes),
				utils.FormatMoney(s.Amount),
				strconv.Itoa(s.Quantity),
				renderer.StatusTitle(s.Status),
			})
		}

		doc.table(table{
			headers:  []string{"Дата", "Товар", "Сумма", "Кол-во", "Статус"},
			widths:   []float64{25, 70, 30, 18, 27},
			aligns:   []string{"L", "L", "R", "R", "L"},
			rows:     rows,
			header:   colorSales,
			body:     colorSaleBody,
			fontSize: 9,
		})
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao gerar PDF")
	}

	return buf.Bytes(), nil
}

func (r *Renderer) newDocument(data domain.ReportData) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(data.GeneratedAt)
	pdf.SetModificationDate(data.GeneratedAt)

	doc := &document{pdf: pdf, family: coreFontFamily, text: transliterate(pdf)}

	if r.fontPath != "" {
		pdf.AddUTF8Font(fontFamily, "", r.fontPath)
		pdf.AddUTF8Font(fontFamily, "B", r.fontPath)
		doc.family = fontFamily
		doc.text = func(s string) string { return s }
	}

	pdf.SetTitle(doc.text("Отчет о продажах"), doc.family == fontFamily)
	pdf.AddPage()

	return doc
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
