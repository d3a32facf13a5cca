package pdf

import (
	"github.com/go-pdf/fpdf"
)

type document struct {
	pdf    *fpdf.Fpdf
	family string
	text   func(string) string
}

type table struct {
	headers  []string
	widths   []float64
	aligns   []string
	rows     [][]string
	header   rgb
	body     rgb
	fontSize float64
}

func (d *document) title(s string) {
	d.pdf.SetFont(d.family, "B", 24)
	d.pdf.SetTextColor(colorTitle.r, colorTitle.g, colorTitle.b)
	d.pdf.CellFormat(0, 14, d.text(s), "", 1, "C", false, 0, "")
	d.pdf.Ln(4)
}

func (d *document) centered(s string) {
	d.pdf.SetFont(d.family, "", 10)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 6, d.text(s), "", 1, "C", false, 0, "")
}

func (d *document) heading(s string) {
	d.pdf.Ln(6)
	d.pdf.SetFont(d.family, "B", 16)
	d.pdf.SetTextColor(colorHeading.r, colorHeading.g, colorHeading.b)
	d.pdf.CellFormat(0, 10, d.text(s), "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

func (d *document) table(t table) {
	size := t.fontSize
	if size == 0 {
		size = 11
	}

	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetFont(d.family, "B", size+1)
	d.pdf.SetFillColor(t.header.r, t.header.g, t.header.b)
	d.pdf.SetTextColor(255, 255, 255)
	for i, h := range t.headers {
		d.pdf.CellFormat(t.widths[i], 9, d.text(h), "1", 0, t.aligns[i], true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont(d.family, "", size)
	d.pdf.SetFillColor(t.body.r, t.body.g, t.body.b)
	d.pdf.SetTextColor(0, 0, 0)
	for _, row := range t.rows {
		for i, v := range row {
			d.pdf.CellFormat(t.widths[i], 8, d.text(v), "1", 0, t.aligns[i], true, 0, "")
		}
		d.pdf.Ln(-1)
	}
}
