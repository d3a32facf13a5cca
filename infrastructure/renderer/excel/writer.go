package excel

import (
	"github.com/xuri/excelize/v2"
)

// sheetWriter guarda o primeiro erro e ignora as escritas seguintes
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(axis string, value interface{}) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, axis, value)
}

func (w *sheetWriter) formula(axis, formula string) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellFormula(w.sheet, axis, formula)
}

func (w *sheetWriter) row(line int, values []string) {
	for i, v := range values {
		axis, err := excelize.CoordinatesToCellName(i+1, line)
		if err != nil {
			w.err = err
			return
		}
		w.set(axis, v)
	}
}

func (w *sheetWriter) style(from, to string, styleID int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, from, to, width)
}

type styles struct {
	title     int
	header    int
	topHeader int
	bordered  int
	money     int
	bold      int
	boldMoney int
	percent   int
}

func newStyles(f *excelize.File) (*styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	money := moneyFormat
	percent := percentFormat

	st := &styles{}
	defs := []struct {
		target *int
		style  *excelize.Style
	}{
		{&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{&st.header, headerStyle(headerColor, border)},
		{&st.topHeader, headerStyle(topHeaderColor, border)},
		{&st.bordered, &excelize.Style{Border: border}},
		{&st.money, &excelize.Style{Border: border, CustomNumFmt: &money}},
		{&st.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&st.boldMoney, &excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &money}},
		{&st.percent, &excelize.Style{CustomNumFmt: &percent}},
	}

	for _, def := range defs {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return nil, err
		}
		*def.target = id
	}

	return st, nil
}

func headerStyle(color string, border []excelize.Border) *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}
}
