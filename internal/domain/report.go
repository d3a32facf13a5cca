package domain

import "time"

type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
)

// ReportData é a entrada comum dos geradores de relatório
type ReportData struct {
	Stats       SalesStats
	Sales       []*Sale
	TopProducts []TopProduct
	UserName    string
	GeneratedAt time.Time
}

// Report é o arquivo gerado, pronto para download
type Report struct {
	Filename    string
	ContentType string
	Content     []byte
}
