package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrRender            = errors.New("error rendering report")
	ErrSpool             = errors.New("error spooling report file")
)

// ReportError carrega o formato e o código de API junto do erro base
type ReportError struct {
	Err     error
	Code    string
	Format  domain.ReportFormat
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Format, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Format)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, format domain.ReportFormat, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Format:  format,
		Details: details,
	}
}
