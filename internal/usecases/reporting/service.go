// Package reporting monta os relatórios de vendas em PDF e Excel
package reporting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	// SpoolPrefix identifica os arquivos temporários desta aplicação no diretório de spool
	SpoolPrefix = "sales_spool_"

	pdfTopProducts = 5
	pdfSalesRows   = 50

	filenameLayout = "20060102_150405"
)

type Reporter interface {
	Generate(ctx context.Context, telegramID int64, format domain.ReportFormat) (*domain.Report, error)
}

type Service struct {
	userRepo  repository.UserRepository
	saleRepo  repository.SaleRepository
	renderers map[domain.ReportFormat]renderer.Renderer
	spoolDir  string
	now       func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	saleRepo repository.SaleRepository,
	pdfRenderer renderer.Renderer,
	excelRenderer renderer.Renderer,
	spoolDir string,
) *Service {
	return &Service{
		userRepo: userRepo,
		saleRepo: saleRepo,
		renderers: map[domain.ReportFormat]renderer.Renderer{
			domain.ReportFormatPDF:   pdfRenderer,
			domain.ReportFormatExcel: excelRenderer,
		},
		spoolDir: spoolDir,
		now:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Generate(ctx context.Context, telegramID int64, format domain.ReportFormat) (*domain.Report, error) {
	r, ok := s.renderers[format]
	if !ok || r == nil {
		return nil, NewReportError(ErrUnsupportedFormat, "VAL_REPORT_FORMAT", format, "")
	}

	user, err := analyzing.FindUser(ctx, s.userRepo, telegramID)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListByUser(ctx, user.ID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do relatório")
	}

	if len(sales) == 0 {
		return nil, errors.Wrapf(domain.ErrNoData, "telegram_id %d", telegramID)
	}

	topLimit, rows := 0, sales
	if format == domain.ReportFormatPDF {
		topLimit = pdfTopProducts
		if len(rows) > pdfSalesRows {
			rows = rows[:pdfSalesRows]
		}
	}

	topProducts, err := analyzing.LoadTopProducts(ctx, s.saleRepo, user.ID, topLimit)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	data := domain.ReportData{
		Stats:       analyzing.ComputeStats(sales),
		Sales:       rows,
		TopProducts: topProducts,
		UserName:    user.DisplayName(),
		GeneratedAt: generatedAt,
	}

	content, err := r.Render(data)
	if err != nil {
		return nil, NewReportError(ErrRender, "SRV_REPORT_RENDER", format, err.Error())
	}

	content, err = s.spool(r.Extension(), content)
	if err != nil {
		return nil, NewReportError(ErrSpool, "SRV_REPORT_SPOOL", format, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_telegram_id": telegramID,
		"format":           format,
		"count":            len(rows),
	}).Info("Relatório gerado")

	return &domain.Report{
		Filename:    fmt.Sprintf("sales_report_%s.%s", generatedAt.Format(filenameLayout), r.Extension()),
		ContentType: r.ContentType(),
		Content:     content,
	}, nil
}

// EnsureSpoolDir cria o diretório de spool (e os pais) caso ainda não exista
func EnsureSpoolDir(dir string) error {
	if dir == "" {
		return errors.New("diretório de spool não configurado")
	}
	return errors.Wrapf(os.MkdirAll(dir, 0o700), "erro ao criar diretório de spool %s", dir)
}

// spool grava o artefato em disco, lê de volta uma vez e remove o arquivo
func (s *Service) spool(ext string, content []byte) ([]byte, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.spoolDir, fmt.Sprintf("%s%s.%s", SpoolPrefix, id, ext))

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.L.WithError(err).Warnf("Não foi possível remover o arquivo %s", path)
		}
	}()

	return os.ReadFile(path)
}
