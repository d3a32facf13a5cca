// Package analyzing calcula as estatísticas de vendas de cada usuário
package analyzing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	DefaultSalesLimit       = 100
	DefaultChartDays        = 30
	MaxChartDays            = 365
	DefaultTopProductsLimit = 5
)

type Analyzer interface {
	GetUser(ctx context.Context, telegramID int64) (*domain.User, error)
	ListSales(ctx context.Context, telegramID int64, limit int) ([]*domain.Sale, error)
	GetStats(ctx context.Context, telegramID int64) (*domain.SalesStats, error)
	GetDailyChart(ctx context.Context, telegramID int64, days int) (*domain.ChartResponse, error)
	GetTopProducts(ctx context.Context, telegramID int64, limit int) (*domain.TopProductsResponse, error)
}

type Service struct {
	userRepo repository.UserRepository
	saleRepo repository.SaleRepository
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, saleRepo repository.SaleRepository) *Service {
	return &Service{
		userRepo: userRepo,
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

// WithClock troca o relógio usado pelo gráfico diário
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetUser(ctx context.Context, telegramID int64) (*domain.User, error) {
	return FindUser(ctx, s.userRepo, telegramID)
}

func (s *Service) ListSales(ctx context.Context, telegramID int64, limit int) ([]*domain.Sale, error) {
	user, err := FindUser(ctx, s.userRepo, telegramID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultSalesLimit
	}

	sales, err := s.saleRepo.ListByUser(ctx, user.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas")
	}

	return sales, nil
}

func (s *Service) GetStats(ctx context.Context, telegramID int64) (*domain.SalesStats, error) {
	user, err := FindUser(ctx, s.userRepo, telegramID)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListByUser(ctx, user.ID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas para estatísticas")
	}

	stats := ComputeStats(sales)
	return &stats, nil
}

func (s *Service) GetDailyChart(ctx context.Context, telegramID int64, days int) (*domain.ChartResponse, error) {
	user, err := FindUser(ctx, s.userRepo, telegramID)
	if err != nil {
		return nil, err
	}

	if days <= 0 {
		days = DefaultChartDays
	}
	days = min(days, MaxChartDays)

	now := s.now().UTC()
	since := startOfDay(now).AddDate(0, 0, -(days - 1))

	sales, err := s.saleRepo.ListCompletedSince(ctx, user.ID, since)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do gráfico")
	}

	chart := BuildDailyChart(sales, days, now)
	return &chart, nil
}

func (s *Service) GetTopProducts(ctx context.Context, telegramID int64, limit int) (*domain.TopProductsResponse, error) {
	user, err := FindUser(ctx, s.userRepo, telegramID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	products, err := LoadTopProducts(ctx, s.saleRepo, user.ID, limit)
	if err != nil {
		return nil, err
	}

	return &domain.TopProductsResponse{Products: products}, nil
}

// FindUser converte a ausência do usuário em domain.ErrUserNotFound
func FindUser(ctx context.Context, userRepo repository.UserRepository, telegramID int64) (*domain.User, error) {
	user, err := userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário")
	}

	if user == nil {
		return nil, errors.Wrapf(domain.ErrUserNotFound, "telegram_id %d", telegramID)
	}

	return user, nil
}

// LoadTopProducts busca o ranking e arredonda a receita para duas casas
func LoadTopProducts(ctx context.Context, saleRepo repository.SaleRepository, userID int, limit int) ([]domain.TopProduct, error) {
	products, err := saleRepo.TopProducts(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar top produtos")
	}

	for i := range products {
		products[i].TotalAmount = roundMoney(products[i].TotalAmount)
	}

	return products, nil
}
