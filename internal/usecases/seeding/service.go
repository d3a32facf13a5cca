// Package seeding gera vendas de demonstração para um usuário
package seeding

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	DemoSalesCount = 50
	demoMaxDaysAgo = 30
	priceSpread    = 0.1
)

type Seeder interface {
	CreateDemoData(ctx context.Context, telegramID int64, username, firstName *string) (int, error)
}

type Service struct {
	userRepo repository.UserRepository
	saleRepo repository.SaleRepository
	rand     *rand.Rand
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, saleRepo repository.SaleRepository) *Service {
	return &Service{
		userRepo: userRepo,
		saleRepo: saleRepo,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// WithRand fixa a fonte de aleatoriedade e o relógio
func (s *Service) WithRand(r *rand.Rand, now func() time.Time) *Service {
	s.rand = r
	s.now = now
	return s
}

// CreateDemoData substitui todas as vendas do usuário por vendas geradas.
// O usuário é criado como demo quando ainda não existe.
func (s *Service) CreateDemoData(ctx context.Context, telegramID int64, username, firstName *string) (int, error) {
	user, err := s.findOrCreateUser(ctx, telegramID, username, firstName)
	if err != nil {
		return 0, err
	}

	sales := s.generateSales(user.ID, DemoSalesCount)

	count, err := s.saleRepo.ReplaceForUser(ctx, user.ID, sales)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao gravar vendas de demonstração")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_telegram_id": telegramID,
		"count":            count,
	}).Info("Vendas de demonstração criadas")

	return count, nil
}

func (s *Service) findOrCreateUser(ctx context.Context, telegramID int64, username, firstName *string) (*domain.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário")
	}

	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.Create(ctx, &domain.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		IsDemo:     true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar usuário")
	}

	return user, nil
}

func (s *Service) generateSales(userID int, n int) []*domain.Sale {
	catalogue := demoCatalogue()
	quantities := quantityWeights()
	statuses := statusWeights()
	now := s.now().UTC()

	sales := make([]*domain.Sale, 0, n)
	for i := 0; i < n; i++ {
		p := catalogue[s.rand.Intn(len(catalogue))]
		factor := 1 - priceSpread + s.rand.Float64()*2*priceSpread
		daysAgo := s.rand.Intn(demoMaxDaysAgo + 1)

		sales = append(sales, &domain.Sale{
			UserID:      userID,
			ProductName: p.name,
			Amount:      utils.RoundWithTwoDecimalPlace(p.basePrice * factor),
			Quantity:    pick(s.rand.Float64(), quantities),
			Date:        now.AddDate(0, 0, -daysAgo),
			Status:      pick(s.rand.Float64(), statuses),
		})
	}

	return sales
}
