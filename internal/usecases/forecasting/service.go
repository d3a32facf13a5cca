// Package forecasting calcula a previsão de demanda a partir do calendário de feriados
package forecasting

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	// DefaultHorizonDays é a janela usada por picos e insights
	DefaultHorizonDays = 30

	weekBeforeDays = 14
	urgentDays     = 7
	peakWeekDays   = 7
	topProductsMax = 3
)

type Forecaster interface {
	UpcomingHolidays(horizonDays int) []domain.UpcomingHoliday
	DemandForecast(category string, horizonDays int) []domain.ForecastEntry
	PeakSalesPeriods() []domain.PeakPeriod
	CategoryInsights() []domain.CategoryInsight
	Categories() []domain.ProductCategory
	IsKnownCategory(category string) bool
}

// Service não guarda estado além do relógio; pode ser usado por várias goroutines
type Service struct {
	now func() time.Time
}

func NewService() Forecaster {
	return NewServiceWithClock(time.Now)
}

func NewServiceWithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

// UpcomingHolidays retorna os feriados dentro de [hoje, hoje+horizonDays]
func (s *Service) UpcomingHolidays(horizonDays int) []domain.UpcomingHoliday {
	now := s.now().UTC()
	upcoming := make([]domain.UpcomingHoliday, 0)

	for _, h := range holidayCalendar() {
		for _, occ := range occurrences(h.On, now) {
			if !withinHorizon(occ.daysUntil, horizonDays) {
				continue
			}

			upcoming = append(upcoming, domain.UpcomingHoliday{
				Date:       occ.date,
				Name:       h.Name,
				Category:   h.Category,
				DaysUntil:  occ.daysUntil,
				Products:   append([]string{}, h.Products...),
				WeekBefore: occ.daysUntil <= weekBeforeDays,
				Urgent:     occ.daysUntil <= urgentDays,
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].DaysUntil != upcoming[j].DaysUntil {
			return upcoming[i].DaysUntil < upcoming[j].DaysUntil
		}
		return upcoming[i].Date < upcoming[j].Date
	})

	return upcoming
}

// DemandForecast retorna a previsão de crescimento da categoria.
// Categoria desconhecida resulta em lista vazia.
func (s *Service) DemandForecast(category string, horizonDays int) []domain.ForecastEntry {
	forecast := make([]domain.ForecastEntry, 0)

	pattern, ok := findPattern(category)
	if !ok {
		return forecast
	}

	now := s.now().UTC()
	for md, increase := range pattern.Uplifts {
		for _, occ := range occurrences(md, now) {
			if !withinHorizon(occ.daysUntil, horizonDays) {
				continue
			}

			forecast = append(forecast, domain.ForecastEntry{
				Date:           occ.date,
				Holiday:        holidayNameOn(md),
				DaysUntil:      occ.daysUntil,
				DemandIncrease: increase,
				PeakWeek:       occ.daysUntil <= peakWeekDays,
			})
		}
	}

	// Uplifts é um map, a ordenação precisa ser total
	sort.Slice(forecast, func(i, j int) bool {
		if forecast[i].DaysUntil != forecast[j].DaysUntil {
			return forecast[i].DaysUntil < forecast[j].DaysUntil
		}
		return forecast[i].Date < forecast[j].Date
	})

	return forecast
}

// PeakSalesPeriods lista os picos de venda dos próximos 30 dias
func (s *Service) PeakSalesPeriods() []domain.PeakPeriod {
	peaks := make([]domain.PeakPeriod, 0)

	for _, h := range s.UpcomingHolidays(DefaultHorizonDays) {
		if len(h.Products) == 0 {
			continue
		}

		top := h.Products
		if len(top) > topProductsMax {
			top = top[:topProductsMax]
		}

		peaks = append(peaks, domain.PeakPeriod{
			Period:      fmt.Sprintf("%d дней до %s", h.DaysUntil, h.Name),
			Date:        h.Date,
			DaysUntil:   h.DaysUntil,
			Holiday:     h.Name,
			TopProducts: top,
			AlertLevel:  alertLevel(h),
		})
	}

	return peaks
}

// CategoryInsights retorna o próximo pico de cada categoria conhecida
func (s *Service) CategoryInsights() []domain.CategoryInsight {
	insights := make([]domain.CategoryInsight, 0)

	for _, p := range demandPatterns() {
		forecast := s.DemandForecast(p.Slug, DefaultHorizonDays)
		if len(forecast) == 0 {
			continue
		}

		next := forecast[0]
		insights = append(insights, domain.CategoryInsight{
			Category:       p.Slug,
			Title:          p.Title,
			NextHoliday:    next.Holiday,
			DaysUntil:      next.DaysUntil,
			ExpectedGrowth: next.DemandIncrease,
			Recommendation: fmt.Sprintf("Пик через %d дней. Прогноз: +%d%%", next.DaysUntil, next.DemandIncrease),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].DaysUntil < insights[j].DaysUntil
	})

	return insights
}

func (s *Service) Categories() []domain.ProductCategory {
	patterns := demandPatterns()
	categories := make([]domain.ProductCategory, 0, len(patterns))
	for _, p := range patterns {
		categories = append(categories, domain.ProductCategory{Slug: p.Slug, Title: p.Title})
	}
	return categories
}

func (s *Service) IsKnownCategory(category string) bool {
	_, ok := findPattern(category)
	return ok
}

func alertLevel(h domain.UpcomingHoliday) domain.AlertLevel {
	switch {
	case h.Urgent:
		return domain.AlertLevelHigh
	case h.WeekBefore:
		return domain.AlertLevelMedium
	default:
		return domain.AlertLevelLow
	}
}

type occurrence struct {
	date      string
	daysUntil int
}

// occurrences resolve a data no ano corrente e no seguinte
func occurrences(md monthDay, now time.Time) []occurrence {
	result := make([]occurrence, 0, 2)
	for _, year := range []int{now.Year(), now.Year() + 1} {
		date := time.Date(year, time.Month(md.Month), md.Day, 0, 0, 0, 0, time.UTC)
		result = append(result, occurrence{
			date:      date.Format(time.DateOnly),
			daysUntil: DaysUntil(now, date),
		})
	}
	return result
}

func withinHorizon(daysUntil, horizonDays int) bool {
	return daysUntil >= 0 && daysUntil <= horizonDays
}

// DaysUntil conta os dias inteiros entre now e target, arredondando para baixo.
// Um alvo à meia-noite de hoje, visto às 10h, fica em -1.
func DaysUntil(now, target time.Time) int {
	const day = 24 * time.Hour

	diff := target.Sub(now)
	days := int(diff / day)
	if diff < 0 && diff%day != 0 {
		days--
	}
	return days
}
