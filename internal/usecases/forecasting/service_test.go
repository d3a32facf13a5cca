package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func fixedClock(year int, month time.Month, day, hour int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	}
}

func TestService_UpcomingHolidays(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	holidays := service.UpcomingHolidays(30)

	require.Len(t, holidays, 3)
	assert.Equal(t, "2025-02-14", holidays[0].Date)
	assert.Equal(t, 4, holidays[0].DaysUntil)
	assert.True(t, holidays[0].Urgent)
	assert.True(t, holidays[0].WeekBefore)

	assert.Equal(t, "2025-02-23", holidays[1].Date)
	assert.Equal(t, 13, holidays[1].DaysUntil)
	assert.False(t, holidays[1].Urgent)
	assert.True(t, holidays[1].WeekBefore)

	assert.Equal(t, "2025-03-08", holidays[2].Date)
	assert.Equal(t, 26, holidays[2].DaysUntil)
	assert.False(t, holidays[2].WeekBefore)

	for i, h := range holidays {
		if h.Urgent {
			assert.True(t, h.WeekBefore, "urgent implica week_before")
		}
		if i > 0 {
			assert.LessOrEqual(t, holidays[i-1].DaysUntil, h.DaysUntil)
		}
	}
}

func TestService_UpcomingHolidays_Horizon(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	tests := []struct {
		name    string
		horizon int
		want    int
	}{
		{name: "horizonte negativo", horizon: -5, want: 0},
		{name: "horizonte zero sem feriado hoje", horizon: 0, want: 0},
		{name: "feriado exatamente no limite é incluído", horizon: 4, want: 1},
		{name: "um dia antes do limite", horizon: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holidays := service.UpcomingHolidays(tt.horizon)
			assert.NotNil(t, holidays)
			assert.Len(t, holidays, tt.want)
		})
	}
}

func TestService_UpcomingHolidays_TruncatesPartialDays(t *testing.T) {
	// 3 dias e 12 horas até o dia 14
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 12))
	holidays := service.UpcomingHolidays(30)
	require.NotEmpty(t, holidays)
	assert.Equal(t, 3, holidays[0].DaysUntil)

	// no próprio dia, depois da meia-noite, o feriado já passou
	service = NewServiceWithClock(fixedClock(2025, time.February, 14, 10))
	holidays = service.UpcomingHolidays(30)
	require.NotEmpty(t, holidays)
	assert.NotEqual(t, "2025-02-14", holidays[0].Date)

	// exatamente à meia-noite conta como zero dias
	service = NewServiceWithClock(fixedClock(2025, time.February, 14, 0))
	holidays = service.UpcomingHolidays(0)
	require.Len(t, holidays, 1)
	assert.Equal(t, 0, holidays[0].DaysUntil)
}

func TestService_UpcomingHolidays_WrapsYear(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.December, 20, 0))

	holidays := service.UpcomingHolidays(30)

	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	assert.Equal(t, []string{"2025-12-31", "2026-01-01", "2026-01-07"}, dates)
}

func TestService_DemandForecast(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	forecast := service.DemandForecast("flowers", 30)

	require.Len(t, forecast, 2)
	assert.Equal(t, domain.ForecastEntry{
		Date:           "2025-02-14",
		Holiday:        "День святого Валентина",
		DaysUntil:      4,
		DemandIncrease: 280,
		PeakWeek:       true,
	}, forecast[0])
	assert.Equal(t, "2025-03-08", forecast[1].Date)
	assert.Equal(t, 350, forecast[1].DemandIncrease)
	assert.False(t, forecast[1].PeakWeek)

	assert.Equal(t, forecast, service.DemandForecast("цветы", 30), "título russo resolve a mesma categoria")
}

func TestService_DemandForecast_EmptyResults(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	unknown := service.DemandForecast("unicorns", 30)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)

	assert.Empty(t, service.DemandForecast("flowers", -1))
	assert.Empty(t, service.DemandForecast("school-supplies", 30))
}

func TestService_PeakSalesPeriods(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	peaks := service.PeakSalesPeriods()

	require.Len(t, peaks, 3)
	assert.Equal(t, "4 дней до День святого Валентина", peaks[0].Period)
	assert.Equal(t, domain.AlertLevelHigh, peaks[0].AlertLevel)
	assert.Equal(t, domain.AlertLevelMedium, peaks[1].AlertLevel)
	assert.Equal(t, domain.AlertLevelLow, peaks[2].AlertLevel)
	assert.Equal(t, []string{"цветы", "духи", "украшения"}, peaks[2].TopProducts)
}

func TestService_PeakSalesPeriods_SkipsHolidaysWithoutProducts(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.October, 20, 0))

	var upcomingNames []string
	for _, h := range service.UpcomingHolidays(30) {
		upcomingNames = append(upcomingNames, h.Name)
	}
	require.Contains(t, upcomingNames, "День народного единства")

	for _, p := range service.PeakSalesPeriods() {
		assert.NotEqual(t, "День народного единства", p.Holiday)
	}
}

func TestService_CategoryInsights(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	insights := service.CategoryInsights()

	require.Len(t, insights, 4)
	assert.Equal(t, "flowers", insights[0].Category)
	assert.Equal(t, 4, insights[0].DaysUntil)
	assert.Equal(t, 280, insights[0].ExpectedGrowth)
	assert.Equal(t, "Пик через 4 дней. Прогноз: +280%", insights[0].Recommendation)
	assert.Equal(t, "gifts", insights[1].Category)
	assert.Equal(t, "alcohol", insights[2].Category)
	assert.Equal(t, "souvenirs", insights[3].Category)
}

func TestService_Categories(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	categories := service.Categories()

	assert.Len(t, categories, 6)
	assert.True(t, service.IsKnownCategory("school-supplies"))
	assert.True(t, service.IsKnownCategory("шампанское"))
	assert.False(t, service.IsKnownCategory("unicorns"))
}

func TestService_TablesAreNotShared(t *testing.T) {
	service := NewServiceWithClock(fixedClock(2025, time.February, 10, 0))

	first := service.UpcomingHolidays(30)
	first[0].Products[0] = "mutated"

	second := service.UpcomingHolidays(30)
	assert.Equal(t, "цветы", second[0].Products[0])
}

func TestDaysUntil(t *testing.T) {
	base := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(base, base))
	assert.Equal(t, 1, DaysUntil(base, base.Add(36*time.Hour)))
	assert.Equal(t, -1, DaysUntil(base, base.Add(-time.Hour)))
	assert.Equal(t, -2, DaysUntil(base, base.Add(-25*time.Hour)))
}
