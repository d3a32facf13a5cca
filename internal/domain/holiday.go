package domain

type HolidayCategory string

const (
	HolidayCategoryMajor      HolidayCategory = "major"
	HolidayCategoryCommercial HolidayCategory = "commercial"
	HolidayCategorySeasonal   HolidayCategory = "seasonal"
)

type AlertLevel string

const (
	AlertLevelHigh   AlertLevel = "high"
	AlertLevelMedium AlertLevel = "medium"
	AlertLevelLow    AlertLevel = "low"
)

// UpcomingHoliday é um feriado resolvido em relação à data atual
type UpcomingHoliday struct {
	Date       string          `json:"date"`
	Name       string          `json:"name"`
	Category   HolidayCategory `json:"category"`
	DaysUntil  int             `json:"days_until"`
	Products   []string        `json:"products"`
	WeekBefore bool            `json:"week_before"`
	Urgent     bool            `json:"urgent"`
}

type ForecastEntry struct {
	Date           string `json:"date"`
	Holiday        string `json:"holiday"`
	DaysUntil      int    `json:"days_until"`
	DemandIncrease int    `json:"demand_increase"`
	PeakWeek       bool   `json:"peak_week"`
}

type PeakPeriod struct {
	Period      string     `json:"period"`
	Date        string     `json:"date"`
	DaysUntil   int        `json:"days_until"`
	Holiday     string     `json:"holiday"`
	TopProducts []string   `json:"top_products"`
	AlertLevel  AlertLevel `json:"alert_level"`
}

type CategoryInsight struct {
	Category       string `json:"category"`
	Title          string `json:"title"`
	NextHoliday    string `json:"next_holiday"`
	DaysUntil      int    `json:"days_until"`
	ExpectedGrowth int    `json:"expected_growth"`
	Recommendation string `json:"recommendation"`
}

type ProductCategory struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type HolidaysResponse struct {
	Holidays []UpcomingHoliday `json:"holidays"`
}

type DemandForecastResponse struct {
	Category string          `json:"category"`
	Forecast []ForecastEntry `json:"forecast"`
}

type PeaksResponse struct {
	Peaks []PeakPeriod `json:"peaks"`
}

type InsightsResponse struct {
	Insights []CategoryInsight `json:"insights"`
}

type CategoriesResponse struct {
	Categories []ProductCategory `json:"categories"`
}
