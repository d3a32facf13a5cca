package forecasting

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// monthDay identifica uma data que se repete todo ano
type monthDay struct {
	Month int
	Day   int
}

type holiday struct {
	On       monthDay
	Name     string
	Category domain.HolidayCategory
	Products []string
}

type demandPattern struct {
	Slug    string
	Title   string
	Uplifts map[monthDay]int
}

// holidayCalendar devolve uma cópia nova da tabela de feriados a cada chamada
func holidayCalendar() []holiday {
	return []holiday{
		{On: monthDay{1, 1}, Name: "Новый год", Category: domain.HolidayCategoryMajor, Products: []string{"шампанское", "фейерверки", "подарки"}},
		{On: monthDay{1, 7}, Name: "Рождество", Category: domain.HolidayCategoryMajor, Products: []string{"сладости", "подарки детям"}},
		{On: monthDay{2, 14}, Name: "День святого Валентина", Category: domain.HolidayCategoryCommercial, Products: []string{"цветы", "конфеты", "подарки"}},
		{On: monthDay{2, 23}, Name: "День защитника Отечества", Category: domain.HolidayCategoryMajor, Products: []string{"алкоголь", "мужские подарки", "сувениры"}},
		{On: monthDay{3, 8}, Name: "Международный женский день", Category: domain.HolidayCategoryMajor, Products: []string{"цветы", "духи", "украшения", "косметика"}},
		{On: monthDay{5, 1}, Name: "Праздник Весны и Труда", Category: domain.HolidayCategoryMajor, Products: []string{"шашлык", "уголь", "пикник"}},
		{On: monthDay{5, 9}, Name: "День Победы", Category: domain.HolidayCategoryMajor, Products: []string{"цветы", "георгиевская лента"}},
		{On: monthDay{6, 12}, Name: "День России", Category: domain.HolidayCategoryMajor, Products: []string{"флаги", "сувениры"}},
		{On: monthDay{9, 1}, Name: "День знаний", Category: domain.HolidayCategorySeasonal, Products: []string{"школьные принадлежности", "цветы", "рюкзаки"}},
		{On: monthDay{11, 4}, Name: "День народного единства", Category: domain.HolidayCategoryMajor, Products: []string{}},
		{On: monthDay{12, 31}, Name: "Новый год (подготовка)", Category: domain.HolidayCategoryMajor, Products: []string{"елки", "украшения", "подарки", "шампанское"}},
	}
}

// demandPatterns devolve o crescimento médio de demanda (%) por categoria
func demandPatterns() []demandPattern {
	return []demandPattern{
		{Slug: "flowers", Title: "цветы", Uplifts: map[monthDay]int{
			{2, 14}: 280,
			{3, 8}:  350,
			{9, 1}:  200,
		}},
		{Slug: "alcohol", Title: "алкоголь", Uplifts: map[monthDay]int{
			{2, 23}:  180,
			{12, 31}: 300,
			{1, 1}:   150,
		}},
		{Slug: "gifts", Title: "подарки", Uplifts: map[monthDay]int{
			{12, 31}: 400,
			{3, 8}:   250,
			{2, 14}:  200,
			{2, 23}:  150,
		}},
		{Slug: "school-supplies", Title: "школьные принадлежности", Uplifts: map[monthDay]int{
			{9, 1}: 500,
		}},
		{Slug: "champagne", Title: "шампанское", Uplifts: map[monthDay]int{
			{12, 31}: 450,
			{1, 1}:   200,
		}},
		{Slug: "souvenirs", Title: "сувениры", Uplifts: map[monthDay]int{
			{2, 23}: 180,
			{3, 8}:  150,
		}},
	}
}

func holidayNameOn(md monthDay) string {
	for _, h := range holidayCalendar() {
		if h.On == md {
			return h.Name
		}
	}
	return ""
}

// findPattern aceita o slug ou o título russo da categoria
func findPattern(category string) (demandPattern, bool) {
	for _, p := range demandPatterns() {
		if p.Slug == category || p.Title == category {
			return p, true
		}
	}
	return demandPattern{}, false
}
