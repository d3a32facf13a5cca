package bot

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	textHelp = "📖 Справка по командам:\n\n" +
		"/start - Главное меню\n" +
		"/dashboard - Открыть дашборд\n" +
		"/report - Меню генерации отчетов\n" +
		"/holidays - Ближайшие праздники\n" +
		"/demo - Запустить демо-режим\n" +
		"/help - Показать эту справку\n\n" +
		"💡 Используйте кнопки меню для быстрой навигации!"

	textMainMenu       = "Главное меню:"
	textReportMenu     = "📈 Выберите тип отчета:"
	textPeriodMenu     = "📅 Выберите период:"
	textUnknownCommand = "Я не понимаю эту команду. Используйте /help."
	textNoData         = "📭 У вас пока нет данных.\n\nЗапустите демо-режим, чтобы сгенерировать тестовые продажи!"
	textReportNoData   = "❌ Ошибка генерации отчета. Убедитесь, что у вас есть данные."
	textDemoFailed     = "❌ Ошибка создания демо-данных"
	textDemoCreated    = "Демо-данные созданы!"
	textNoHolidays     = "🎉 В ближайшие 30 дней праздников нет."

	holidaysHorizonDays = 30
)

type period struct {
	key    string
	button string
	name   string
}

var periods = []period{
	{key: "today", button: "Сегодня", name: "сегодня"},
	{key: "yesterday", button: "Вчера", name: "вчера"},
	{key: "week", button: "Неделя", name: "неделю"},
	{key: "month", button: "Месяц", name: "месяц"},
}

func periodName(key string) string {
	for _, p := range periods {
		if p.key == key {
			return p.name
		}
	}
	return key
}

func welcomeText(firstName string) string {
	return fmt.Sprintf("👋 Привет, %s!\n\n"+
		"Я бот для визуализации данных и создания отчетов.\n\n"+
		"🎯 Попробуйте демо-режим, чтобы увидеть все возможности!\n\n"+
		"Выберите действие:", firstName)
}

func demoCreatedText(count int) string {
	return fmt.Sprintf("🎯 Демо-режим активирован!\n\n"+
		"✅ Создано %d тестовых продаж за последние 30 дней\n"+
		"✅ Сгенерированы случайные товары и суммы\n"+
		"✅ Добавлены различные статусы\n\n"+
		"Теперь вы можете открыть дашборд или создать отчет!", count)
}

func statsText(stats *domain.SalesStats) string {
	var b strings.Builder
	b.WriteString("📊 Ваша статистика:\n\n")
	fmt.Fprintf(&b, "💰 Общая выручка: %s\n", utils.FormatMoney(stats.TotalAmount))
	fmt.Fprintf(&b, "🧾 Всего продаж: %d\n", stats.TotalSales)
	fmt.Fprintf(&b, "📈 Средний чек: %s\n", utils.FormatMoney(stats.AverageCheck))
	fmt.Fprintf(&b, "✅ Завершено: %d\n", stats.CompletedSales)
	fmt.Fprintf(&b, "⏳ В ожидании: %d\n", stats.PendingSales)
	fmt.Fprintf(&b, "❌ Отменено: %d\n", stats.CancelledSales)
	fmt.Fprintf(&b, "🎯 Конверсия: %s", utils.FormatPercent(stats.ConversionRate))
	return b.String()
}

func holidaysText(holidays []domain.UpcomingHoliday) string {
	if len(holidays) == 0 {
		return textNoHolidays
	}

	var b strings.Builder
	b.WriteString("🎉 Ближайшие праздники:\n")
	for _, h := range holidays {
		marker := "•"
		if h.Urgent {
			marker = "🔥"
		}
		fmt.Fprintf(&b, "\n%s %s: через %d дн.", marker, h.Name, h.DaysUntil)
		if len(h.Products) > 0 {
			fmt.Fprintf(&b, "\n   Спрос: %s", strings.Join(h.Products, ", "))
		}
	}
	return b.String()
}

func reportGeneratingText(format domain.ReportFormat) string {
	if format == domain.ReportFormatExcel {
		return "📊 Генерирую Excel отчет, подождите..."
	}
	return "📄 Генерирую PDF отчет, подождите..."
}

func reportCaption(format domain.ReportFormat) string {
	if format == domain.ReportFormatExcel {
		return "📊 Ваш Excel отчет готов!"
	}
	return "📄 Ваш PDF отчет готов!"
}

func errorText(err error) string {
	return "❌ Ошибка: " + err.Error()
}
