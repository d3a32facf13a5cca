package bot

import (
	"net/url"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackDemoMode      = "demo_mode"
	CallbackReportPDF     = "report_pdf"
	CallbackReportExcel   = "report_excel"
	CallbackOpenDashboard = "open_dashboard"
	CallbackBackMain      = "back_main"
	CallbackChoosePeriod  = "choose_period"
	CallbackPeriodPrefix  = "period_"
)

func mainMenu(webAppURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📊 Открыть дашборд", webAppURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🎉 Праздники → Спрос", holidaysURL(webAppURL)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 PDF отчет", CallbackReportPDF),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Excel отчет", CallbackReportExcel),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Демо-режим", CallbackDemoMode),
		),
	)
}

func reportMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 PDF отчет", CallbackReportPDF),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Excel отчет", CallbackReportExcel),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Выбрать период", CallbackChoosePeriod),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", CallbackBackMain),
		),
	)
}

func periodMenu() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(periods)+1)
	for _, p := range periods {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.button, CallbackPeriodPrefix+p.key),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", CallbackBackMain),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func dashboardMenu(webAppURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📊 Открыть дашборд", webAppURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", CallbackBackMain),
		),
	)
}

// holidaysURL acrescenta view=holidays preservando a query existente
func holidaysURL(webAppURL string) string {
	u, err := url.Parse(webAppURL)
	if err != nil {
		return webAppURL + "?view=holidays"
	}

	query := u.Query()
	query.Set("view", "holidays")
	u.RawQuery = query.Encode()

	return u.String()
}
