package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vfg2006/sales-dashboard-api/internal/bot/apiclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil || msg.From == nil {
		return
	}

	chatID := msg.Chat.ID

	if !msg.IsCommand() {
		b.sendText(ctx, chatID, textUnknownCommand)
		return
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_telegram_id": msg.From.ID,
		"command":          msg.Command(),
	}).Debug("Comando recebido")

	switch msg.Command() {
	case "start":
		b.sendWithMenu(ctx, chatID, welcomeText(msg.From.FirstName), mainMenu(b.webAppURL))

	case "help":
		b.sendWithMenu(ctx, chatID, textHelp, mainMenu(b.webAppURL))

	case "dashboard":
		b.showDashboard(ctx, chatID, msg.From.ID)

	case "report":
		b.sendWithMenu(ctx, chatID, textReportMenu, reportMenu())

	case "holidays":
		b.showHolidays(ctx, chatID)

	case "demo":
		b.createDemo(ctx, chatID, msg.From)

	default:
		b.sendText(ctx, chatID, textUnknownCommand)
	}
}

func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.Message.Chat == nil || query.From == nil {
		b.answerCallback(ctx, query.ID, "")
		return
	}

	chatID := query.Message.Chat.ID
	data := query.Data

	log.ForContext(ctx).WithFields(log.Fields{
		"user_telegram_id": query.From.ID,
		"callback":         data,
	}).Debug("Callback recebido")

	// demo_mode responde o callback só depois de saber o resultado
	if data == CallbackDemoMode {
		answer := ""
		if b.createDemo(ctx, chatID, query.From) {
			answer = textDemoCreated
		}
		b.answerCallback(ctx, query.ID, answer)
		return
	}

	b.answerCallback(ctx, query.ID, "")

	switch {
	case data == CallbackReportPDF:
		b.sendReport(ctx, chatID, query.From.ID, domain.ReportFormatPDF)

	case data == CallbackReportExcel:
		b.sendReport(ctx, chatID, query.From.ID, domain.ReportFormatExcel)

	case data == CallbackOpenDashboard:
		b.showDashboard(ctx, chatID, query.From.ID)

	case data == CallbackBackMain:
		b.editMenu(ctx, query.Message, textMainMenu, mainMenu(b.webAppURL))

	case data == CallbackChoosePeriod:
		b.editMenu(ctx, query.Message, textPeriodMenu, periodMenu())

	case strings.HasPrefix(data, CallbackPeriodPrefix):
		name := periodName(strings.TrimPrefix(data, CallbackPeriodPrefix))
		b.sendWithMenu(ctx, chatID, fmt.Sprintf("Выбран период: %s\n\n%s", name, textReportMenu), reportMenu())

	default:
		log.ForContext(ctx).Warnf("Callback desconhecido: %s", data)
	}
}

// createDemo devolve true quando a API gerou os dados
func (b *Bot) createDemo(ctx context.Context, chatID int64, from *tgbotapi.User) bool {
	resp, err := b.api.CreateDemo(ctx, from.ID, from.UserName, from.FirstName)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_telegram_id", from.ID).Error("Erro ao criar dados de demonstração")
		b.sendText(ctx, chatID, errorText(err))
		return false
	}

	if !resp.Success {
		b.sendText(ctx, chatID, textDemoFailed)
		return false
	}

	b.sendText(ctx, chatID, demoCreatedText(resp.Count))
	return true
}

func (b *Bot) showDashboard(ctx context.Context, chatID, telegramID int64) {
	stats, err := b.api.GetStats(ctx, telegramID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			b.sendWithMenu(ctx, chatID, textNoData, mainMenu(b.webAppURL))
			return
		}

		log.ForContext(ctx).WithError(err).WithField("user_telegram_id", telegramID).Error("Erro ao buscar estatísticas")
		b.sendText(ctx, chatID, errorText(err))
		return
	}

	b.sendWithMenu(ctx, chatID, statsText(stats), dashboardMenu(b.webAppURL))
}

func (b *Bot) showHolidays(ctx context.Context, chatID int64) {
	resp, err := b.api.GetUpcomingHolidays(ctx, holidaysHorizonDays)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar feriados")
		b.sendText(ctx, chatID, errorText(err))
		return
	}

	b.sendWithMenu(ctx, chatID, holidaysText(resp.Holidays), mainMenu(b.webAppURL))
}

// sendReport repassa o arquivo da API direto da memória, sem arquivo temporário
func (b *Bot) sendReport(ctx context.Context, chatID, telegramID int64, format domain.ReportFormat) {
	b.sendText(ctx, chatID, reportGeneratingText(format))

	report, err := b.api.DownloadReport(ctx, telegramID, format)
	if err != nil {
		if apiclient.IsNotFound(err) {
			b.sendText(ctx, chatID, textReportNoData)
			return
		}

		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"user_telegram_id": telegramID,
			"format":           format,
		}).Error("Erro ao baixar relatório")
		b.sendText(ctx, chatID, errorText(err))
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  report.Filename,
		Bytes: report.Content,
	})
	doc.Caption = reportCaption(format)
	b.send(ctx, doc)
}

func (b *Bot) editMenu(ctx context.Context, msg *tgbotapi.Message, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(msg.Chat.ID, msg.MessageID, text, markup)
	b.send(ctx, edit)
}
