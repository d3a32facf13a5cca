// Package bot é o front end no Telegram: comandos e botões que chamam a API de vendas
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vfg2006/sales-dashboard-api/internal/bot/apiclient"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Sender é o subconjunto do *tgbotapi.BotAPI usado pelos handlers
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	sender    Sender
	api       apiclient.Client
	webAppURL string
}

func New(sender Sender, api apiclient.Client, webAppURL string) *Bot {
	return &Bot{
		sender:    sender,
		api:       api,
		webAppURL: webAppURL,
	}
}

// Run processa as atualizações em sequência até o contexto ser cancelado ou o canal fechar
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, _ = log.WithCorrelationID(ctx)

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func (b *Bot) send(ctx context.Context, c tgbotapi.Chattable) {
	if _, err := b.sender.Send(c); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao enviar mensagem")
	}
}

func (b *Bot) sendText(ctx context.Context, chatID int64, text string) {
	b.send(ctx, tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendWithMenu(ctx context.Context, chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	b.send(ctx, msg)
}

func (b *Bot) answerCallback(ctx context.Context, queryID, text string) {
	if _, err := b.sender.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao responder callback")
	}
}
