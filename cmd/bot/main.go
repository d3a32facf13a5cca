package main

import (
	"context"
	"os"
	"os/signal"
	"path"
	"runtime"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/bot"
	"github.com/vfg2006/sales-dashboard-api/internal/bot/apiclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const pollTimeoutSeconds = 60

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	if cfg.Bot.Token == "" {
		logrus.Fatal("BOT_TOKEN não configurado")
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao autenticar no Telegram")
	}
	logrus.Infof("Autorizado como %s", botAPI.Self.UserName)

	// Descarta atualizações acumuladas enquanto o bot estava parado
	if _, err := botAPI.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		logrus.WithError(err).Warn("Erro ao remover webhook")
	}

	client := apiclient.NewClient(cfg.Bot.APIURL, cfg.Bot.HTTPTimeout, authenticating.NewService(cfg.Auth.Secret))
	salesBot := bot.New(botAPI, client, cfg.Bot.WebAppURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := botAPI.GetUpdatesChan(u)

	logrus.Info("Bot iniciado")
	salesBot.Run(ctx, updates)

	botAPI.StopReceivingUpdates()
	logrus.Info("Bot finalizado")
}

// chdirToSource permite encontrar o .env ao rodar com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}
