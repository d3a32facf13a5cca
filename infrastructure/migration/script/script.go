package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/seeding"
)

const scriptTimeout = time.Minute

func main() {
	seed := flag.Bool("seed", true, "cria vendas de demonstração para o usuário informado")
	telegramID := flag.Int64("telegram-id", 123456789, "chat id do usuário de demonstração")
	username := flag.String("username", "test_user", "username do usuário de demonstração")
	firstName := flag.String("first-name", "Test", "primeiro nome do usuário de demonstração")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := postgres.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas")
	}
	logrus.Infof("Tabelas criadas em %v", time.Since(startTime))

	if !*seed {
		return
	}

	seeder := seeding.NewService(repository.NewUserRepository(conn), repository.NewSaleRepository(conn))

	count, err := seeder.CreateDemoData(ctx, *telegramID, username, firstName)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar dados de demonstração")
	}

	logrus.Infof("Criadas %d vendas de demonstração para o usuário %d", count, *telegramID)
}
