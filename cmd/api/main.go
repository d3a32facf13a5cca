package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer/excel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer/pdf"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := postgres.Migrate(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas")
	}

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)

	if err := reporting.EnsureSpoolDir(cfg.Reports.SpoolDir); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o diretório de relatórios")
	}

	reportJanitor := scheduler.NewReportJanitorService(cfg)
	if err := reportJanitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a limpeza agendada de relatórios")
	} else {
		logrus.Info("Limpeza agendada de relatórios iniciada com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Analyzer: analyzing.NewService(userRepo, saleRepo),
		Seeder:   seeding.NewService(userRepo, saleRepo),
		Reporter: reporting.NewService(
			userRepo,
			saleRepo,
			pdf.NewRenderer(cfg.Reports.FontPath),
			excel.NewRenderer(),
			cfg.Reports.SpoolDir,
		),
		Forecaster:    forecasting.NewService(),
		Authenticator: authenticating.NewService(cfg.Auth.Secret),
		ReportJanitor: reportJanitor,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
