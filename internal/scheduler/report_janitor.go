// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

type ReportJanitorConfig struct {
	CronSchedule string
	MaxAge       time.Duration
	Enabled      bool
	SpoolDir     string
}

// ReportJanitorService remove do spool os relatórios esquecidos por requisições interrompidas
type ReportJanitorService struct {
	scheduler        *gocron.Scheduler
	config           ReportJanitorConfig
	now              func() time.Time
	runMutex         sync.Mutex
	running          bool
	lastRunStartedAt time.Time
	lastRunRemoved   int
}

func NewReportJanitorService(cfg *config.Config) *ReportJanitorService {
	janitorConfig := ReportJanitorConfig{
		CronSchedule: cfg.ReportJanitor.CronSchedule,
		MaxAge:       cfg.ReportJanitor.MaxAge,
		Enabled:      cfg.ReportJanitor.Enabled,
		SpoolDir:     cfg.Reports.SpoolDir,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": janitorConfig.CronSchedule,
		"max_age":       janitorConfig.MaxAge.String(),
		"spool_dir":     janitorConfig.SpoolDir,
	}).Info("Configuração da limpeza de relatórios carregada")

	return &ReportJanitorService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    janitorConfig,
		now:       time.Now,
	}
}

func (s *ReportJanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de relatórios desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando limpeza de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma limpeza imediata e retorna quantos arquivos foram removidos
func (s *ReportJanitorService) RunNow() (int, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Warn("Limpeza de relatórios já está em execução")
		return 0, nil
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	s.runMutex.Unlock()

	removed, err := s.sweep()

	s.runMutex.Lock()
	s.running = false
	s.lastRunRemoved = removed
	s.runMutex.Unlock()

	return removed, err
}

func (s *ReportJanitorService) sweep() (int, error) {
	entries, err := os.ReadDir(s.config.SpoolDir)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar diretório de spool: %w", err)
	}

	cutoff := s.now().Add(-s.config.MaxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), reporting.SpoolPrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.config.SpoolDir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", path).Warn("Não foi possível remover relatório antigo")
			continue
		}
		removed++
	}

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Relatórios antigos removidos do spool")
	}

	return removed, nil
}

// GetStatus retorna o status atual do agendador
func (s *ReportJanitorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":             s.config.Enabled,
		"cron":                s.config.CronSchedule,
		"max_age":             s.config.MaxAge.String(),
		"running":             s.running,
		"last_run_started_at": s.lastRunStartedAt,
		"last_run_removed":    s.lastRunRemoved,
	}
}
