// Package scheduler contém os jobs agendados da API de métricas.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/gfvieira/metrics-dashboard-api/internal/config"
	"github.com/gfvieira/metrics-dashboard-api/internal/domain"
	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/aggregating"
	"github.com/gfvieira/metrics-dashboard-api/pkg/utils"
)

// CacheWarmerConfig representa a configuração do aquecedor de cache
type CacheWarmerConfig struct {
	CronSchedule string
	Enabled      bool
	RangeStart   string
	RangeEnd     string
}

// CacheWarmerService aquece periodicamente o cache de métricas do intervalo
// padrão do dashboard, para que a primeira visita do dia já encontre
// entradas frescas
type CacheWarmerService struct {
	scheduler       *gocron.Scheduler
	config          CacheWarmerConfig
	aggregator      aggregating.Aggregator
	warmRunning     bool
	warmMutex       sync.Mutex
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastErrorCount  int
}

// NewCacheWarmerService cria uma nova instância do aquecedor de cache
func NewCacheWarmerService(aggregator aggregating.Aggregator, appConfig *config.Config) *CacheWarmerService {
	warmerConfig := CacheWarmerConfig{
		CronSchedule: appConfig.CacheWarmer.CronSchedule,
		Enabled:      appConfig.CacheWarmer.Enabled,
		RangeStart:   appConfig.CacheWarmer.RangeStart,
		RangeEnd:     appConfig.CacheWarmer.RangeEnd,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmerConfig.CronSchedule,
		"enabled":       warmerConfig.Enabled,
		"range_start":   warmerConfig.RangeStart,
		"range_end":     warmerConfig.RangeEnd,
	}).Info("Configuração do aquecedor de cache carregada")

	return &CacheWarmerService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     warmerConfig,
		aggregator: aggregator,
	}
}

// Start inicia o agendador
func (s *CacheWarmerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecedor de cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do aquecedor de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmAll()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o aquecedor de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do aquecedor de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun inicia manualmente um ciclo de aquecimento
func (s *CacheWarmerService) TriggerManualRun() {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.warmMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual de cache")
	go s.warmAll()
}

// warmAll percorre todos os endpoints de métricas com o intervalo padrão.
// Cada chamada passa pela mesma máquina de estados das requisições normais,
// então um miss resulta em busca fresca e escrita no cache.
func (s *CacheWarmerService) warmAll() {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("Aquecimento de cache já em andamento, ignorando")
		return
	}
	s.warmRunning = true
	s.warmMutex.Unlock()

	defer func() {
		s.warmMutex.Lock()
		s.warmRunning = false
		s.warmMutex.Unlock()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}

	startTime := time.Now()
	s.lastRunID = runID
	s.lastStartedAt = startTime

	rng := domain.DateRange{
		Start: s.config.RangeStart,
		End:   s.config.RangeEnd,
	}

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"start":  rng.Start,
		"end":    rng.End,
	}).Info("Iniciando ciclo de aquecimento de cache")

	ctx := context.Background()
	errorCount := 0

	warmups := []struct {
		name string
		warm func() error
	}{
		{"ga_somara", func() error {
			_, _, err := s.aggregator.GetAnalyticsBundle(ctx, domain.ProductSomara, rng)
			return err
		}},
		{"ga_ulink", func() error {
			_, _, err := s.aggregator.GetAnalyticsBundle(ctx, domain.ProductULink, rng)
			return err
		}},
		{"ga_pushfire", func() error {
			_, _, err := s.aggregator.GetAnalyticsBundle(ctx, domain.ProductPushFire, rng)
			return err
		}},
		{"ulink_business", func() error {
			_, _, err := s.aggregator.GetULinkBusinessMetrics(ctx, rng)
			return err
		}},
		{"ulink_health", func() error {
			_, _, err := s.aggregator.GetULinkClientHealth(ctx, rng)
			return err
		}},
		{"ulink_website", func() error {
			_, _, err := s.aggregator.GetULinkWebsiteMetrics(ctx, rng)
			return err
		}},
		{"ulink_dashboard_users", func() error {
			_, _, err := s.aggregator.GetULinkDashboardMetrics(ctx, rng)
			return err
		}},
		{"somara_platform", func() error {
			_, _, err := s.aggregator.GetSomaraMetrics(ctx, rng)
			return err
		}},
		{"pushfire_platform", func() error {
			_, _, err := s.aggregator.GetPushFireMetrics(ctx, rng)
			return err
		}},
	}

	for _, warmup := range warmups {
		if err := warmup.warm(); err != nil {
			errorCount++
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"target": warmup.name,
				"error":  err.Error(),
			}).Error("Erro ao aquecer entrada de cache")
		}
	}

	duration := time.Since(startTime)
	s.lastCompletedAt = time.Now()
	s.lastErrorCount = errorCount

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": duration.String(),
		"targets":  len(warmups),
		"errors":   errorCount,
	}).Info("Ciclo de aquecimento de cache concluído")
}

// GetStatus retorna o status atual do aquecedor
func (s *CacheWarmerService) GetStatus() map[string]any {
	s.warmMutex.Lock()
	running := s.warmRunning
	s.warmMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"range_start":       s.config.RangeStart,
		"range_end":         s.config.RangeEnd,
		"running":           running,
		"last_run_id":       s.lastRunID,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error_count":  s.lastErrorCount,
	}
}
