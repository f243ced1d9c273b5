package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/valuation-api/infrastructure/repository"
	"github.com/vfg2006/valuation-api/internal/config"
	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/internal/usecases/valuating"
	"github.com/vfg2006/valuation-api/pkg/metrics"
	"github.com/vfg2006/valuation-api/pkg/utils"
)

// ErrSnapshotAlreadyRunning é retornado quando já existe uma geração de histórico em andamento
var ErrSnapshotAlreadyRunning = errors.New("geração de histórico de valuation já em andamento")

// ValuationSnapshotConfig representa a configuração do agendador de histórico de valuation
type ValuationSnapshotConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SnapshotEnabled   bool
}

// SnapshotResult resume uma execução do job de histórico
type SnapshotResult struct {
	Period    string `json:"period"`
	Companies int    `json:"companies"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// ValuationSnapshotService grava mensalmente o valuation de cada empresa no histórico
type ValuationSnapshotService struct {
	scheduler   *gocron.Scheduler
	config      ValuationSnapshotConfig
	companyRepo repository.CompanyRepository
	valuator    valuating.Valuator
	now         func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *SnapshotResult
}

func NewValuationSnapshotService(
	companyRepo repository.CompanyRepository,
	valuator valuating.Valuator,
	appConfig *config.Config,
) *ValuationSnapshotService {
	snapshotConfig := ValuationSnapshotConfig{
		CronSchedule:      appConfig.ValuationSnapshot.CronSchedule,
		MaxConcurrentJobs: appConfig.ValuationSnapshot.MaxConcurrentJobs,
		SnapshotEnabled:   appConfig.ValuationSnapshot.Enabled,
	}
	if snapshotConfig.MaxConcurrentJobs < 1 {
		snapshotConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       snapshotConfig.CronSchedule,
		"max_concurrent_jobs": snapshotConfig.MaxConcurrentJobs,
		"snapshot_enabled":    snapshotConfig.SnapshotEnabled,
	}).Info("Configuração do agendador de histórico de valuation carregada")

	return &ValuationSnapshotService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      snapshotConfig,
		companyRepo: companyRepo,
		valuator:    valuator,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *ValuationSnapshotService) Start(ctx context.Context) error {
	if !s.config.SnapshotEnabled {
		logrus.Info("Histórico automático de valuation desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de histórico de valuation")

	// O job roda no início do mês e fecha o período anterior
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		period := utils.PreviousPeriod(s.now())
		if _, err := s.run(context.Background(), period); err != nil && !errors.Is(err, ErrSnapshotAlreadyRunning) {
			logrus.WithError(err).Error("Erro na geração agendada do histórico de valuation")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar histórico de valuation: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de histórico de valuation")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia manualmente a geração do histórico. Período vazio usa o mês corrente.
func (s *ValuationSnapshotService) TriggerManualSync(period string) error {
	if period == "" {
		period = utils.FormatPeriod(s.now())
	}
	if _, err := utils.ParsePeriod(period); err != nil {
		return fmt.Errorf("período %q fora do formato mm-yyyy: %w", period, err)
	}

	if s.IsRunning() {
		logrus.Info("Histórico de valuation já em andamento, ignorando solicitação manual")
		return ErrSnapshotAlreadyRunning
	}

	logrus.WithField("period", period).Info("Iniciando geração manual do histórico de valuation")
	go func() {
		if _, err := s.run(context.Background(), period); err != nil && !errors.Is(err, ErrSnapshotAlreadyRunning) {
			logrus.WithError(err).Error("Erro na geração manual do histórico de valuation")
		}
	}()

	return nil
}

// IsRunning indica se há uma execução em andamento
func (s *ValuationSnapshotService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// run grava o snapshot do período para todas as empresas
func (s *ValuationSnapshotService) run(ctx context.Context, period string) (*SnapshotResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Histórico de valuation já em andamento, ignorando")
		return nil, ErrSnapshotAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	metrics.SnapshotJobsRunning.Inc()
	defer func() {
		metrics.SnapshotJobsRunning.Dec()
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.WithField("period", period).Info("Iniciando histórico de valuation para todas as empresas")

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar empresas para o histórico de valuation: %w", err)
	}

	result := s.processCompanies(ctx, companies, period)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"period":    result.Period,
		"companies": result.Companies,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("Histórico de valuation concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
	s.syncMutex.Unlock()

	return result, nil
}

// processCompanies calcula os snapshots em paralelo, limitado por MaxConcurrentJobs
func (s *ValuationSnapshotService) processCompanies(ctx context.Context, companies []*domain.Company, period string) *SnapshotResult {
	result := &SnapshotResult{Period: period, Companies: len(companies)}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, company := range companies {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(c *domain.Company) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			_, err := s.valuator.TakeSnapshot(ctx, c.ID, period)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				logrus.WithFields(logrus.Fields{
					"company_id": c.ID,
					"period":     period,
					"error":      err.Error(),
				}).Error("Erro ao gravar histórico de valuation da empresa")
				return
			}
			result.Succeeded++
		}(company)
	}

	wg.Wait()
	return result
}

// GetStatus retorna o status atual do agendador
func (s *ValuationSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"snapshot_enabled":        s.config.SnapshotEnabled,
		"snapshot_cron":           s.config.CronSchedule,
		"snapshot_max_concurrent": s.config.MaxConcurrentJobs,
		"snapshot_running":        s.syncRunning,
		"last_sync_started_at":    s.lastSyncStartedAt,
		"last_sync_completed_at":  s.lastSyncCompletedAt,
		"last_result":             s.lastResult,
	}
}
