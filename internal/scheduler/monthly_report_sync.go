package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

// MonthlyReporter gera o relatório do mês que contém a data informada
type MonthlyReporter interface {
	GenerateReportForMonth(ctx context.Context, userID string, date time.Time) (*domain.MonthlyReport, error)
}

// MonthlyReportSyncConfig representa a configuração do agendador de relatórios mensais
type MonthlyReportSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// MonthlyReportSyncService gera o relatório do mês anterior para todos os usuários
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	userRepo            repository.UserRepository
	reporter            MonthlyReporter
	clock               utils.Clock
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncReports     int
	lastSyncFailures    int
}

func NewMonthlyReportSyncService(
	userRepo repository.UserRepository,
	reporter MonthlyReporter,
	appConfig *config.Config,
) *MonthlyReportSyncService {
	syncConfig := MonthlyReportSyncConfig{
		CronSchedule:        appConfig.MonthlyReportSync.CronSchedule,
		RequestDelaySeconds: appConfig.MonthlyReportSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MonthlyReportSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MonthlyReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios mensais carregada")

	return &MonthlyReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		userRepo:  userRepo,
		reporter:  reporter,
		clock:     utils.SystemClock,
	}
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração mensal de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração mensal de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReports gera o relatório do mês anterior; meses já gerados são mantidos
func (s *MonthlyReportSyncService) syncMonthlyReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração mensal de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.clock()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para geração mensal de relatórios")
		return
	}

	if len(users) == 0 {
		logrus.Info("Nenhum usuário encontrado para geração mensal de relatórios")
		return
	}

	start, _ := domain.MonthBounds(s.clock())
	previousMonth := start.AddDate(0, -1, 0)

	logrus.WithFields(logrus.Fields{
		"month": domain.ReportMonth(previousMonth),
		"users": len(users),
	}).Info("Iniciando geração mensal de relatórios")

	generated, failures := s.processMonthlyReports(ctx, users, previousMonth)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.clock()
	s.lastSyncReports = generated
	s.lastSyncFailures = failures
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
		"reports":  generated,
		"failures": failures,
	}).Info("Geração mensal de relatórios concluída")
}

func (s *MonthlyReportSyncService) processMonthlyReports(ctx context.Context, users []*domain.User, month time.Time) (int, int) {
	maxJobs := s.config.MaxConcurrentJobs
	if maxJobs < 1 {
		maxJobs = 1
	}

	semaphore := make(chan struct{}, maxJobs)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		generated int
		failures  int
	)

	for _, user := range users {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(user *domain.User) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			_, err := s.reporter.GenerateReportForMonth(ctx, user.ID, month)

			mu.Lock()
			if err != nil {
				failures++
			} else {
				generated++
			}
			mu.Unlock()

			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"user_id": user.ID,
					"month":   domain.ReportMonth(month),
				}).Error("Erro ao gerar relatório mensal")
			}

			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(user)
	}

	wg.Wait()
	return generated, failures
}

// TriggerManualSync inicia manualmente a geração dos relatórios do mês anterior
func (s *MonthlyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração mensal de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de relatórios mensais")
	go s.syncMonthlyReports(context.Background())
}

// GetStatus retorna o status atual da geração
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_reports":      s.lastSyncReports,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
