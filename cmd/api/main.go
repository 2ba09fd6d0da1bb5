package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/api"
	"github.com/vfg2006/business-copilot-api/internal/api/handler"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/scheduler"
	"github.com/vfg2006/business-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/badging"
	"github.com/vfg2006/business-copilot-api/internal/usecases/clienting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/generating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reporting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reviewing"
	"github.com/vfg2006/business-copilot-api/pkg/metrics"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)
	promotionRepo := repository.NewPromotionRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	reviewRepo := repository.NewReviewRepository(pgConn)
	responseRepo := repository.NewReviewResponseRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	achievementRepo := repository.NewAchievementRepository(pgConn)
	statsRepo := repository.NewStatsRepository(pgConn)
	reportRepo := repository.NewMonthlyReportRepository(pgConn)

	// Locks consultivos valem entre réplicas da API
	locker := postgres.NewAdvisoryLocker(pgConn)

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
	}

	clock := utils.SystemClock
	generator := generating.NewService(clock)
	views := insighting.NewRandomViewsSource()

	authenticator := authenticating.NewService(userRepo, cfg, clock)
	publisher := publishing.NewService(userRepo, postRepo, promotionRepo, campaignRepo, generator, pgConn, clock, collector)
	reviewService := reviewing.NewService(userRepo, reviewRepo, responseRepo, generator, locker, clock, collector)
	clientService := clienting.NewService(clientRepo, userRepo, generator, clock)
	badgeService := badging.NewService(achievementRepo, statsRepo, reviewRepo, promotionRepo, locker, clock, collector)

	dashboardService := insighting.NewService(
		postRepo,
		reviewRepo,
		responseRepo,
		clientRepo,
		promotionRepo,
		statsRepo,
		badgeService,
		views,
		cfg.Generator,
		clock,
	)

	reportService := reporting.NewService(
		userRepo,
		postRepo,
		reviewRepo,
		responseRepo,
		clientRepo,
		reportRepo,
		generator,
		views,
		cfg.Generator,
		clock,
		collector,
	)

	// Inicializa o agendador de relatórios mensais
	monthlyReportSyncService := scheduler.NewMonthlyReportSyncService(userRepo, reportService, cfg)
	if err := monthlyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios mensais")
	} else {
		logrus.Info("Agendador de relatórios mensais iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Dashboard:     dashboardService,
		Publisher:     publisher,
		Reviews:       reviewService,
		Clients:       clientService,
		Reports:       reportService,
		Badges:        badgeService,
		CronJobs: handler.CronJobServices{
			MonthlyReportSyncService: monthlyReportSyncService,
		},
		Clock: clock,
	}, collector)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
