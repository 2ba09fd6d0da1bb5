package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/internal/api/handler"
	"github.com/vfg2006/business-copilot-api/internal/api/handler/router"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/badging"
	"github.com/vfg2006/business-copilot-api/internal/usecases/clienting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reporting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reviewing"
	"github.com/vfg2006/business-copilot-api/pkg/metrics"
	"github.com/vfg2006/business-copilot-api/pkg/middleware"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Dashboard     insighting.DashboardService
	Publisher     publishing.Publisher
	Reviews       reviewing.ReviewService
	Clients       clienting.ClientService
	Reports       reporting.ReportService
	Badges        badging.BadgeService
	CronJobs      handler.CronJobServices
	Clock         utils.Clock
}

type Server struct {
	httpServer *http.Server
}

// New monta o router; collector nil desliga /metrics e a instrumentação das rotas
func New(cfg *config.Config, services Services, collector *metrics.Collector) (*Server, error) {
	if services.Clock == nil {
		services.Clock = utils.SystemClock
	}

	handler := NewHandler(cfg, services, collector)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler devolve a cadeia completa de middlewares e rotas
func NewHandler(cfg *config.Config, services Services, collector *metrics.Collector) http.Handler {
	configs := []router.ConfigRouter{
		router.WithInstrumentation(collector.Instrument),
		router.WithRoutes(handler.Healthcheck()...),
	}

	if collector != nil {
		configs = append(configs, router.WithRoutes(handler.Metrics(collector.Handler())...))
	}

	configs = append(configs,
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Posts(services.Publisher)...),
		router.WithRoutes(handler.Promotions(services.Publisher)...),
		router.WithRoutes(handler.Campaigns(services.Publisher)...),
		router.WithRoutes(handler.Reviews(services.Reviews)...),
		router.WithRoutes(handler.Clients(services.Clients, services.Clock)...),
		router.WithRoutes(handler.Reports(services.Reports, services.Clock)...),
		router.WithRoutes(handler.Badges(services.Badges)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(router.New(configs...))
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
