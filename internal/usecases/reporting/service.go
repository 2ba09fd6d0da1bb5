// Package reporting gera e consulta os relatórios mensais de atividade.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/generating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/metrics"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

type ReportService interface {
	// GenerateReport gera o relatório do mês corrente
	GenerateReport(ctx context.Context, userID string) (*domain.MonthlyReport, error)
	// GenerateReportForMonth gera o relatório do mês que contém a data informada
	GenerateReportForMonth(ctx context.Context, userID string, date time.Time) (*domain.MonthlyReport, error)
	ListReports(ctx context.Context, userID string) ([]*domain.MonthlyReport, error)
}

type Service struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	reviewRepo   repository.ReviewRepository
	responseRepo repository.ReviewResponseRepository
	clientRepo   repository.ClientRepository
	reportRepo   repository.MonthlyReportRepository
	generator    generating.Generator
	views        insighting.ViewsSource
	cfg          config.Generator
	clock        utils.Clock
	metrics      *metrics.Collector
}

func NewService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	reviewRepo repository.ReviewRepository,
	responseRepo repository.ReviewResponseRepository,
	clientRepo repository.ClientRepository,
	reportRepo repository.MonthlyReportRepository,
	generator generating.Generator,
	views insighting.ViewsSource,
	cfg config.Generator,
	clock utils.Clock,
	collector *metrics.Collector,
) ReportService {
	if views == nil {
		views = insighting.NewRandomViewsSource()
	}

	if clock == nil {
		clock = utils.SystemClock
	}

	return &Service{
		userRepo:     userRepo,
		postRepo:     postRepo,
		reviewRepo:   reviewRepo,
		responseRepo: responseRepo,
		clientRepo:   clientRepo,
		reportRepo:   reportRepo,
		generator:    generator,
		views:        views,
		cfg:          cfg,
		clock:        clock,
		metrics:      collector,
	}
}

func (s *Service) GenerateReport(ctx context.Context, userID string) (*domain.MonthlyReport, error) {
	return s.GenerateReportForMonth(ctx, userID, s.clock())
}

// GenerateReportForMonth devolve o relatório já existente do mês sem recalcular nada
func (s *Service) GenerateReportForMonth(ctx context.Context, userID string, date time.Time) (*domain.MonthlyReport, error) {
	month := domain.ReportMonth(date)
	if userID == "" {
		return nil, NewReportError(ErrMissingUser, apiErrors.ErrMissingRequiredData, month, "Usuário é obrigatório")
	}

	existing, err := s.reportRepo.GetByUserAndMonth(ctx, userID, month)
	if err != nil {
		return nil, dbError(err, userID, month, "Erro ao buscar relatório do mês")
	}
	if existing != nil {
		return existing, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, month, "Erro ao buscar perfil")
	}
	if user == nil {
		return nil, NewReportError(ErrProfileNotFound, apiErrors.ErrUserNotFound, month, "Usuário não encontrado")
	}

	reportMetrics, err := s.aggregate(ctx, userID, date)
	if err != nil {
		return nil, dbError(err, userID, month, "Erro ao calcular métricas do mês")
	}

	// A classificação usa a média exata; só o valor gravado é arredondado
	content := s.generator.GenerateMonthlyReport(user.Profile(), reportMetrics)
	reportMetrics.AvgRating = utils.RoundTwoDecimals(reportMetrics.AvgRating)

	html, err := renderReport(date, reportMetrics, content)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao renderizar relatório")
		return nil, NewReportError(err, apiErrors.ErrInternalServer, month, "Erro ao gerar relatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrInternalServer, month, "Erro ao gerar identificador")
	}

	report := &domain.MonthlyReport{
		ID:              id,
		UserID:          userID,
		Month:           month,
		Metrics:         reportMetrics,
		Summary:         content.Summary,
		Recommendations: content.Recommendations,
		HTMLContent:     html,
		CreatedAt:       s.clock(),
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		if errors.Is(err, repository.ErrReportAlreadyExists) {
			return s.concurrentReport(ctx, userID, month)
		}
		return nil, dbError(err, userID, month, "Erro ao salvar relatório")
	}

	s.metrics.ReportGenerated()
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"month":   month,
	}).Info("Relatório mensal gerado")

	return report, nil
}

// concurrentReport devolve o relatório gravado por outra requisição do mesmo mês
func (s *Service) concurrentReport(ctx context.Context, userID, month string) (*domain.MonthlyReport, error) {
	existing, err := s.reportRepo.GetByUserAndMonth(ctx, userID, month)
	if err != nil {
		return nil, dbError(err, userID, month, "Erro ao buscar relatório do mês")
	}
	if existing == nil {
		return nil, dbError(repository.ErrReportAlreadyExists, userID, month, "Relatório do mês não encontrado após conflito")
	}

	return existing, nil
}

func (s *Service) aggregate(ctx context.Context, userID string, date time.Time) (domain.ReportMetrics, error) {
	start, end := domain.MonthBounds(date)

	postsPublished, err := s.postRepo.CountPublishedBetween(ctx, userID, start, end)
	if err != nil {
		return domain.ReportMetrics{}, err
	}

	reviews, err := s.reviewRepo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return domain.ReportMetrics{}, err
	}

	reviewsAnswered, err := s.responseRepo.CountSentForUserBetween(ctx, userID, start, end)
	if err != nil {
		return domain.ReportMetrics{}, err
	}

	clientsAdded, err := s.clientRepo.CountAddedBetween(ctx, userID, start, end)
	if err != nil {
		return domain.ReportMetrics{}, err
	}

	return domain.ReportMetrics{
		Views:           s.views.Views(s.cfg.ReportViewsMin, s.cfg.ReportViewsMax),
		ReviewsReceived: len(reviews),
		ReviewsAnswered: reviewsAnswered,
		PostsPublished:  postsPublished,
		AvgRating:       domain.AverageRating(reviews),
		ClientsAdded:    clientsAdded,
	}, nil
}

func (s *Service) ListReports(ctx context.Context, userID string) ([]*domain.MonthlyReport, error) {
	reports, err := s.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "", "Erro ao listar relatórios")
	}

	return reports, nil
}

func dbError(err error, userID, month, details string) *ReportError {
	logrus.WithError(err).WithFields(logrus.Fields{
		"user_id": userID,
		"month":   month,
	}).Error(details)
	return NewReportError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, month, details)
}
