// Package insighting monta o painel inicial do usuário: contadores de
// atividade, pendências e conquistas recém-obtidas.
package insighting

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/badging"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reviewing"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

// dashboardListLimit limita rascunhos e avaliações exibidos no painel
const dashboardListLimit = 3

type DashboardService interface {
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}

type Service struct {
	postRepo      repository.PostRepository
	reviewRepo    repository.ReviewRepository
	responseRepo  repository.ReviewResponseRepository
	clientRepo    repository.ClientRepository
	promotionRepo repository.PromotionRepository
	statsRepo     repository.StatsRepository
	badges        badging.BadgeService
	views         ViewsSource
	cfg           config.Generator
	clock         utils.Clock
}

func NewService(
	postRepo repository.PostRepository,
	reviewRepo repository.ReviewRepository,
	responseRepo repository.ReviewResponseRepository,
	clientRepo repository.ClientRepository,
	promotionRepo repository.PromotionRepository,
	statsRepo repository.StatsRepository,
	badges badging.BadgeService,
	views ViewsSource,
	cfg config.Generator,
	clock utils.Clock,
) DashboardService {
	if views == nil {
		views = NewRandomViewsSource()
	}

	if clock == nil {
		clock = utils.SystemClock
	}

	return &Service{
		postRepo:      postRepo,
		reviewRepo:    reviewRepo,
		responseRepo:  responseRepo,
		clientRepo:    clientRepo,
		promotionRepo: promotionRepo,
		statsRepo:     statsRepo,
		badges:        badges,
		views:         views,
		cfg:           cfg,
		clock:         clock,
	}
}

// Dashboard grava um snapshot semanal a cada carregamento e avalia as conquistas
// com o histórico já incluindo esse snapshot.
func (s *Service) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	if userID == "" {
		return nil, NewInsightError(ErrMissingUser, apiErrors.ErrMissingRequiredData, userID, "Usuário é obrigatório")
	}

	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao listar posts")
	}

	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao listar avaliações")
	}

	responses, err := s.responseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao listar respostas")
	}

	clients, err := s.clientRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao contar clientes")
	}

	activePromotions, err := s.promotionRepo.CountActive(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao contar promoções ativas")
	}

	snapshot := &domain.StatisticsSnapshot{
		UserID:          userID,
		Period:          domain.PeriodWeek,
		PostsPublished:  countPublished(posts),
		ReviewsReceived: len(reviews),
		ReviewsAnswered: countSent(responses),
		Views:           s.views.Views(s.cfg.WeekViewsMin, s.cfg.WeekViewsMax),
		Date:            s.clock(),
	}
	if err := s.statsRepo.Create(ctx, snapshot); err != nil {
		return nil, dbError(err, userID, "Erro ao gravar estatísticas da semana")
	}

	newBadges, err := s.badges.EvaluateAndAward(ctx, userID)
	if err != nil {
		// o painel continua disponível, a avaliação roda de novo no próximo carregamento
		logrus.WithError(err).WithField("user_id", userID).Warn("Falha ao avaliar conquistas no painel")
		newBadges = nil
	}
	if newBadges == nil {
		newBadges = []*domain.Achievement{}
	}

	return &domain.Dashboard{
		Stats:            snapshot,
		Clients:          clients,
		ActivePromotions: activePromotions,
		PendingPosts:     pendingDrafts(posts),
		RecentReviews:    unansweredReviews(reviews, responses),
		NewBadges:        newBadges,
	}, nil
}

func countPublished(posts []*domain.Post) int {
	total := 0
	for _, post := range posts {
		if post.Status == domain.PostStatusPublished {
			total++
		}
	}
	return total
}

func countSent(responses []*domain.ReviewResponse) int {
	total := 0
	for _, response := range responses {
		if response.Status == domain.ResponseStatusSent {
			total++
		}
	}
	return total
}

func pendingDrafts(posts []*domain.Post) []*domain.Post {
	drafts := make([]*domain.Post, 0, dashboardListLimit)
	for _, post := range posts {
		if post.Status != domain.PostStatusDraft {
			continue
		}
		drafts = append(drafts, post)
		if len(drafts) == dashboardListLimit {
			break
		}
	}
	return drafts
}

// unansweredReviews considera respondida apenas a avaliação cuja resposta foi enviada
func unansweredReviews(reviews []*domain.Review, responses []*domain.ReviewResponse) []*domain.ReviewWithResponse {
	result := make([]*domain.ReviewWithResponse, 0, dashboardListLimit)
	for _, review := range reviewing.JoinResponses(reviews, responses) {
		if review.Response != nil && review.Response.Status == domain.ResponseStatusSent {
			continue
		}
		result = append(result, review)
		if len(result) == dashboardListLimit {
			break
		}
	}
	return result
}

func dbError(err error, userID, details string) *InsightError {
	logrus.WithError(err).WithField("user_id", userID).Error(details)
	return NewInsightError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, userID, details)
}
