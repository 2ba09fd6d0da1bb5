// Package badging concede as conquistas do usuário avaliando um registro fixo
// de regras sobre o histórico de estatísticas, avaliações e promoções.
package badging

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/metrics"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

// Locker serializa a avaliação por usuário entre instâncias da API
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type BadgeService interface {
	EvaluateAndAward(ctx context.Context, userID string) ([]*domain.Achievement, error)
	ListAchievements(ctx context.Context, userID string) ([]*domain.Achievement, error)
}

type Service struct {
	achievementRepo repository.AchievementRepository
	statsRepo       repository.StatsRepository
	reviewRepo      repository.ReviewRepository
	promotionRepo   repository.PromotionRepository
	locker          Locker
	clock           utils.Clock
	metrics         *metrics.Collector
}

func NewService(
	achievementRepo repository.AchievementRepository,
	statsRepo repository.StatsRepository,
	reviewRepo repository.ReviewRepository,
	promotionRepo repository.PromotionRepository,
	locker Locker,
	clock utils.Clock,
	collector *metrics.Collector,
) BadgeService {
	if locker == nil {
		locker = &utils.KeyedLocker{}
	}

	if clock == nil {
		clock = utils.SystemClock
	}

	return &Service{
		achievementRepo: achievementRepo,
		statsRepo:       statsRepo,
		reviewRepo:      reviewRepo,
		promotionRepo:   promotionRepo,
		locker:          locker,
		clock:           clock,
		metrics:         collector,
	}
}

// EvaluateAndAward devolve apenas as conquistas inseridas nesta chamada.
// Tipos já conquistados nunca são reavaliados.
func (s *Service) EvaluateAndAward(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	if userID == "" {
		return nil, NewBadgeError(ErrMissingUser, apiErrors.ErrMissingRequiredData, userID, "Usuário é obrigatório")
	}

	var awarded []*domain.Achievement
	err := s.locker.WithLock(ctx, lockKey(userID), func(ctx context.Context) error {
		var err error
		awarded, err = s.evaluate(ctx, userID)
		return err
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao avaliar conquistas")
		return nil, NewBadgeError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao avaliar conquistas")
	}

	if len(awarded) > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"count":   len(awarded),
		}).Info("Novas conquistas concedidas")
	}

	return awarded, nil
}

func (s *Service) evaluate(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	existing, err := s.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: conquistas: %w", ErrLoadHistory, err)
	}

	snapshots, err := s.statsRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: estatísticas: %w", ErrLoadHistory, err)
	}

	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: avaliações: %w", ErrLoadHistory, err)
	}

	promotions, err := s.promotionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: promoções: %w", ErrLoadHistory, err)
	}

	input := evaluation{
		weeks:      domain.RecentWeeks(snapshots, recentWeeks),
		avgRating:  domain.AverageRating(reviews),
		promotions: len(promotions),
	}

	awarded := make([]*domain.Achievement, 0)
	for _, r := range registry {
		if domain.HasAchievement(existing, r.achievementType) {
			continue
		}

		if !r.satisfied(input) {
			continue
		}

		achievement, err := s.newAchievement(userID, r)
		if err != nil {
			return nil, err
		}

		inserted, err := s.achievementRepo.Create(ctx, achievement)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrAwardAchievement, r.achievementType, err)
		}

		// Outra avaliação concorrente já gravou o mesmo tipo
		if !inserted {
			continue
		}

		s.metrics.AchievementAwarded(string(r.achievementType))
		awarded = append(awarded, achievement)
	}

	return awarded, nil
}

func (s *Service) newAchievement(userID string, r rule) (*domain.Achievement, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da conquista: %w", err)
	}

	return &domain.Achievement{
		ID:          id,
		UserID:      userID,
		Type:        r.achievementType,
		Title:       r.title,
		Description: r.description,
		Icon:        r.icon,
		EarnedAt:    s.clock(),
	}, nil
}

func (s *Service) ListAchievements(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	achievements, err := s.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewBadgeError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao listar conquistas")
	}

	return achievements, nil
}

func lockKey(userID string) string {
	return "badges:" + userID
}
