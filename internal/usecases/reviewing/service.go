// Package reviewing administra as avaliações recebidas e o ciclo de vida
// das respostas: gerada (pending), aprovada (approved) e enviada (sent).
package reviewing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/generating"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/metrics"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

// Locker evita que duas listagens simultâneas gravem as avaliações de exemplo em dobro
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type ReviewService interface {
	ListReviews(ctx context.Context, userID string) ([]*domain.ReviewWithResponse, error)
	CreateReview(ctx context.Context, userID string, request domain.CreateReviewRequest) (*domain.Review, error)
	GenerateResponse(ctx context.Context, userID, reviewID string) (*domain.ReviewResponse, error)
	ApproveResponse(ctx context.Context, userID, reviewID, text string) (*domain.ReviewResponse, error)
	SendResponse(ctx context.Context, userID, reviewID string) (*domain.ReviewResponse, error)
}

type Service struct {
	userRepo     repository.UserRepository
	reviewRepo   repository.ReviewRepository
	responseRepo repository.ReviewResponseRepository
	generator    generating.Generator
	locker       Locker
	clock        utils.Clock
	metrics      *metrics.Collector
}

func NewService(
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	responseRepo repository.ReviewResponseRepository,
	generator generating.Generator,
	locker Locker,
	clock utils.Clock,
	collector *metrics.Collector,
) ReviewService {
	if locker == nil {
		locker = &utils.KeyedLocker{}
	}

	if clock == nil {
		clock = utils.SystemClock
	}

	return &Service{
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
		responseRepo: responseRepo,
		generator:    generator,
		locker:       locker,
		clock:        clock,
		metrics:      collector,
	}
}

// sampleReviews são gravadas no primeiro acesso de um usuário sem avaliações
var sampleReviews = []struct {
	author   string
	rating   int
	content  string
	daysAgo  int
	platform domain.Platform
}{
	{
		author:   "Marie Dupont",
		rating:   5,
		content:  "Service excellent et personnel très accueillant. Je recommande vivement !",
		daysAgo:  1,
		platform: domain.PlatformGoogle,
	},
	{
		author:   "Jean Martin",
		rating:   3,
		content:  "Bonne expérience dans l'ensemble, mais le temps d'attente était un peu long.",
		daysAgo:  2,
		platform: domain.PlatformGoogle,
	},
	{
		author:   "Sophie Bernard",
		rating:   5,
		content:  "Parfait ! Exactement ce que je cherchais. Merci beaucoup !",
		daysAgo:  3,
		platform: domain.PlatformFacebook,
	},
}

// ListReviews devolve as avaliações da mais recente para a mais antiga,
// cada uma com a resposta atual quando existir.
func (s *Service) ListReviews(ctx context.Context, userID string) ([]*domain.ReviewWithResponse, error) {
	err := s.locker.WithLock(ctx, "reviews:"+userID, func(ctx context.Context) error {
		return s.seedSamples(ctx, userID)
	})
	if err != nil {
		return nil, dbError(err, "", "Erro ao preparar avaliações de exemplo")
	}

	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, "", "Erro ao listar avaliações")
	}

	responses, err := s.responseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, "", "Erro ao listar respostas")
	}

	return JoinResponses(reviews, responses), nil
}

// JoinResponses associa cada avaliação à sua resposta, preservando a ordem das avaliações
func JoinResponses(reviews []*domain.Review, responses []*domain.ReviewResponse) []*domain.ReviewWithResponse {
	byReview := make(map[string]*domain.ReviewResponse, len(responses))
	for _, response := range responses {
		byReview[response.ReviewID] = response
	}

	result := make([]*domain.ReviewWithResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, &domain.ReviewWithResponse{
			Review:   *review,
			Response: byReview[review.ID],
		})
	}

	return result
}

func (s *Service) seedSamples(ctx context.Context, userID string) error {
	total, err := s.reviewRepo.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	now := s.clock()
	for _, sample := range sampleReviews {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da avaliação: %w", err)
		}

		review := &domain.Review{
			ID:       id,
			UserID:   userID,
			Rating:   sample.rating,
			Author:   sample.author,
			Content:  sample.content,
			Date:     now.Add(-time.Duration(sample.daysAgo) * 24 * time.Hour),
			Platform: sample.platform,
		}
		if err := s.reviewRepo.Create(ctx, review); err != nil {
			return err
		}
	}

	logrus.WithField("user_id", userID).Info("Avaliações de exemplo criadas")
	return nil
}

func (s *Service) CreateReview(ctx context.Context, userID string, request domain.CreateReviewRequest) (*domain.Review, error) {
	if strings.TrimSpace(request.Author) == "" || strings.TrimSpace(request.Content) == "" {
		return nil, NewReviewError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "", "Autor e conteúdo são obrigatórios")
	}

	if request.Rating < 1 || request.Rating > 5 {
		return nil, NewReviewError(ErrInvalidRating, apiErrors.ErrInvalidFormat, "", fmt.Sprintf("Nota recebida: %d", request.Rating))
	}

	platform := request.Platform
	switch platform {
	case "":
		platform = domain.PlatformGoogle
	case domain.PlatformGoogle, domain.PlatformFacebook:
	default:
		return nil, NewReviewError(ErrInvalidPlatform, apiErrors.ErrInvalidFormat, "", string(platform))
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReviewError(err, apiErrors.ErrInternalServer, "", "Erro ao gerar identificador")
	}

	review := &domain.Review{
		ID:       id,
		UserID:   userID,
		Rating:   request.Rating,
		Author:   strings.TrimSpace(request.Author),
		Content:  strings.TrimSpace(request.Content),
		Date:     s.clock(),
		Platform: platform,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, dbError(err, review.ID, "Erro ao salvar avaliação")
	}

	return review, nil
}

// GenerateResponse substitui a resposta ainda não enviada por um novo texto pendente
func (s *Service) GenerateResponse(ctx context.Context, userID, reviewID string) (*domain.ReviewResponse, error) {
	review, err := s.getReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	existing, err := s.responseRepo.GetByReviewID(ctx, reviewID)
	if err != nil {
		return nil, dbError(err, reviewID, "Erro ao buscar resposta")
	}
	if existing != nil && existing.Status == domain.ResponseStatusSent {
		return nil, NewReviewError(ErrResponseAlreadySent, apiErrors.ErrInvalidStatus, reviewID, "A resposta já foi enviada")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, dbError(err, reviewID, "Erro ao buscar perfil")
	}
	if user == nil {
		return nil, NewReviewError(ErrProfileNotFound, apiErrors.ErrUserNotFound, reviewID, "Usuário não encontrado")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReviewError(err, apiErrors.ErrInternalServer, reviewID, "Erro ao gerar identificador")
	}

	now := s.clock()
	response := &domain.ReviewResponse{
		ID:        id,
		ReviewID:  reviewID,
		Response:  s.generator.GenerateReviewResponse(review, user.Profile()),
		Status:    domain.ResponseStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, writeError(err, reviewID, "Erro ao salvar resposta")
	}

	s.metrics.ContentGenerated("review_response")
	return response, nil
}

// ApproveResponse grava o texto editado pelo usuário e marca a resposta como aprovada
func (s *Service) ApproveResponse(ctx context.Context, userID, reviewID, text string) (*domain.ReviewResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewReviewError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, reviewID, "Texto da resposta é obrigatório")
	}

	response, err := s.getUnsentResponse(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	response.Response = text
	response.Status = domain.ResponseStatusApproved
	response.UpdatedAt = s.clock()

	if err := s.responseRepo.Update(ctx, response); err != nil {
		return nil, writeError(err, reviewID, "Erro ao aprovar resposta")
	}

	return response, nil
}

func (s *Service) SendResponse(ctx context.Context, userID, reviewID string) (*domain.ReviewResponse, error) {
	response, err := s.getUnsentResponse(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	response.Status = domain.ResponseStatusSent
	response.UpdatedAt = s.clock()

	if err := s.responseRepo.Update(ctx, response); err != nil {
		return nil, writeError(err, reviewID, "Erro ao enviar resposta")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"review_id": reviewID,
	}).Info("Resposta enviada")

	return response, nil
}

func (s *Service) getUnsentResponse(ctx context.Context, userID, reviewID string) (*domain.ReviewResponse, error) {
	if _, err := s.getReview(ctx, userID, reviewID); err != nil {
		return nil, err
	}

	response, err := s.responseRepo.GetByReviewID(ctx, reviewID)
	if err != nil {
		return nil, dbError(err, reviewID, "Erro ao buscar resposta")
	}
	if response == nil {
		return nil, NewReviewError(ErrResponseNotFound, apiErrors.ErrResourceNotFound, reviewID, "Gere uma resposta antes")
	}
	if response.Status == domain.ResponseStatusSent {
		return nil, NewReviewError(ErrResponseAlreadySent, apiErrors.ErrInvalidStatus, reviewID, "A resposta já foi enviada")
	}

	return response, nil
}

// getReview garante que a avaliação pertence ao usuário
func (s *Service) getReview(ctx context.Context, userID, reviewID string) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, userID, reviewID)
	if err != nil {
		return nil, dbError(err, reviewID, "Erro ao buscar avaliação")
	}
	if review == nil {
		return nil, NewReviewError(ErrReviewNotFound, apiErrors.ErrResourceNotFound, reviewID, "Avaliação não encontrada")
	}

	return review, nil
}

// writeError trata a recusa do banco em alterar uma resposta enviada entre a
// leitura e a escrita
func writeError(err error, reviewID, details string) *ReviewError {
	if errors.Is(err, repository.ErrResponseAlreadySent) {
		return NewReviewError(ErrResponseAlreadySent, apiErrors.ErrInvalidStatus, reviewID, "A resposta já foi enviada")
	}
	return dbError(err, reviewID, details)
}

func dbError(err error, reviewID, details string) *ReviewError {
	logrus.WithError(err).WithField("review_id", reviewID).Error(details)
	return NewReviewError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, reviewID, details)
}
