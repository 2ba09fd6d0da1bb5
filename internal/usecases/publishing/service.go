// Package publishing gera e persiste os conteúdos do usuário: posts,
// promoções e campanhas multicanal.
package publishing

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

const defaultPromotionDays = 7

// allowedPromotionDays são as durações oferecidas na criação de promoções
var allowedPromotionDays = map[int]bool{3: true, 7: true, 14: true, 30: true}

// Transactor executa fn numa transação propagada pelo contexto; os
// repositórios chamados com esse contexto participam dela
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// directTransactor executa fn sem transação, para quando não há banco
type directTransactor struct{}

func (directTransactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type Publisher interface {
	GeneratePost(ctx context.Context, userID string, theme *string) (*domain.Post, error)
	ListPosts(ctx context.Context, userID string) ([]*domain.Post, error)
	UpdatePostContent(ctx context.Context, userID, postID, content string) (*domain.Post, error)
	UpdatePostStatus(ctx context.Context, userID, postID string, status domain.PostStatus) (*domain.Post, error)

	CreatePromotion(ctx context.Context, userID string, request domain.CreatePromotionRequest) (*domain.Promotion, error)
	ListPromotions(ctx context.Context, userID string) ([]*domain.Promotion, error)
	ActivatePromotion(ctx context.Context, userID, promotionID string) error

	CreateCampaign(ctx context.Context, userID string, request domain.CreateCampaignRequest) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, userID string) ([]*domain.Campaign, error)
	ActivateCampaign(ctx context.Context, userID, campaignID string) ([]*domain.Post, error)
}

type Service struct {
	userRepo      repository.UserRepository
	postRepo      repository.PostRepository
	promotionRepo repository.PromotionRepository
	campaignRepo  repository.CampaignRepository
	generator     generating.Generator
	transactor    Transactor
	clock         utils.Clock
	metrics       *metrics.Collector
}

func NewService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	promotionRepo repository.PromotionRepository,
	campaignRepo repository.CampaignRepository,
	generator generating.Generator,
	transactor Transactor,
	clock utils.Clock,
	collector *metrics.Collector,
) Publisher {
	if transactor == nil {
		transactor = directTransactor{}
	}

	if clock == nil {
		clock = utils.SystemClock
	}

	return &Service{
		userRepo:      userRepo,
		postRepo:      postRepo,
		promotionRepo: promotionRepo,
		campaignRepo:  campaignRepo,
		generator:     generator,
		transactor:    transactor,
		clock:         clock,
		metrics:       collector,
	}
}

func (s *Service) GeneratePost(ctx context.Context, userID string, theme *string) (*domain.Post, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft := s.generator.GeneratePost(profile, theme)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewContentError(err, apiErrors.ErrInternalServer, userID, "Erro ao gerar identificador")
	}

	now := s.clock()
	post := &domain.Post{
		ID:               id,
		UserID:           userID,
		Title:            draft.Title,
		Content:          draft.Content,
		VisualSuggestion: draft.VisualSuggestion,
		Status:           domain.PostStatusDraft,
		Channel:          draft.Channel,
		PublishDate:      now,
		CreatedAt:        now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, dbError(err, userID, "Erro ao salvar post")
	}

	s.metrics.ContentGenerated("post")
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"post_id": post.ID,
	}).Info("Post gerado")

	return post, nil
}

func (s *Service) ListPosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao listar posts")
	}

	return posts, nil
}

func (s *Service) UpdatePostContent(ctx context.Context, userID, postID, content string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewContentError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, userID, "Conteúdo é obrigatório")
	}

	if err := s.postRepo.UpdateContent(ctx, userID, postID, content); err != nil {
		return nil, s.postUpdateError(err, userID, postID)
	}

	return s.getPost(ctx, userID, postID)
}

func (s *Service) UpdatePostStatus(ctx context.Context, userID, postID string, status domain.PostStatus) (*domain.Post, error) {
	if !status.IsValid() {
		return nil, NewContentError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, userID, fmt.Sprintf("Status desconhecido: %q", status))
	}

	if err := s.postRepo.UpdateStatus(ctx, userID, postID, status); err != nil {
		return nil, s.postUpdateError(err, userID, postID)
	}

	return s.getPost(ctx, userID, postID)
}

func (s *Service) getPost(ctx context.Context, userID, postID string) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, userID, postID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao buscar post")
	}
	if post == nil {
		return nil, NewContentError(ErrPostNotFound, apiErrors.ErrResourceNotFound, userID, postID)
	}

	return post, nil
}

func (s *Service) postUpdateError(err error, userID, postID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewContentError(ErrPostNotFound, apiErrors.ErrResourceNotFound, userID, postID)
	}
	return dbError(err, userID, "Erro ao atualizar post")
}

// CreatePromotion começa agora e dura DurationDays dias (7 quando não informado)
func (s *Service) CreatePromotion(ctx context.Context, userID string, request domain.CreatePromotionRequest) (*domain.Promotion, error) {
	if strings.TrimSpace(request.Discount) == "" || strings.TrimSpace(request.Description) == "" {
		return nil, NewContentError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, userID, "Desconto e descrição são obrigatórios")
	}

	days := request.DurationDays
	if days == 0 {
		days = defaultPromotionDays
	}
	if !allowedPromotionDays[days] {
		return nil, NewContentError(ErrInvalidDuration, apiErrors.ErrInvalidFormat, userID, fmt.Sprintf("Duração não suportada: %d dias", days))
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft := s.generator.GeneratePromotion(profile, domain.PromotionRequest{
		Discount:    strings.TrimSpace(request.Discount),
		Description: strings.TrimSpace(request.Description),
	})

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewContentError(err, apiErrors.ErrInternalServer, userID, "Erro ao gerar identificador")
	}

	now := s.clock()
	promotion := &domain.Promotion{
		ID:               id,
		UserID:           userID,
		Title:            draft.Title,
		Description:      draft.Description,
		Discount:         draft.Discount,
		StartDate:        now,
		EndDate:          now.Add(time.Duration(days) * 24 * time.Hour),
		Posts:            draft.Posts,
		VisualSuggestion: draft.VisualSuggestion,
		Status:           draft.Status,
		CreatedAt:        now,
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, dbError(err, userID, "Erro ao salvar promoção")
	}

	s.metrics.ContentGenerated("promotion")
	logrus.WithFields(logrus.Fields{
		"user_id":      userID,
		"promotion_id": promotion.ID,
		"days":         days,
	}).Info("Promoção gerada")

	return promotion, nil
}

func (s *Service) ListPromotions(ctx context.Context, userID string) ([]*domain.Promotion, error) {
	promotions, err := s.promotionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao listar promoções")
	}

	return promotions, nil
}

func (s *Service) ActivatePromotion(ctx context.Context, userID, promotionID string) error {
	err := s.promotionRepo.UpdateStatus(ctx, userID, promotionID, domain.PromotionStatusActive)
	if errors.Is(err, repository.ErrNotFound) {
		return NewContentError(ErrPromotionNotFound, apiErrors.ErrResourceNotFound, userID, promotionID)
	}
	if err != nil {
		return dbError(err, userID, "Erro ao ativar promoção")
	}

	return nil
}

func (s *Service) CreateCampaign(ctx context.Context, userID string, request domain.CreateCampaignRequest) (*domain.Campaign, error) {
	info := strings.TrimSpace(request.Info)
	if info == "" {
		return nil, NewContentError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, userID, "Informação da campanha é obrigatória")
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft := s.generator.GenerateCampaign(profile, info)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewContentError(err, apiErrors.ErrInternalServer, userID, "Erro ao gerar identificador")
	}

	campaign := &domain.Campaign{
		ID:          id,
		UserID:      userID,
		Title:       draft.Title,
		Description: draft.Description,
		Posts:       draft.Posts,
		Status:      draft.Status,
		CreatedAt:   s.clock(),
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, dbError(err, userID, "Erro ao salvar campanha")
	}

	s.metrics.ContentGenerated("campaign")
	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"campaign_id": campaign.ID,
	}).Info("Campanha gerada")

	return campaign, nil
}

func (s *Service) ListCampaigns(ctx context.Context, userID string) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao listar campanhas")
	}

	return campaigns, nil
}

// ActivateCampaign cria um rascunho de post para cada canal da campanha
// e devolve os posts criados. A troca de status e os posts são gravados na
// mesma transação: ou a campanha fica ativa com todos os posts, ou nada muda.
func (s *Service) ActivateCampaign(ctx context.Context, userID, campaignID string) ([]*domain.Post, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, userID, campaignID)
	if err != nil {
		return nil, dbError(err, userID, "Erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, NewContentError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, userID, campaignID)
	}
	if campaign.Status == domain.CampaignStatusActive {
		return nil, NewContentError(ErrCampaignAlreadyActive, apiErrors.ErrInvalidStatus, userID, campaignID)
	}

	posts, err := s.campaignPosts(userID, campaign)
	if err != nil {
		return nil, NewContentError(err, apiErrors.ErrInternalServer, userID, "Erro ao gerar identificador")
	}

	err = s.transactor.InTransaction(ctx, func(ctx context.Context) error {
		// A troca condicional garante que só uma requisição cria os posts
		if err := s.campaignRepo.Activate(ctx, userID, campaignID); err != nil {
			return err
		}

		for _, post := range posts {
			if err := s.postRepo.Create(ctx, post); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, repository.ErrCampaignAlreadyActive) {
		return nil, NewContentError(ErrCampaignAlreadyActive, apiErrors.ErrInvalidStatus, userID, campaignID)
	}
	if err != nil {
		return nil, dbError(err, userID, "Erro ao ativar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"campaign_id": campaignID,
		"posts":       len(posts),
	}).Info("Campanha ativada")

	return posts, nil
}

func (s *Service) campaignPosts(userID string, campaign *domain.Campaign) ([]*domain.Post, error) {
	drafts := []struct {
		channel domain.Channel
		draft   *domain.PostDraft
	}{
		{channel: domain.ChannelGoogle, draft: campaign.Posts.Google},
		{channel: domain.ChannelFacebook, draft: campaign.Posts.Facebook},
	}

	now := s.clock()
	posts := make([]*domain.Post, 0, len(drafts))
	for _, d := range drafts {
		if d.draft == nil {
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		posts = append(posts, &domain.Post{
			ID:               id,
			UserID:           userID,
			CampaignID:       &campaign.ID,
			Title:            d.draft.Title,
			Content:          d.draft.Content,
			VisualSuggestion: d.draft.VisualSuggestion,
			Status:           domain.PostStatusDraft,
			Channel:          d.channel,
			PublishDate:      now,
			CreatedAt:        now,
		})
	}

	return posts, nil
}

func (s *Service) profile(ctx context.Context, userID string) (domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, dbError(err, userID, "Erro ao buscar perfil")
	}
	if user == nil {
		return domain.Profile{}, NewContentError(ErrProfileNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	return user.Profile(), nil
}

func dbError(err error, userID, details string) *ContentError {
	logrus.WithError(err).WithField("user_id", userID).Error(details)
	return NewContentError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, userID, details)
}
