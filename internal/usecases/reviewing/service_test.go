package reviewing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/generating"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

const userID = "user-1"

var fixedNow = time.Date(2024, 2, 20, 18, 0, 0, 0, time.UTC)

type testMocks struct {
	users     *mocks.MockUserRepository
	reviews   *mocks.MockReviewRepository
	responses *mocks.MockReviewResponseRepository
}

func newTestService(t *testing.T) (ReviewService, testMocks) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		users:     mocks.NewMockUserRepository(ctrl),
		reviews:   mocks.NewMockReviewRepository(ctrl),
		responses: mocks.NewMockReviewResponseRepository(ctrl),
	}

	clock := utils.FixedClock(fixedNow)
	return NewService(m.users, m.reviews, m.responses, generating.NewService(clock), nil, clock, nil), m
}

func TestService_ListReviews_CriaExemplosNoPrimeiroAcesso(t *testing.T) {
	service, m := newTestService(t)

	var created []*domain.Review
	m.reviews.EXPECT().CountByUser(gomock.Any(), userID).Return(0, nil)
	m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, review *domain.Review) error {
			created = append(created, review)
			return nil
		}).
		Times(3)
	m.reviews.EXPECT().ListByUser(gomock.Any(), userID).
		DoAndReturn(func(context.Context, string) ([]*domain.Review, error) {
			return created, nil
		})
	m.responses.EXPECT().ListByUser(gomock.Any(), userID).Return([]*domain.ReviewResponse{}, nil)

	reviews, err := service.ListReviews(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, reviews, 3)

	assert.Equal(t, "Marie Dupont", reviews[0].Author)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, domain.PlatformGoogle, reviews[0].Platform)
	assert.Equal(t, fixedNow.AddDate(0, 0, -1), reviews[0].Date)

	assert.Equal(t, "Jean Martin", reviews[1].Author)
	assert.Equal(t, 3, reviews[1].Rating)

	assert.Equal(t, "Sophie Bernard", reviews[2].Author)
	assert.Equal(t, domain.PlatformFacebook, reviews[2].Platform)

	for _, review := range reviews {
		assert.Equal(t, userID, review.UserID)
		assert.Nil(t, review.Response)
	}
}

func TestService_ListReviews_NaoDuplicaExemplos(t *testing.T) {
	service, m := newTestService(t)

	stored := []*domain.Review{{ID: "r1", UserID: userID, Rating: 4}, {ID: "r2", UserID: userID, Rating: 2}}
	m.reviews.EXPECT().CountByUser(gomock.Any(), userID).Return(2, nil)
	m.reviews.EXPECT().ListByUser(gomock.Any(), userID).Return(stored, nil)
	m.responses.EXPECT().ListByUser(gomock.Any(), userID).Return([]*domain.ReviewResponse{
		{ID: "resp-1", ReviewID: "r2", Status: domain.ResponseStatusSent},
	}, nil)

	reviews, err := service.ListReviews(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Nil(t, reviews[0].Response)
	require.NotNil(t, reviews[1].Response)
	assert.Equal(t, domain.ResponseStatusSent, reviews[1].Response.Status)
}

func TestService_CreateReview(t *testing.T) {
	tests := []struct {
		name        string
		request     domain.CreateReviewRequest
		expectedErr error
	}{
		{
			name:    "Plataforma padrão é google",
			request: domain.CreateReviewRequest{Rating: 4, Author: "Luc", Content: "Très bon"},
		},
		{
			name:        "Nota fora do intervalo",
			request:     domain.CreateReviewRequest{Rating: 6, Author: "Luc", Content: "Très bon"},
			expectedErr: ErrInvalidRating,
		},
		{
			name:        "Plataforma desconhecida",
			request:     domain.CreateReviewRequest{Rating: 4, Author: "Luc", Content: "Très bon", Platform: "yelp"},
			expectedErr: ErrInvalidPlatform,
		},
		{
			name:        "Autor ausente",
			request:     domain.CreateReviewRequest{Rating: 4, Content: "Très bon"},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			if tt.expectedErr == nil {
				m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			review, err := service.CreateReview(context.Background(), userID, tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.PlatformGoogle, review.Platform)
			assert.Equal(t, fixedNow, review.Date)
		})
	}
}

func TestService_GenerateResponse(t *testing.T) {
	user := &domain.User{ID: userID, BusinessName: "Le Petit Bistro", Sector: domain.SectorRestaurant, Tone: domain.ToneProfessional}

	tests := []struct {
		name   string
		rating int
	}{
		{name: "Avaliação positiva", rating: 5},
		{name: "Avaliação negativa", rating: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			review := &domain.Review{ID: "r1", UserID: userID, Rating: tt.rating, Author: "Luc"}

			m.reviews.EXPECT().GetByID(gomock.Any(), userID, "r1").Return(review, nil)
			m.responses.EXPECT().GetByReviewID(gomock.Any(), "r1").Return(nil, nil)
			m.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
			m.responses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			response, err := service.GenerateResponse(context.Background(), userID, "r1")

			require.NoError(t, err)
			assert.Equal(t, domain.ResponseStatusPending, response.Status)
			assert.Equal(t, "r1", response.ReviewID)

			expected := generating.NewService(utils.FixedClock(fixedNow)).GenerateReviewResponse(review, user.Profile())
			assert.Equal(t, expected, response.Response)
		})
	}
}

func TestService_CicloDaResposta(t *testing.T) {
	service, m := newTestService(t)
	review := &domain.Review{ID: "r1", UserID: userID, Rating: 5}
	stored := &domain.ReviewResponse{ID: "resp-1", ReviewID: "r1", Response: "Merci", Status: domain.ResponseStatusPending}

	m.reviews.EXPECT().GetByID(gomock.Any(), userID, "r1").Return(review, nil).AnyTimes()
	m.responses.EXPECT().GetByReviewID(gomock.Any(), "r1").
		DoAndReturn(func(context.Context, string) (*domain.ReviewResponse, error) {
			copied := *stored
			return &copied, nil
		}).
		AnyTimes()
	m.responses.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, response *domain.ReviewResponse) error {
			*stored = *response
			return nil
		}).
		Times(2)

	approved, err := service.ApproveResponse(context.Background(), userID, "r1", "  Merci beaucoup Marie !  ")
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseStatusApproved, approved.Status)
	assert.Equal(t, "Merci beaucoup Marie !", approved.Response)

	sent, err := service.SendResponse(context.Background(), userID, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseStatusSent, sent.Status)
	assert.Equal(t, "Merci beaucoup Marie !", sent.Response)

	_, err = service.SendResponse(context.Background(), userID, "r1")
	assert.ErrorIs(t, err, ErrResponseAlreadySent)

	_, err = service.ApproveResponse(context.Background(), userID, "r1", "Autre texte")
	assert.ErrorIs(t, err, ErrResponseAlreadySent)

	_, err = service.GenerateResponse(context.Background(), userID, "r1")
	var reviewErr *ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, apiErrors.ErrInvalidStatus, reviewErr.Code)
}

func TestService_SendResponse_Erros(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m testMocks)
		expectedErr error
	}{
		{
			name: "Avaliação de outro usuário",
			setup: func(m testMocks) {
				m.reviews.EXPECT().GetByID(gomock.Any(), userID, "r1").Return(nil, nil)
			},
			expectedErr: ErrReviewNotFound,
		},
		{
			name: "Sem resposta gerada",
			setup: func(m testMocks) {
				m.reviews.EXPECT().GetByID(gomock.Any(), userID, "r1").Return(&domain.Review{ID: "r1"}, nil)
				m.responses.EXPECT().GetByReviewID(gomock.Any(), "r1").Return(nil, nil)
			},
			expectedErr: ErrResponseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			_, err := service.SendResponse(context.Background(), userID, "r1")

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// A resposta pode ser enviada por outra requisição entre a leitura e a
// escrita; o banco recusa a escrita e o erro vira uma transição proibida.
func TestService_RespostaEnviadaEntreLeituraEEscrita(t *testing.T) {
	user := &domain.User{ID: userID, BusinessName: "Le Petit Bistro", Sector: domain.SectorRestaurant, Tone: domain.ToneFriendly}
	pending := &domain.ReviewResponse{ID: "resp-1", ReviewID: "r1", Response: "Merci", Status: domain.ResponseStatusPending}

	tests := []struct {
		name  string
		setup func(m testMocks)
		call  func(service ReviewService) (*domain.ReviewResponse, error)
	}{
		{
			name: "Gerar nova resposta",
			setup: func(m testMocks) {
				m.responses.EXPECT().GetByReviewID(gomock.Any(), "r1").Return(pending, nil)
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
				m.responses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrResponseAlreadySent)
			},
			call: func(service ReviewService) (*domain.ReviewResponse, error) {
				return service.GenerateResponse(context.Background(), userID, "r1")
			},
		},
		{
			name: "Aprovar resposta",
			setup: func(m testMocks) {
				copied := *pending
				m.responses.EXPECT().GetByReviewID(gomock.Any(), "r1").Return(&copied, nil)
				m.responses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repository.ErrResponseAlreadySent)
			},
			call: func(service ReviewService) (*domain.ReviewResponse, error) {
				return service.ApproveResponse(context.Background(), userID, "r1", "Merci Luc")
			},
		},
		{
			name: "Enviar resposta",
			setup: func(m testMocks) {
				copied := *pending
				m.responses.EXPECT().GetByReviewID(gomock.Any(), "r1").Return(&copied, nil)
				m.responses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repository.ErrResponseAlreadySent)
			},
			call: func(service ReviewService) (*domain.ReviewResponse, error) {
				return service.SendResponse(context.Background(), userID, "r1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.reviews.EXPECT().GetByID(gomock.Any(), userID, "r1").Return(&domain.Review{ID: "r1", UserID: userID, Rating: 4, Author: "Luc"}, nil)
			tt.setup(m)

			response, err := tt.call(service)

			assert.Nil(t, response)
			assert.ErrorIs(t, err, ErrResponseAlreadySent)
			var reviewErr *ReviewError
			require.ErrorAs(t, err, &reviewErr)
			assert.Equal(t, apiErrors.ErrInvalidStatus, reviewErr.Code)
		})
	}
}
