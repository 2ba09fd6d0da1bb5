package badging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

const userID = "user-1"

var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

type repositoryMocks struct {
	achievements *mocks.MockAchievementRepository
	stats        *mocks.MockStatsRepository
	reviews      *mocks.MockReviewRepository
	promotions   *mocks.MockPromotionRepository
}

func newTestService(t *testing.T) (BadgeService, repositoryMocks) {
	ctrl := gomock.NewController(t)

	m := repositoryMocks{
		achievements: mocks.NewMockAchievementRepository(ctrl),
		stats:        mocks.NewMockStatsRepository(ctrl),
		reviews:      mocks.NewMockReviewRepository(ctrl),
		promotions:   mocks.NewMockPromotionRepository(ctrl),
	}

	service := NewService(m.achievements, m.stats, m.reviews, m.promotions, nil, utils.FixedClock(fixedNow), nil)
	return service, m
}

// history descreve os dados carregados pelo motor de conquistas
type history struct {
	existing   []*domain.Achievement
	snapshots  []*domain.StatisticsSnapshot
	ratings    []int
	promotions int
}

func (h history) expect(m repositoryMocks) {
	reviews := make([]*domain.Review, 0, len(h.ratings))
	for _, rating := range h.ratings {
		reviews = append(reviews, &domain.Review{UserID: userID, Rating: rating})
	}

	promotions := make([]*domain.Promotion, 0, h.promotions)
	for i := 0; i < h.promotions; i++ {
		promotions = append(promotions, &domain.Promotion{UserID: userID})
	}

	m.achievements.EXPECT().ListByUser(gomock.Any(), userID).Return(h.existing, nil)
	m.stats.EXPECT().ListByUser(gomock.Any(), userID).Return(h.snapshots, nil)
	m.reviews.EXPECT().ListByUser(gomock.Any(), userID).Return(reviews, nil)
	m.promotions.EXPECT().ListByUser(gomock.Any(), userID).Return(promotions, nil)
}

func weeks(postsPublished ...int) []*domain.StatisticsSnapshot {
	snapshots := make([]*domain.StatisticsSnapshot, 0, len(postsPublished))
	for i, posts := range postsPublished {
		snapshots = append(snapshots, &domain.StatisticsSnapshot{
			UserID:          userID,
			Period:          domain.PeriodWeek,
			PostsPublished:  posts,
			ReviewsReceived: 1,
			ReviewsAnswered: 0,
			Views:           100,
			Date:            fixedNow.AddDate(0, 0, -7*i),
		})
	}
	return snapshots
}

func types(achievements []*domain.Achievement) []domain.AchievementType {
	result := make([]domain.AchievementType, 0, len(achievements))
	for _, achievement := range achievements {
		result = append(result, achievement.Type)
	}
	return result
}

func TestService_EvaluateAndAward_Regras(t *testing.T) {
	tests := []struct {
		name     string
		history  history
		expected []domain.AchievementType
	}{
		{
			name:     "Quatro semanas com posts [1,1,1,1] concede publicitário regular",
			history:  history{snapshots: weeks(1, 1, 1, 1)},
			expected: []domain.AchievementType{domain.AchievementRegularPoster},
		},
		{
			name:     "Semana sem post [1,2,0,3] não concede publicitário regular",
			history:  history{snapshots: weeks(1, 2, 0, 3)},
			expected: []domain.AchievementType{},
		},
		{
			name:     "Menos de quatro semanas não concede publicitário regular",
			history:  history{snapshots: weeks(3, 3, 3)},
			expected: []domain.AchievementType{},
		},
		{
			name:     "Apenas as quatro semanas mais recentes são consideradas",
			history:  history{snapshots: weeks(1, 1, 1, 1, 0)},
			expected: []domain.AchievementType{domain.AchievementRegularPoster},
		},
		{
			name:     "Cinco promoções concedem especialista em promoções",
			history:  history{promotions: 5, snapshots: weeks(0)},
			expected: []domain.AchievementType{domain.AchievementPromoExpert},
		},
		{
			name:     "Quatro promoções não concedem especialista em promoções",
			history:  history{promotions: 4, snapshots: weeks(0)},
			expected: []domain.AchievementType{},
		},
		{
			name:     "Notas [5,5,4,5] concedem top avaliação",
			history:  history{ratings: []int{5, 5, 4, 5}, snapshots: weeks(0)},
			expected: []domain.AchievementType{domain.AchievementTopRated},
		},
		{
			name:     "Notas [5,3,3,3] não concedem top avaliação",
			history:  history{ratings: []int{5, 3, 3, 3}, snapshots: weeks(0)},
			expected: []domain.AchievementType{},
		},
		{
			name: "Sem histórico apenas mestre das avaliações é concedido",
			history: history{
				snapshots: []*domain.StatisticsSnapshot{},
			},
			expected: []domain.AchievementType{domain.AchievementReviewMaster},
		},
		{
			name: "Várias regras satisfeitas são concedidas na ordem do registro",
			history: history{
				snapshots: []*domain.StatisticsSnapshot{
					{Period: domain.PeriodWeek, PostsPublished: 2, ReviewsReceived: 2, ReviewsAnswered: 2, Views: 300},
					{Period: domain.PeriodMonth, PostsPublished: 0, ReviewsReceived: 9, ReviewsAnswered: 0, Views: 5000},
					{Period: domain.PeriodWeek, PostsPublished: 1, ReviewsReceived: 0, ReviewsAnswered: 0, Views: 300},
					{Period: domain.PeriodWeek, PostsPublished: 1, ReviewsReceived: 1, ReviewsAnswered: 1, Views: 200},
					{Period: domain.PeriodWeek, PostsPublished: 3, ReviewsReceived: 3, ReviewsAnswered: 3, Views: 200},
				},
				ratings:    []int{5, 5, 5},
				promotions: 6,
			},
			expected: []domain.AchievementType{
				domain.AchievementRegularPoster,
				domain.AchievementReviewMaster,
				domain.AchievementTopRated,
				domain.AchievementEngagementStar,
				domain.AchievementPromoExpert,
			},
		},
		{
			name: "Estrela do engajamento soma semanas disponíveis mesmo com menos de quatro",
			history: history{
				snapshots: []*domain.StatisticsSnapshot{
					{Period: domain.PeriodWeek, PostsPublished: 0, ReviewsReceived: 1, Views: 600},
					{Period: domain.PeriodWeek, PostsPublished: 0, ReviewsReceived: 1, Views: 400},
				},
			},
			expected: []domain.AchievementType{domain.AchievementEngagementStar},
		},
		{
			name: "Tipos já conquistados são ignorados",
			history: history{
				existing:   []*domain.Achievement{{UserID: userID, Type: domain.AchievementPromoExpert}},
				snapshots:  weeks(0),
				promotions: 10,
			},
			expected: []domain.AchievementType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.history.expect(m)

			m.achievements.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, achievement *domain.Achievement) (bool, error) {
					return true, nil
				}).
				Times(len(tt.expected))

			awarded, err := service.EvaluateAndAward(context.Background(), userID)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, types(awarded))
			for _, achievement := range awarded {
				assert.Equal(t, userID, achievement.UserID)
				assert.NotEmpty(t, achievement.ID)
				assert.NotEmpty(t, achievement.Title)
				assert.NotEmpty(t, achievement.Icon)
				assert.Equal(t, fixedNow, achievement.EarnedAt)
			}
		})
	}
}

func TestService_EvaluateAndAward_Idempotente(t *testing.T) {
	service, m := newTestService(t)

	stored := make([]*domain.Achievement, 0)
	snapshots := weeks(1, 1, 1, 1)
	reviews := []*domain.Review{{Rating: 5}, {Rating: 5}}
	promotions := []*domain.Promotion{{}, {}, {}, {}, {}}

	m.achievements.EXPECT().ListByUser(gomock.Any(), userID).
		DoAndReturn(func(context.Context, string) ([]*domain.Achievement, error) {
			return append([]*domain.Achievement(nil), stored...), nil
		}).
		AnyTimes()
	m.achievements.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, achievement *domain.Achievement) (bool, error) {
			if domain.HasAchievement(stored, achievement.Type) {
				return false, nil
			}
			stored = append(stored, achievement)
			return true, nil
		}).
		AnyTimes()
	m.stats.EXPECT().ListByUser(gomock.Any(), userID).Return(snapshots, nil).Times(2)
	m.reviews.EXPECT().ListByUser(gomock.Any(), userID).Return(reviews, nil).Times(2)
	m.promotions.EXPECT().ListByUser(gomock.Any(), userID).Return(promotions, nil).Times(2)

	first, err := service.EvaluateAndAward(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	before, err := service.ListAchievements(context.Background(), userID)
	require.NoError(t, err)

	second, err := service.EvaluateAndAward(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, second)

	after, err := service.ListAchievements(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestService_EvaluateAndAward_DuplicadoConcorrenteNaoERetornado(t *testing.T) {
	service, m := newTestService(t)
	history{promotions: 5, snapshots: weeks(0)}.expect(m)

	// A linha já foi gravada por outra avaliação entre a leitura e a escrita
	m.achievements.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)

	awarded, err := service.EvaluateAndAward(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, awarded)
}

func TestService_EvaluateAndAward_Erros(t *testing.T) {
	dbErr := errors.New("conexão perdida")

	t.Run("Usuário vazio", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.EvaluateAndAward(context.Background(), "")

		var badgeErr *BadgeError
		require.ErrorAs(t, err, &badgeErr)
		assert.ErrorIs(t, err, ErrMissingUser)
	})

	t.Run("Falha ao carregar estatísticas", func(t *testing.T) {
		service, m := newTestService(t)
		m.achievements.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)
		m.stats.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, dbErr)

		awarded, err := service.EvaluateAndAward(context.Background(), userID)

		assert.Nil(t, awarded)
		assert.ErrorIs(t, err, ErrLoadHistory)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Falha ao gravar conquista", func(t *testing.T) {
		service, m := newTestService(t)
		history{promotions: 5, snapshots: weeks(0)}.expect(m)
		m.achievements.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, dbErr)

		_, err := service.EvaluateAndAward(context.Background(), userID)

		assert.ErrorIs(t, err, ErrAwardAchievement)
		assert.ErrorIs(t, err, dbErr)
	})
}

type recordingLocker struct {
	keys []string
}

func (l *recordingLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.keys = append(l.keys, key)
	return fn(ctx)
}

func TestService_EvaluateAndAward_UsaLockPorUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := repositoryMocks{
		achievements: mocks.NewMockAchievementRepository(ctrl),
		stats:        mocks.NewMockStatsRepository(ctrl),
		reviews:      mocks.NewMockReviewRepository(ctrl),
		promotions:   mocks.NewMockPromotionRepository(ctrl),
	}
	locker := &recordingLocker{}
	service := NewService(m.achievements, m.stats, m.reviews, m.promotions, locker, utils.FixedClock(fixedNow), nil)

	history{snapshots: weeks(0)}.expect(m)

	_, err := service.EvaluateAndAward(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, []string{"badges:" + userID}, locker.keys)
}
