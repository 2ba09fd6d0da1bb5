package badging

import "github.com/vfg2006/business-copilot-api/internal/domain"

const (
	// recentWeeks é a janela de snapshots semanais avaliada pelas regras
	recentWeeks = 4

	topRatedThreshold       = 4.5
	engagementViewsTarget   = 1000
	promoExpertMinimumCount = 5
)

// evaluation é o conjunto de dados já carregados sobre o qual as regras são avaliadas
type evaluation struct {
	weeks      []*domain.StatisticsSnapshot // no máximo recentWeeks, mais recente primeiro
	avgRating  float64
	promotions int
}

type rule struct {
	achievementType domain.AchievementType
	title           string
	description     string
	icon            string
	satisfied       func(evaluation) bool
}

// registry é avaliado sempre nesta ordem
var registry = []rule{
	{
		achievementType: domain.AchievementRegularPoster,
		title:           "Publicitaire régulier",
		description:     "Publie au moins 1 post par semaine pendant 4 semaines",
		icon:            "📝",
		satisfied:       isRegularPoster,
	},
	{
		achievementType: domain.AchievementReviewMaster,
		title:           "Maître des avis",
		description:     "A répondu à 100% des avis pendant 30 jours",
		icon:            "💬",
		satisfied:       isReviewMaster,
	},
	{
		achievementType: domain.AchievementTopRated,
		title:           "Top évaluation",
		description:     "Maintient une note moyenne de 4.5+ étoiles",
		icon:            "⭐",
		satisfied:       isTopRated,
	},
	{
		achievementType: domain.AchievementEngagementStar,
		title:           "Star de l'engagement",
		description:     "Plus de 1000 vues mensuelles",
		icon:            "👀",
		satisfied:       isEngagementStar,
	},
	{
		achievementType: domain.AchievementPromoExpert,
		title:           "Expert des promos",
		description:     "A créé au moins 5 promotions",
		icon:            "🎯",
		satisfied:       isPromoExpert,
	},
}

// isRegularPoster exige exatamente quatro semanas, todas com ao menos um post publicado
func isRegularPoster(e evaluation) bool {
	if len(e.weeks) != recentWeeks {
		return false
	}

	for _, week := range e.weeks {
		if week.PostsPublished < 1 {
			return false
		}
	}

	return true
}

// isReviewMaster é verdadeira quando não há semanas para avaliar
func isReviewMaster(e evaluation) bool {
	for _, week := range e.weeks {
		if week.ReviewsReceived != 0 && week.ReviewsAnswered != week.ReviewsReceived {
			return false
		}
	}

	return true
}

func isTopRated(e evaluation) bool {
	return e.avgRating >= topRatedThreshold
}

// isEngagementStar soma as semanas disponíveis, mesmo que sejam menos de quatro
func isEngagementStar(e evaluation) bool {
	views := 0
	for _, week := range e.weeks {
		views += week.Views
	}

	return views >= engagementViewsTarget
}

func isPromoExpert(e evaluation) bool {
	return e.promotions >= promoExpertMinimumCount
}
