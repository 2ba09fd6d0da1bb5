package domain

import "time"

type AchievementType string

const (
	AchievementRegularPoster  AchievementType = "regular_poster"
	AchievementReviewMaster   AchievementType = "review_master"
	AchievementTopRated       AchievementType = "top_rated"
	AchievementEngagementStar AchievementType = "engagement_star"
	AchievementPromoExpert    AchievementType = "promo_expert"
)

// Achievement é uma conquista única e irrevogável.
// Existe no máximo uma por (UserID, Type).
type Achievement struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        AchievementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	EarnedAt    time.Time       `json:"earned_at"`
}

// HasAchievement verifica se o tipo já foi conquistado
func HasAchievement(achievements []*Achievement, achievementType AchievementType) bool {
	for _, achievement := range achievements {
		if achievement.Type == achievementType {
			return true
		}
	}
	return false
}
