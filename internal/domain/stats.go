package domain

import "time"

type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// StatisticsSnapshot é um agregado pontual da atividade do usuário em um período.
// Registros são apenas inseridos, nunca alterados.
type StatisticsSnapshot struct {
	ID              int64      `json:"id"`
	UserID          string     `json:"user_id"`
	Period          PeriodKind `json:"period"`
	PostsPublished  int        `json:"posts_published"`
	ReviewsReceived int        `json:"reviews_received"`
	ReviewsAnswered int        `json:"reviews_answered"`
	Views           int        `json:"views"`
	Date            time.Time  `json:"date"`
}

// RecentWeeks filtra os snapshots semanais e devolve no máximo limit itens,
// preservando a ordem recebida (mais recente primeiro).
func RecentWeeks(snapshots []*StatisticsSnapshot, limit int) []*StatisticsSnapshot {
	weeks := make([]*StatisticsSnapshot, 0, limit)
	for _, snapshot := range snapshots {
		if snapshot.Period != PeriodWeek {
			continue
		}
		weeks = append(weeks, snapshot)
		if len(weeks) == limit {
			break
		}
	}
	return weeks
}

// Dashboard é a resposta consolidada da página inicial
type Dashboard struct {
	Stats            *StatisticsSnapshot   `json:"stats"`
	Clients          int                   `json:"clients"`
	ActivePromotions int                   `json:"active_promotions"`
	PendingPosts     []*Post               `json:"pending_posts"`
	RecentReviews    []*ReviewWithResponse `json:"recent_reviews"`
	NewBadges        []*Achievement        `json:"new_badges"`
}
