package domain

import "time"

type PromotionStatus string

const (
	PromotionStatusDraft  PromotionStatus = "draft"
	PromotionStatusActive PromotionStatus = "active"
	PromotionStatusEnded  PromotionStatus = "ended"
)

// ChannelPosts guarda o texto gerado para cada canal
type ChannelPosts struct {
	Google   string `json:"google,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

type Promotion struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Discount         string          `json:"discount"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	Posts            ChannelPosts    `json:"posts"`
	VisualSuggestion string          `json:"visual_suggestion,omitempty"`
	Status           PromotionStatus `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PromotionRequest é a entrada do gerador de promoções
type PromotionRequest struct {
	Discount    string `json:"discount"`
	Description string `json:"description"`
}

type CreatePromotionRequest struct {
	PromotionRequest
	DurationDays int `json:"duration_days"` // 3, 7, 14 ou 30
}

// PromotionDraft é a promoção gerada, ainda sem identidade nem período
type PromotionDraft struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Discount         string          `json:"discount"`
	Posts            ChannelPosts    `json:"posts"`
	VisualSuggestion string          `json:"visual_suggestion"`
	Status           PromotionStatus `json:"status"`
}
