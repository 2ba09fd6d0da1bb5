package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft  CampaignStatus = "draft"
	CampaignStatusActive CampaignStatus = "active"
)

// StoryDraft é o texto para story vertical
type StoryDraft struct {
	Content          string `json:"content"`
	VisualSuggestion string `json:"visual_suggestion,omitempty"`
}

// BannerDraft é o texto para banner web
type BannerDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CampaignPosts struct {
	Google   *PostDraft   `json:"google,omitempty"`
	Facebook *PostDraft   `json:"facebook,omitempty"`
	Story    *StoryDraft  `json:"story,omitempty"`
	Banner   *BannerDraft `json:"banner,omitempty"`
}

type Campaign struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Posts       CampaignPosts  `json:"posts"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

type CampaignDraft struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Posts       CampaignPosts  `json:"posts"`
	Status      CampaignStatus `json:"status"`
}

type CreateCampaignRequest struct {
	Info string `json:"info"`
}
