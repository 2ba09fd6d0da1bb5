package domain

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
)

// IsValid verifica se o status pertence ao conjunto aceito
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled:
		return true
	}
	return false
}

type Channel string

const (
	ChannelGoogle   Channel = "google"
	ChannelFacebook Channel = "facebook"
	ChannelBoth     Channel = "both"
)

type Post struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	CampaignID       *string    `json:"campaign_id,omitempty"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	VisualSuggestion string     `json:"visual_suggestion,omitempty"`
	Status           PostStatus `json:"status"`
	Channel          Channel    `json:"channel"`
	PublishDate      time.Time  `json:"publish_date"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PostDraft é o conteúdo gerado, ainda sem identidade
type PostDraft struct {
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	VisualSuggestion string  `json:"visual_suggestion,omitempty"`
	Channel          Channel `json:"channel"`
}

type GeneratePostRequest struct {
	Theme *string `json:"theme"`
}

type UpdatePostRequest struct {
	Content string `json:"content"`
}

type UpdatePostStatusRequest struct {
	Status PostStatus `json:"status"`
}
