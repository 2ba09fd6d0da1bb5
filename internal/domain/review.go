package domain

import "time"

type Platform string

const (
	PlatformGoogle   Platform = "google"
	PlatformFacebook Platform = "facebook"
)

type Review struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Rating   int       `json:"rating"` // 1 a 5
	Author   string    `json:"author"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Platform Platform  `json:"platform"`
}

// IsPositive considera positivo qualquer avaliação a partir de 4 estrelas
func (r Review) IsPositive() bool {
	return r.Rating >= 4
}

type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusApproved ResponseStatus = "approved"
	ResponseStatusSent     ResponseStatus = "sent"
)

type ReviewResponse struct {
	ID        string         `json:"id"`
	ReviewID  string         `json:"review_id"`
	Response  string         `json:"response"`
	Status    ResponseStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ReviewWithResponse agrupa a avaliação e a resposta atual (quando existir)
type ReviewWithResponse struct {
	Review
	Response *ReviewResponse `json:"response,omitempty"`
}

type CreateReviewRequest struct {
	Rating   int      `json:"rating"`
	Author   string   `json:"author"`
	Content  string   `json:"content"`
	Platform Platform `json:"platform"`
}

type UpdateResponseRequest struct {
	Response string `json:"response"`
}

// AverageRating devolve a média das notas, 0 quando não há avaliações
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	return float64(sum) / float64(len(reviews))
}
