package domain

import "time"

type Client struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Newsletter é a prévia da newsletter mensal enviada aos clientes do negócio
type Newsletter struct {
	Subject      string    `json:"subject"`
	Content      string    `json:"content"`
	Recipients   int       `json:"recipients"`
	NextSendDate time.Time `json:"next_send_date"`
}
