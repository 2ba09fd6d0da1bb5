package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	BusinessName string    `json:"business_name"`
	Sector       Sector    `json:"sector"`
	Tone         Tone      `json:"tone"`
	LogoURL      *string   `json:"logo_url,omitempty"`
	PrimaryColor *string   `json:"primary_color,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile retorna a parte do usuário usada na geração de conteúdo
func (u *User) Profile() Profile {
	return Profile{
		BusinessName: u.BusinessName,
		Sector:       u.Sector,
		Tone:         u.Tone,
	}
}

type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"business_name"`
	Sector       string `json:"sector"`
}

type UpdateProfileRequest struct {
	ID           string  `json:"-"`
	BusinessName *string `json:"business_name"`
	Sector       *string `json:"sector"`
	Tone         *string `json:"tone"`
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
}

type Claims struct {
	UserID       string
	UserEmail    string
	BusinessName string
	jwt.RegisteredClaims
}
