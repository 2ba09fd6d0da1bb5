package utils

import (
	"net/mail"
	"strings"
)

// NormalizeEmail remove espaços e coloca o email em minúsculas
func NormalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// IsValidEmail aceita apenas o endereço puro, sem nome de exibição
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}
