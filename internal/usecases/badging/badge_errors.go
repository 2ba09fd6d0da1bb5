package badging

import (
	"errors"
	"fmt"
)

var (
	ErrMissingUser      = errors.New("usuário não informado")
	ErrLoadHistory      = errors.New("erro ao carregar histórico do usuário")
	ErrAwardAchievement = errors.New("erro ao registrar conquista")
)

// BadgeError carrega o código da API e o usuário avaliado
type BadgeError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *BadgeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BadgeError) Unwrap() error {
	return e.Err
}

func NewBadgeError(baseErr error, code, userID, details string) *BadgeError {
	return &BadgeError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
