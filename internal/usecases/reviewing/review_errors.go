package reviewing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidRating       = errors.New("nota deve estar entre 1 e 5")
	ErrInvalidPlatform     = errors.New("plataforma inválida")
	ErrReviewNotFound      = errors.New("avaliação não encontrada")
	ErrResponseNotFound    = errors.New("resposta não encontrada")
	ErrResponseAlreadySent = errors.New("resposta já enviada")
	ErrProfileNotFound     = errors.New("perfil do usuário não encontrado")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// ReviewError carrega o código da API e a avaliação envolvida
type ReviewError struct {
	Err      error
	Code     string
	ReviewID string
	Details  string
}

func (e *ReviewError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewReviewError(baseErr error, code, reviewID, details string) *ReviewError {
	return &ReviewError{
		Err:      baseErr,
		Code:     code,
		ReviewID: reviewID,
		Details:  details,
	}
}
