package publishing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidStatus         = errors.New("status inválido")
	ErrInvalidDuration       = errors.New("duração da promoção inválida")
	ErrProfileNotFound       = errors.New("perfil do usuário não encontrado")
	ErrPostNotFound          = errors.New("post não encontrado")
	ErrPromotionNotFound     = errors.New("promoção não encontrada")
	ErrCampaignNotFound      = errors.New("campanha não encontrada")
	ErrCampaignAlreadyActive = errors.New("campanha já está ativa")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// ContentError carrega o código da API para erros de conteúdo
type ContentError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *ContentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

func NewContentError(baseErr error, code, userID, details string) *ContentError {
	return &ContentError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
