package clienting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingName       = errors.New("nome do cliente é obrigatório")
	ErrInvalidEmail      = errors.New("email do cliente inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrExport            = errors.New("erro ao exportar clientes")
	ErrProfileNotFound   = errors.New("perfil do usuário não encontrado")
)

type ClientError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *ClientError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func NewClientError(baseErr error, code, userID, details string) *ClientError {
	return &ClientError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
