package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingUser       = errors.New("usuário não informado")
	ErrProfileNotFound   = errors.New("perfil não encontrado")
	ErrRenderReport      = errors.New("erro ao gerar html do relatório")
	ErrDatabaseOperation = errors.New("erro na operação de banco de dados")
)

// ReportError carrega o código da API e o mês do relatório (yyyy-mm)
type ReportError struct {
	Err     error
	Code    string
	Month   string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code, month, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Month:   month,
		Details: details,
	}
}
