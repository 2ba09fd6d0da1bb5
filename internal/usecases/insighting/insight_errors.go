package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingUser       = errors.New("usuário não informado")
	ErrDatabaseOperation = errors.New("erro na operação de banco de dados")
)

type InsightError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(baseErr error, code, userID, details string) *InsightError {
	return &InsightError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
