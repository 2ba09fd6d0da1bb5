package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
)

// json codifica as colunas jsonb
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound indica que nenhuma linha do usuário foi afetada pela operação
var ErrNotFound = errors.New("registro não encontrado")

// rowScanner é implementado por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func count(ctx context.Context, q postgres.Queryer, builder squirrel.SelectBuilder) (int, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := postgres.QueryerFrom(ctx, q).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return total, nil
}

func ensureAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
