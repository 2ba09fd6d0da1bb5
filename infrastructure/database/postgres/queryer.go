package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB e *sql.Tx usado pelos repositórios
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txContextKey struct{}

// WithTx associa tx ao contexto para que os repositórios chamados a partir
// dele usem a mesma transação
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFrom devolve a transação associada ao contexto, se houver
func TxFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// QueryerFrom devolve a transação do contexto ou, na falta dela, fallback
func QueryerFrom(ctx context.Context, fallback Queryer) Queryer {
	if tx, ok := TxFrom(ctx); ok {
		return tx
	}
	return fallback
}
