package postgres

import (
	"context"

	"github.com/pkg/errors"
)

const advisoryLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

// AdvisoryLocker serializa trechos de código por chave usando um lock
// consultivo do Postgres com escopo de transação. O lock é liberado no
// commit ou rollback, inclusive se a conexão cair.
type AdvisoryLocker struct {
	conn *Connection
}

func NewAdvisoryLocker(conn *Connection) *AdvisoryLocker {
	return &AdvisoryLocker{conn: conn}
}

// WithLock bloqueia até obter o lock da chave e executa fn enquanto o mantém.
// O contexto repassado a fn carrega a transação do lock, então as queries dos
// repositórios rodam na mesma conexão e são confirmadas junto com ele.
func (l *AdvisoryLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return l.conn.InTransaction(ctx, func(txCtx context.Context) error {
		tx, _ := TxFrom(txCtx)
		if _, err := tx.ExecContext(txCtx, advisoryLockQuery, key); err != nil {
			return errors.Wrapf(err, "erro ao obter lock consultivo para %s", key)
		}

		return fn(txCtx)
	})
}
