package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_RunInTransaction(t *testing.T) {
	fnErr := errors.New("falha na operação")

	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		fn          func(tx *sql.Tx) error
		expectedErr error
		wantErr     bool
	}{
		{
			name: "Commit quando a função termina sem erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func(tx *sql.Tx) error { return nil },
		},
		{
			name: "Rollback devolve o erro da função",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:          func(tx *sql.Tx) error { return fnErr },
			expectedErr: fnErr,
			wantErr:     true,
		},
		{
			name: "Rollback com falha preserva o erro da função",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("conexão perdida"))
			},
			fn:          func(tx *sql.Tx) error { return fnErr },
			expectedErr: fnErr,
			wantErr:     true,
		},
		{
			name: "Erro ao iniciar transação",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("sem conexões"))
			},
			fn:      func(tx *sql.Tx) error { return nil },
			wantErr: true,
		},
		{
			name: "Erro no commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialização"))
			},
			fn:      func(tx *sql.Tx) error { return nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)
			conn := &Connection{DB: db}

			err = conn.RunInTransaction(context.Background(), tt.fn)

			if tt.wantErr {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConnection_RunInTransaction_PanicFazRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	conn := &Connection{DB: db}

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("inesperado")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_InTransaction_PropagaTransacao(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Com uma única conexão, qualquer query fora da transação ficaria bloqueada
	db.SetMaxOpenConns(1)
	conn := &Connection{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE campaigns`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO posts`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = conn.InTransaction(context.Background(), func(ctx context.Context) error {
		tx, ok := TxFrom(ctx)
		require.True(t, ok)
		assert.Same(t, tx, QueryerFrom(ctx, conn))

		if _, err := QueryerFrom(ctx, conn).ExecContext(ctx, "UPDATE campaigns SET status = 'active'"); err != nil {
			return err
		}

		// Transação aninhada reaproveita a do contexto
		return conn.InTransaction(ctx, func(inner context.Context) error {
			innerTx, _ := TxFrom(inner)
			assert.Same(t, tx, innerTx)
			_, err := QueryerFrom(inner, conn).ExecContext(inner, "INSERT INTO posts (id) VALUES ('p1')")
			return err
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryerFrom_SemTransacaoUsaFallback(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := &Connection{DB: db}

	_, ok := TxFrom(context.Background())
	assert.False(t, ok)
	assert.Same(t, conn, QueryerFrom(context.Background(), conn))
}
