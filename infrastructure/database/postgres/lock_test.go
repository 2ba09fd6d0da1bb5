package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryLocker_WithLock(t *testing.T) {
	lockQuery := regexp.QuoteMeta(advisoryLockQuery)

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		fn        func(ctx context.Context) error
		expectErr bool
		called    bool
	}{
		{
			name: "Obtém o lock, executa a função e faz commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			fn:     func(ctx context.Context) error { return nil },
			called: true,
		},
		{
			name: "Erro na função desfaz a transação",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			fn:        func(ctx context.Context) error { return errors.New("falhou") },
			expectErr: true,
			called:    true,
		},
		{
			name: "Falha ao obter o lock não executa a função",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs("user-1").WillReturnError(errors.New("conexão perdida"))
				mock.ExpectRollback()
			},
			fn:        func(ctx context.Context) error { return nil },
			expectErr: true,
			called:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			called := false
			locker := NewAdvisoryLocker(&Connection{DB: db})
			err = locker.WithLock(context.Background(), "user-1", func(ctx context.Context) error {
				called = true
				return tt.fn(ctx)
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.called, called)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdvisoryLocker_WithLock_QueriesUsamATransacaoDoLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Uma conexão só: uma query fora da transação esperaria o lock para sempre
	db.SetMaxOpenConns(1)
	conn := &Connection{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(advisoryLockQuery)).WithArgs("reviews:user-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews`).WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO reviews`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = NewAdvisoryLocker(conn).WithLock(context.Background(), "reviews:user-1", func(ctx context.Context) error {
		var total int
		if err := QueryerFrom(ctx, conn).QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews WHERE user_id = $1", "user-1").Scan(&total); err != nil {
			return err
		}
		if total > 0 {
			return nil
		}
		_, err := QueryerFrom(ctx, conn).ExecContext(ctx, "INSERT INTO reviews (id) VALUES ('r1')")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
