package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

// O seed de avaliações roda dentro do lock consultivo: contagem e inserção
// precisam usar a transação do lock e não outra conexão do pool.
func TestReviewRepository_DentroDoLockConsultivo(t *testing.T) {
	review := &domain.Review{
		ID:       "r1",
		UserID:   "user-1",
		Rating:   5,
		Author:   "Marie Dupont",
		Content:  "Service excellent",
		Date:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Platform: domain.PlatformGoogle,
	}
	lockQuery := regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "Contagem e inserção confirmadas junto com o lock",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs("reviews:user-1").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews WHERE user_id = \$1`).WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO reviews \(id,user_id,rating,author,content,date,platform\)`).
					WithArgs("r1", "user-1", 5, "Marie Dupont", "Service excellent", sqlmock.AnyArg(), "google").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Falha na inserção desfaz a transação do lock",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs("reviews:user-1").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews`).WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO reviews`).WillReturnError(errors.New("conexão perdida"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			// Com uma conexão só, uma query fora da transação travaria o teste
			conn.SetMaxOpenConns(1)
			tt.setup(mock)

			repo := NewReviewRepository(conn)
			err := postgres.NewAdvisoryLocker(conn).WithLock(context.Background(), "reviews:user-1", func(ctx context.Context) error {
				total, err := repo.CountByUser(ctx, "user-1")
				if err != nil || total > 0 {
					return err
				}
				return repo.Create(ctx, review)
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
