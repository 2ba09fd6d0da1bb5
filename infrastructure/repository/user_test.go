package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

func TestUserRepository_Create(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	insert := `INSERT INTO users \(id,email,password_hash,business_name,sector,tone,logo_url,primary_color\) ` +
		`VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\) RETURNING created_at, updated_at`

	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		expectedErr error
		wantErr     bool
	}{
		{
			name: "Usuário novo recebe as datas do banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insert).
					WithArgs("user-1", "contact@bistro.fr", "hash", "Le Petit Bistro", "restaurant", "friendly", nil, nil).
					WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))
			},
		},
		{
			name: "Email já cadastrado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insert).WillReturnError(&pq.Error{Code: uniqueViolationCode})
			},
			expectedErr: ErrDuplicatedEmail,
			wantErr:     true,
		},
		{
			name: "Outra violação do banco não vira email duplicado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insert).WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			user, err := NewUserRepository(conn).Create(context.Background(), &domain.User{
				ID:           "user-1",
				Email:        "contact@bistro.fr",
				PasswordHash: "hash",
				BusinessName: "Le Petit Bistro",
				Sector:       domain.SectorRestaurant,
				Tone:         domain.ToneFriendly,
			})

			if tt.wantErr {
				assert.Nil(t, user)
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.NotErrorIs(t, err, ErrDuplicatedEmail)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, createdAt, user.CreatedAt)
				assert.Equal(t, createdAt, user.UpdatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
