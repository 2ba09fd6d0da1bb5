package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const activateCampaignQuery = `UPDATE campaigns SET status = \$1 WHERE id = \$2 AND user_id = \$3 AND status <> \$4`

func TestCampaignRepository_Activate(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		expectedErr error
		wantErr     bool
	}{
		{
			name: "Campanha em rascunho é ativada",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(activateCampaignQuery).
					WithArgs("active", "c1", "user-1", "active").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Campanha já ativa não é alterada",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(activateCampaignQuery).
					WithArgs("active", "c1", "user-1", "active").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: ErrCampaignAlreadyActive,
			wantErr:     true,
		},
		{
			name: "Erro de banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(activateCampaignQuery).WillReturnError(errors.New("conexão perdida"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := NewCampaignRepository(conn).Activate(context.Background(), "user-1", "c1")

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

// Ativação e criação dos posts compartilham a transação do contexto
func TestCampaignRepository_ActivateNaMesmaTransacaoDosPosts(t *testing.T) {
	campaignID := "c1"
	now := time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC)
	post := &domain.Post{
		ID:          "p1",
		UserID:      "user-1",
		CampaignID:  &campaignID,
		Title:       "Soirée jazz",
		Content:     "Vendredi soir",
		Status:      domain.PostStatusDraft,
		Channel:     domain.ChannelGoogle,
		PublishDate: now,
		CreatedAt:   now,
	}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "Commit com a campanha ativa e o post criado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(activateCampaignQuery).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO posts`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Falha no post desfaz a ativação",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(activateCampaignQuery).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO posts`).WillReturnError(errors.New("conexão perdida"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			conn.SetMaxOpenConns(1)
			tt.setup(mock)

			campaigns := NewCampaignRepository(conn)
			posts := NewPostRepository(conn)
			err := conn.InTransaction(context.Background(), func(ctx context.Context) error {
				if err := campaigns.Activate(ctx, "user-1", campaignID); err != nil {
					return err
				}
				return posts.Create(ctx, post)
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
