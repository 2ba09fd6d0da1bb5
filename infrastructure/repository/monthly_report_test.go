package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

func TestMonthlyReportRepository_Create(t *testing.T) {
	report := &domain.MonthlyReport{
		ID:              "rep-1",
		UserID:          "user-1",
		Month:           "2024-02",
		Metrics:         domain.ReportMetrics{Views: 950, ReviewsReceived: 4, AvgRating: 4.5},
		Summary:         "Un mois solide",
		Recommendations: []string{"Publiez plus souvent"},
		HTMLContent:     "<html></html>",
		CreatedAt:       time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name        string
		execErr     error
		expectedErr error
		wantErr     bool
	}{
		{name: "Relatório novo é gravado"},
		{
			name:        "Relatório do mesmo mês já gravado",
			execErr:     &pq.Error{Code: uniqueViolationCode},
			expectedErr: ErrReportAlreadyExists,
			wantErr:     true,
		},
		{
			name:    "Outro erro de banco não vira duplicidade",
			execErr: errors.New("conexão perdida"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			expectation := mock.ExpectExec(`INSERT INTO monthly_reports \(id,user_id,month,metrics,summary,recommendations,html_content,created_at\)`).
				WithArgs("rep-1", "user-1", "2024-02", sqlmock.AnyArg(), "Un mois solide", []byte(`["Publiez plus souvent"]`), "<html></html>", sqlmock.AnyArg())
			if tt.execErr != nil {
				expectation.WillReturnError(tt.execErr)
			} else {
				expectation.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := NewMonthlyReportRepository(conn).Create(context.Background(), report)

			if tt.wantErr {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.NotErrorIs(t, err, ErrReportAlreadyExists)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMonthlyReportRepository_GetByUserAndMonth(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		expected *domain.MonthlyReport
	}{
		{
			name: "Relatório existente",
			rows: sqlmock.NewRows(monthlyReportColumns).AddRow(
				"rep-1", "user-1", "2024-02",
				[]byte(`{"views":950,"reviews_received":4,"avg_rating":4.5}`),
				"Un mois solide",
				[]byte(`["Publiez plus souvent"]`),
				"<html></html>",
				time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			),
			expected: &domain.MonthlyReport{
				ID:              "rep-1",
				UserID:          "user-1",
				Month:           "2024-02",
				Metrics:         domain.ReportMetrics{Views: 950, ReviewsReceived: 4, AvgRating: 4.5},
				Summary:         "Un mois solide",
				Recommendations: []string{"Publiez plus souvent"},
				HTMLContent:     "<html></html>",
				CreatedAt:       time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Mês sem relatório",
			rows: sqlmock.NewRows(monthlyReportColumns),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			mock.ExpectQuery(`SELECT .* FROM monthly_reports WHERE month = \$1 AND user_id = \$2`).
				WithArgs("2024-02", "user-1").
				WillReturnRows(tt.rows)

			report, err := NewMonthlyReportRepository(conn).GetByUserAndMonth(context.Background(), "user-1", "2024-02")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, report)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
