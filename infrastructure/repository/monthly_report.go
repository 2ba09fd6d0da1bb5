package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-copilot-api/internal/domain"
)

const monthlyReportsTable = "monthly_reports"

var ErrReportAlreadyExists = errors.New("relatório do mês já existe")

var monthlyReportColumns = []string{
	"id", "user_id", "month", "metrics", "summary", "recommendations", "html_content", "created_at",
}

type MonthlyReportRepository interface {
	GetByUserAndMonth(ctx context.Context, userID, month string) (*domain.MonthlyReport, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.MonthlyReport, error)
	Create(ctx context.Context, report *domain.MonthlyReport) error
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

func (r *monthlyReportRepository) GetByUserAndMonth(ctx context.Context, userID, month string) (*domain.MonthlyReport, error) {
	query, args, err := squirrel.
		Select(monthlyReportColumns...).
		From(monthlyReportsTable).
		Where(squirrel.Eq{"user_id": userID, "month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanMonthlyReport(postgres.QueryerFrom(ctx, r.conn).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear relatório mensal: %w", err)
	}

	return report, nil
}

// ListByUser devolve os relatórios do mês mais recente para o mais antigo
func (r *monthlyReportRepository) ListByUser(ctx context.Context, userID string) ([]*domain.MonthlyReport, error) {
	query, args, err := squirrel.
		Select(monthlyReportColumns...).
		From(monthlyReportsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := postgres.QueryerFrom(ctx, r.conn).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar relatórios: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.MonthlyReport, 0)
	for rows.Next() {
		report, err := scanMonthlyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório mensal: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return reports, nil
}

// Create devolve ErrReportAlreadyExists quando o mês já tem relatório
func (r *monthlyReportRepository) Create(ctx context.Context, report *domain.MonthlyReport) error {
	metricsJSON, err := json.Marshal(report.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	recommendationsJSON, err := json.Marshal(report.Recommendations)
	if err != nil {
		return fmt.Errorf("erro ao serializar recomendações para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(monthlyReportsTable).
		Columns(monthlyReportColumns...).
		Values(
			report.ID,
			report.UserID,
			report.Month,
			metricsJSON,
			report.Summary,
			recommendationsJSON,
			report.HTMLContent,
			report.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := postgres.QueryerFrom(ctx, r.conn).ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return ErrReportAlreadyExists
		}
		return fmt.Errorf("erro ao criar relatório mensal: %w", err)
	}

	return nil
}

func scanMonthlyReport(row rowScanner) (*domain.MonthlyReport, error) {
	var (
		report              domain.MonthlyReport
		metricsJSON         []byte
		recommendationsJSON []byte
	)

	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.Month,
		&metricsJSON,
		&report.Summary,
		&recommendationsJSON,
		&report.HTMLContent,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metricsJSON, &report.Metrics); err != nil {
		return nil, fmt.Errorf("erro ao desserializar métricas: %w", err)
	}

	if err := json.Unmarshal(recommendationsJSON, &report.Recommendations); err != nil {
		return nil, fmt.Errorf("erro ao desserializar recomendações: %w", err)
	}

	return &report, nil
}
